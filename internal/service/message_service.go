package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/repository"
	apperrors "github.com/bornebyte/notes/pkg/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MessageService coordinates contact message workflows. Messages are not
// audited; no notification rows are emitted.
type MessageService struct {
	messages repository.MessageRepository
}

// NewMessageService constructs the service.
func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// List returns all messages, newest first.
func (s *MessageService) List(ctx context.Context) ([]domain.Message, error) {
	return s.messages.List(ctx)
}

// Create validates and stores a contact message.
func (s *MessageService) Create(ctx context.Context, name, email, body string) (*domain.Message, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(body) == "" {
		return nil, apperrors.NewValidationError("Name, email, and message are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewValidationError("Invalid email format")
	}

	msg := &domain.Message{Name: name, Email: email, Message: body}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Delete removes a message.
func (s *MessageService) Delete(ctx context.Context, id int64) error {
	return s.messages.Delete(ctx, id)
}
