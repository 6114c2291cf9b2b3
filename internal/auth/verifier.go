package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/bornebyte/notes/internal/domain"
	"github.com/bornebyte/notes/internal/repository"
)

// Failure reasons surfaced to clients on 401. ReasonMissingCredentials doubles
// as the generic message for unknown tokens so probing cannot distinguish the
// two cases.
const (
	ReasonMissingCredentials = "Unauthorized. Please provide valid authentication via session cookie or X-API-Token header."
	ReasonInvalidTokenFormat = "Invalid token format"
	ReasonVerificationFailed = "Token verification failed"
)

// VerifyResult classifies a request's credential material.
type VerifyResult struct {
	Authenticated bool
	Method        domain.AuthMethod
	Identity      string
	TokenID       int64
	TokenName     string
	Reason        string
}

// Verifier resolves session markers and API tokens into caller identities.
type Verifier struct {
	tokens repository.TokenRepository
	logger *zap.Logger
}

// NewVerifier constructs a verifier.
func NewVerifier(tokens repository.TokenRepository, logger *zap.Logger) *Verifier {
	return &Verifier{tokens: tokens, logger: logger}
}

// Verify classifies the caller. The session marker takes precedence: when it
// is present the token header is never evaluated and the token store is not
// consulted. Token auth requires an exact 64-character value matching a
// non-revoked record; a store failure during lookup fails closed.
func (v *Verifier) Verify(ctx context.Context, sessionPresent bool, apiToken string) VerifyResult {
	if sessionPresent {
		return VerifyResult{
			Authenticated: true,
			Method:        domain.AuthMethodSession,
			Identity:      domain.SessionIdentity,
		}
	}

	if apiToken != "" {
		if len(apiToken) != domain.APITokenLength {
			return VerifyResult{Reason: ReasonInvalidTokenFormat}
		}

		token, err := v.tokens.GetActiveByValue(ctx, apiToken)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return VerifyResult{Reason: ReasonMissingCredentials}
			}
			v.logger.Error("token verification failed", zap.Error(err))
			return VerifyResult{Reason: ReasonVerificationFailed}
		}

		// Best effort: a failed timestamp update must not undo a valid
		// authentication.
		if err := v.tokens.TouchLastUsed(ctx, token.ID); err != nil {
			v.logger.Warn("failed to update token last_used",
				zap.Int64("token_id", token.ID), zap.Error(err))
		}

		return VerifyResult{
			Authenticated: true,
			Method:        domain.AuthMethodToken,
			Identity:      fmt.Sprintf("token-%d", token.ID),
			TokenID:       token.ID,
			TokenName:     token.Name,
		}
	}

	return VerifyResult{Reason: ReasonMissingCredentials}
}
