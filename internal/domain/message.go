package domain

import "time"

// Message is a contact-form submission.
type Message struct {
	ID      int64
	Name    string
	Email   string
	Message string
	Time    time.Time
}
