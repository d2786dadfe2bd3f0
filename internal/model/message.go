package model

import "time"

// Message is a contact-form submission. Messages are append-only: they are
// never updated or deleted once stored.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ListOptions carries pagination parameters for list queries.
type ListOptions struct {
	Limit  int
	Offset int
}
