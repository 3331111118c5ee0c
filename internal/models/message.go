package models

import "github.com/google/uuid"

// Role identifies the author of a transcript message
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// String returns the role name
func (r Role) String() string {
	return string(r)
}

// Message is a single chat bubble's content
type Message struct {
	ID   string
	Role Role
	Text string
}

// NewMessage creates a message with a fresh identifier
func NewMessage(role Role, text string) Message {
	return Message{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
	}
}
