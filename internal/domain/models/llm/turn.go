package llm

import (
	"time"
)

// Turn roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ChatTurn is one persisted message of a user's conversation.
// Turns are append-only: written once by the chat service, never updated.
type ChatTurn struct {
	ID        string    `json:"id" db:"id" bson:"_id"`
	UserID    string    `json:"user_id" db:"user_id" bson:"user_id"`
	Role      string    `json:"role" db:"role" bson:"role"` // "user" or "assistant"
	Message   string    `json:"message" db:"message" bson:"message"`
	Timestamp time.Time `json:"timestamp" db:"timestamp" bson:"timestamp"`
}

// ToMessage projects the turn to its (role, content) pair.
func (t ChatTurn) ToMessage() Message {
	return Message{Role: t.Role, Content: t.Message}
}
