package contract

import (
	"papertrail-ai/internal/entity"
)

// ChatSessionRepository keeps sessions keyed by name in insertion order.
// Implementations are not required to be safe for concurrent use.
type ChatSessionRepository interface {
	Save(session *entity.ChatSession)
	FindByName(name string) (*entity.ChatSession, bool)
	Exists(name string) bool
	// Rename re-keys a session; the new key is placed at the end of the order.
	Rename(oldName, newName string) error
	Delete(name string) bool
	Names() []string
	Count() int
}
