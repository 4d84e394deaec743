package shell

import (
	"papertrail-ai/internal/entity"

	"github.com/google/uuid"
)

type Notice struct {
	Level string
	Text  string
}

// View is everything needed to draw one page.
type View struct {
	AppTitle    string
	Title       string
	SessionId   uuid.UUID
	Sessions    []string
	Current     string
	Transcript  []entity.ChatMessage
	ChatEnabled bool
	Notices     []Notice
	Hint        string
	Busy        string
}
