package entity

import (
	"time"
)

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
)

type ChatMessage struct {
	Role      string
	Content   string
	CreatedAt time.Time
}
