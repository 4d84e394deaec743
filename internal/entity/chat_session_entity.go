package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession is one named conversation over the text extracted from a single submission.
// Name is the lookup key and is unique across the collection; Id stays fixed across renames.
type ChatSession struct {
	Id           uuid.UUID
	Name         string
	CombinedText string
	ChatHistory  []ChatMessage
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewChatSession(name string) *ChatSession {
	return &ChatSession{
		Id:          uuid.New(),
		Name:        name,
		ChatHistory: make([]ChatMessage, 0),
		CreatedAt:   time.Now(),
	}
}

// HasDocument reports whether questions can be asked in this session.
func (s *ChatSession) HasDocument() bool {
	return s.CombinedText != ""
}

func (s *ChatSession) touch() {
	now := time.Now()
	s.UpdatedAt = &now
}

// ReplaceDocument stores freshly extracted text and drops the previous transcript.
func (s *ChatSession) ReplaceDocument(text string) {
	s.CombinedText = text
	s.ChatHistory = make([]ChatMessage, 0)
	s.touch()
}

func (s *ChatSession) Append(role, content string) {
	s.ChatHistory = append(s.ChatHistory, ChatMessage{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	s.touch()
}
