package dto

import (
	"time"
)

type RenameSessionRequest struct {
	Name string `json:"name" form:"name" validate:"max=200"`
}

type SelectSessionRequest struct {
	Name string `json:"name" form:"name" validate:"required"`
}

type AskRequest struct {
	Question string `json:"question" form:"question" validate:"required,max=20000"`
}

type ChatMessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type NoticeResponse struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

type ChatStateResponse struct {
	SessionId   string                `json:"session_id"`
	Title       string                `json:"title"`
	Sessions    []string              `json:"sessions"`
	Current     string                `json:"current"`
	ChatEnabled bool                  `json:"chat_enabled"`
	Hint        string                `json:"hint,omitempty"`
	Messages    []ChatMessageResponse `json:"messages"`
	Notices     []NoticeResponse      `json:"notices"`
}
