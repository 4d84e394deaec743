package mapper

import (
	"papertrail-ai/internal/dto"
	"papertrail-ai/internal/shell"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ViewToResponse(v shell.View) *dto.ChatStateResponse {
	messages := make([]dto.ChatMessageResponse, 0, len(v.Transcript))
	for _, msg := range v.Transcript {
		messages = append(messages, dto.ChatMessageResponse{
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	notices := make([]dto.NoticeResponse, 0, len(v.Notices))
	for _, n := range v.Notices {
		notices = append(notices, dto.NoticeResponse{Level: n.Level, Text: n.Text})
	}

	return &dto.ChatStateResponse{
		SessionId:   v.SessionId.String(),
		Title:       v.Title,
		Sessions:    v.Sessions,
		Current:     v.Current,
		ChatEnabled: v.ChatEnabled,
		Hint:        v.Hint,
		Messages:    messages,
		Notices:     notices,
	}
}
