package service

import (
	"errors"
	"fmt"
	"strconv"

	"papertrail-ai/internal/constant"
	"papertrail-ai/internal/entity"
	"papertrail-ai/internal/pkg/logger"
	"papertrail-ai/internal/repository/contract"
)

var (
	ErrSessionNameTaken = errors.New("session name already exists")
	ErrSessionNotFound  = errors.New("session not found")
)

// IChatSessionService owns the named chat sessions and which one is current.
// The collection is never empty once Ensure has run, and Current always names an existing session.
type IChatSessionService interface {
	Ensure() *entity.ChatSession
	Create() *entity.ChatSession
	Rename(newName string) error
	Select(name string) error
	Delete() *entity.ChatSession
	Current() *entity.ChatSession
	Names() []string
	ReplaceDocument(text string) *entity.ChatSession
	AppendMessage(role, content string) *entity.ChatSession
}

type chatSessionService struct {
	repo    contract.ChatSessionRepository
	logger  logger.ILogger
	current string
}

func NewChatSessionService(repo contract.ChatSessionRepository, logger logger.ILogger) IChatSessionService {
	s := &chatSessionService{
		repo:   repo,
		logger: logger,
	}
	s.Ensure()
	return s
}

// NextChatName returns the lowest "Chat N" (N >= 1) not present in names.
func NextChatName(names []string) string {
	taken := make(map[string]struct{}, len(names))
	for _, n := range names {
		taken[n] = struct{}{}
	}
	for i := 1; ; i++ {
		candidate := constant.ChatNamePrefix + strconv.Itoa(i)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

func (s *chatSessionService) Ensure() *entity.ChatSession {
	if s.repo.Count() == 0 {
		return s.Create()
	}
	if !s.repo.Exists(s.current) {
		s.current = s.repo.Names()[0]
	}
	session, _ := s.repo.FindByName(s.current)
	return session
}

func (s *chatSessionService) Create() *entity.ChatSession {
	session := entity.NewChatSession(NextChatName(s.repo.Names()))
	s.repo.Save(session)
	s.current = session.Name

	s.logger.Info("SESSION", "Chat session created", map[string]interface{}{
		"session_id": session.Id.String(),
		"name":       session.Name,
	})
	return session
}

// Rename re-keys the current session under newName exactly as given. An empty name or the
// current name is a no-op; a name held by another session returns ErrSessionNameTaken.
func (s *chatSessionService) Rename(newName string) error {
	if newName == "" || newName == s.current {
		return nil
	}
	if s.repo.Exists(newName) {
		return fmt.Errorf("rename to %q: %w", newName, ErrSessionNameTaken)
	}

	old := s.current
	if err := s.repo.Rename(old, newName); err != nil {
		return fmt.Errorf("rename %q: %w", old, err)
	}
	s.current = newName

	s.logger.Info("SESSION", "Chat session renamed", map[string]interface{}{
		"from": old,
		"to":   newName,
	})
	return nil
}

func (s *chatSessionService) Select(name string) error {
	if !s.repo.Exists(name) {
		return fmt.Errorf("select %q: %w", name, ErrSessionNotFound)
	}
	s.current = name
	return nil
}

// Delete removes the current session. The first remaining session becomes current,
// or a fresh one is created when none remain.
func (s *chatSessionService) Delete() *entity.ChatSession {
	deleted := s.current
	s.repo.Delete(deleted)

	s.logger.Info("SESSION", "Chat session deleted", map[string]interface{}{
		"name":      deleted,
		"remaining": s.repo.Count(),
	})

	s.current = ""
	return s.Ensure()
}

func (s *chatSessionService) Current() *entity.ChatSession {
	return s.Ensure()
}

func (s *chatSessionService) Names() []string {
	s.Ensure()
	return s.repo.Names()
}

func (s *chatSessionService) ReplaceDocument(text string) *entity.ChatSession {
	session := s.Ensure()
	session.ReplaceDocument(text)
	return session
}

func (s *chatSessionService) AppendMessage(role, content string) *entity.ChatSession {
	session := s.Ensure()
	session.Append(role, content)
	return session
}
