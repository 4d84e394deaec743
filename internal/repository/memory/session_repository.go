package memory

import (
	"errors"
	"fmt"

	"papertrail-ai/internal/entity"
	"papertrail-ai/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExists   = errors.New("session already exists")
)

// SessionRepository stores sessions for the lifetime of the process.
// Values live in a non-expiring cache; order keeps the insertion order of the keys.
type SessionRepository struct {
	cache *cache.Cache
	order []string
}

var _ contract.ChatSessionRepository = (*SessionRepository)(nil)

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
		order: make([]string, 0),
	}
}

func (r *SessionRepository) Save(session *entity.ChatSession) {
	if !r.Exists(session.Name) {
		r.order = append(r.order, session.Name)
	}
	r.cache.Set(session.Name, session, cache.NoExpiration)
}

func (r *SessionRepository) FindByName(name string) (*entity.ChatSession, bool) {
	if x, found := r.cache.Get(name); found {
		return x.(*entity.ChatSession), true
	}
	return nil, false
}

func (r *SessionRepository) Exists(name string) bool {
	_, found := r.cache.Get(name)
	return found
}

func (r *SessionRepository) Rename(oldName, newName string) error {
	session, ok := r.FindByName(oldName)
	if !ok {
		return fmt.Errorf("rename %q: %w", oldName, ErrSessionNotFound)
	}
	if r.Exists(newName) {
		return fmt.Errorf("rename %q to %q: %w", oldName, newName, ErrSessionExists)
	}

	r.Delete(oldName)
	session.Name = newName
	r.Save(session)
	return nil
}

func (r *SessionRepository) Delete(name string) bool {
	if !r.Exists(name) {
		return false
	}
	r.cache.Delete(name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

func (r *SessionRepository) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *SessionRepository) Count() int {
	return len(r.order)
}
