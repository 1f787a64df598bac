package memory

import (
	"time"

	"voz-orientador-be/internal/model"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions idle for an hour are purged; the purge sweep runs every 10
	// minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(sessionID string, state *model.SessionState) {
	r.cache.Set(sessionID, state, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*model.SessionState, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*model.SessionState), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
