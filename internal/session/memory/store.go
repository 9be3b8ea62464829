package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"em-agent/internal/session"
	"em-agent/pkg/log"
)

// Config bounds the in-memory store.
type Config struct {
	MaxEntries int
	TTL        time.Duration
}

type implStore struct {
	l     log.Logger
	cache *expirable.LRU[string, session.Session]
}

// New creates a bounded, TTL-expiring session store.
// The least recently used session is evicted when MaxEntries is reached.
func New(l log.Logger, cfg Config) session.Store {
	s := &implStore{l: l}
	s.cache = expirable.NewLRU[string, session.Session](cfg.MaxEntries, s.onEvict, cfg.TTL)
	return s
}

func (s *implStore) Get(ctx context.Context, id string) (session.Session, bool) {
	if id == "" {
		return session.Session{}, false
	}
	return s.cache.Get(id)
}

func (s *implStore) Set(ctx context.Context, id string, sess session.Session) {
	if id == "" {
		return
	}
	sess.ID = id
	s.cache.Add(id, sess)
}

func (s *implStore) Delete(ctx context.Context, id string) {
	s.cache.Remove(id)
}

func (s *implStore) onEvict(id string, _ session.Session) {
	s.l.Debugf(context.Background(), "session.memory: evicted %s", id)
}
