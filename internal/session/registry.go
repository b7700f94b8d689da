package session

import (
	"fmt"
	"time"

	"healthlock/internal/utils"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
)

// Registry owns every live session. Sessions end when they expire, when the
// registry is full and they are the least recently used, or when End is
// called.
type Registry struct {
	sessions *expirable.LRU[string, *State]
	opts     Options
	logger   logrus.FieldLogger
}

func NewRegistry(maxSessions int, ttl time.Duration, opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	r := &Registry{opts: opts, logger: logger}
	r.sessions = expirable.NewLRU[string, *State](maxSessions, r.onEvict, ttl)
	return r
}

func (r *Registry) onEvict(id string, _ *State) {
	sessionsActive.Dec()
	r.logger.WithField("session_id", id).Debug("session discarded")
}

// Create starts a new session with a fresh random id.
func (r *Registry) Create() (*State, error) {
	id := utils.NanoID()

	s, err := New(id, r.opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	r.sessions.Add(id, s)
	sessionsActive.Inc()

	r.logger.WithField("session_id", id).Debug("session started")

	return s, nil
}

func (r *Registry) Get(id string) (*State, bool) {
	if id == "" {
		return nil, false
	}
	return r.sessions.Get(id)
}

// End discards the session. It reports whether the session was live.
func (r *Registry) End(id string) bool {
	return r.sessions.Remove(id)
}

func (r *Registry) Len() int {
	return r.sessions.Len()
}
