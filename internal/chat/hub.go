package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Hub owns every live chat session.
type Hub struct {
	responder Responder
	logger    *zap.Logger
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
	bound    map[string]struct{} // sessions owned by a live connection
}

// NewHub creates a Hub whose sessions reply through responder.
func NewHub(responder Responder, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		responder: responder,
		logger:    logger,
		now:       time.Now,
		sessions:  make(map[string]*Session),
		bound:     make(map[string]struct{}),
	}
}

// Create opens a new session, already holding the greeting. It is closed by
// Close or, once idle, by Sweep.
func (h *Hub) Create() *Session {
	return h.open(false)
}

// CreateBound opens a session owned by a connection. Sweep never closes it;
// the owner must call Close when the connection ends.
func (h *Hub) CreateBound() *Session {
	return h.open(true)
}

func (h *Hub) open(bound bool) *Session {
	s := newSession(uuid.New().String(), h.responder, h.now)

	h.mu.Lock()
	h.sessions[s.ID()] = s
	if bound {
		h.bound[s.ID()] = struct{}{}
	}
	h.mu.Unlock()

	h.logger.Debug("chat session opened", zap.String("session", s.ID()), zap.Bool("bound", bound))
	return s
}

// Get returns the session with the given id.
func (h *Hub) Get(id string) (*Session, error) {
	h.mu.RLock()
	s, ok := h.sessions[id]
	h.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Close removes a session and cancels its pending replies.
func (h *Hub) Close(id string) error {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	delete(h.bound, id)
	h.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.Close()
	h.logger.Debug("chat session closed", zap.String("session", id))
	return nil
}

// Len returns the number of open sessions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Sweep closes unbound sessions whose last message is older than idle and
// returns how many were closed.
func (h *Hub) Sweep(idle time.Duration) int {
	cutoff := h.now().Add(-idle)

	var stale []*Session
	h.mu.Lock()
	for id, s := range h.sessions {
		if _, ok := h.bound[id]; ok {
			continue
		}
		if s.LastActive().Before(cutoff) {
			stale = append(stale, s)
			delete(h.sessions, id)
		}
	}
	h.mu.Unlock()

	for _, s := range stale {
		s.Close()
	}
	return len(stale)
}

// CloseAll closes every session. Used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	all := h.sessions
	h.sessions = make(map[string]*Session)
	h.bound = make(map[string]struct{})
	h.mu.Unlock()

	for _, s := range all {
		s.Close()
	}
}

// Sweeper periodically closes idle sessions on a cron schedule.
type Sweeper struct {
	hub    *Hub
	idle   time.Duration
	cron   *cron.Cron
	logger *zap.Logger
}

// NewSweeper validates schedule (standard cron or "@every 1m" syntax) and
// prepares a sweeper. Nothing runs until Run.
func NewSweeper(hub *Hub, schedule string, idle time.Duration, logger *zap.Logger) (*Sweeper, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Sweeper{hub: hub, idle: idle, cron: cron.New(), logger: logger}
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, fmt.Errorf("scheduling session sweep %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Sweeper) sweep() {
	if n := s.hub.Sweep(s.idle); n > 0 {
		s.logger.Info("closed idle chat sessions",
			zap.Int("closed", n),
			zap.Int("open", s.hub.Len()),
			zap.Duration("idle", s.idle))
	}
}

// Run starts the schedule and blocks until ctx is cancelled, then waits for
// a running sweep to finish.
func (s *Sweeper) Run(ctx context.Context) error {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	return nil
}
