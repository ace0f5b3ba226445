package chat

import (
	"strings"
	"sync"
	"time"
)

// Session is one conversation with the scripted assistant.
//
// Send appends the user's message immediately and schedules exactly one
// assistant reply. Sends are not serialised: a second Send while a reply is
// pending schedules a second reply. Close cancels every pending reply and
// waits for any reply already being delivered, so a closed session is never
// mutated afterwards.
type Session struct {
	id        string
	responder Responder
	now       func() time.Time

	mu         sync.Mutex
	messages   []Message
	nextID     int
	pending    map[int]*time.Timer
	nextToken  int
	closed     bool
	lastActive time.Time
	observers  map[int]func(Message)
	nextObs    int

	inflight sync.WaitGroup
}

func newSession(id string, responder Responder, now func() time.Time) *Session {
	s := &Session{
		id:        id,
		responder: responder,
		now:       now,
		nextID:    1,
		pending:   make(map[int]*time.Timer),
		observers: make(map[int]func(Message)),
	}
	s.lastActive = now()
	s.appendLocked(Greeting, true)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Send posts a user message. Empty or whitespace-only text is rejected with
// ErrEmptyMessage and changes nothing.
func (s *Session) Send(text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return Message{}, ErrSessionClosed
	}
	msg := s.appendLocked(text, false)
	s.schedule(text)
	obs := s.observersLocked()
	s.mu.Unlock()

	notify(obs, msg)
	return msg, nil
}

// schedule arms one reply timer. Caller holds s.mu.
func (s *Session) schedule(prompt string) {
	token := s.nextToken
	s.nextToken++
	s.inflight.Add(1)
	s.pending[token] = time.AfterFunc(s.responder.Delay(), func() {
		defer s.inflight.Done()
		s.deliver(token, prompt)
	})
}

func (s *Session) deliver(token int, prompt string) {
	s.mu.Lock()
	if _, ok := s.pending[token]; !ok || s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.pending, token)
	msg := s.appendLocked(s.responder.Respond(prompt), true)
	obs := s.observersLocked()
	s.mu.Unlock()

	notify(obs, msg)
}

func (s *Session) appendLocked(text string, fromBot bool) Message {
	now := s.now()
	msg := Message{ID: s.nextID, Text: text, FromBot: fromBot, Timestamp: now}
	s.nextID++
	s.messages = append(s.messages, msg)
	s.lastActive = now
	return msg
}

// Messages returns the conversation so far, oldest first.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// State reports whether a reply is pending.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.closed:
		return StateClosed
	case len(s.pending) > 0:
		return StateAwaiting
	default:
		return StateIdle
	}
}

// Pending returns the number of replies not yet delivered.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// LastActive is the time of the most recent message.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// Subscribe registers fn to be called with every message appended after
// this call. fn runs outside the session lock, possibly on a timer
// goroutine. The returned func removes the subscription.
func (s *Session) Subscribe(fn func(Message)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// Close cancels pending replies and blocks until any reply already firing
// has returned. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for token, t := range s.pending {
		if t.Stop() {
			s.inflight.Done()
		}
		delete(s.pending, token)
	}
	clear(s.observers)
	s.mu.Unlock()

	s.inflight.Wait()
}

func (s *Session) observersLocked() []func(Message) {
	if len(s.observers) == 0 {
		return nil
	}
	out := make([]func(Message), 0, len(s.observers))
	for _, fn := range s.observers {
		out = append(out, fn)
	}
	return out
}

func notify(obs []func(Message), msg Message) {
	for _, fn := range obs {
		fn(msg)
	}
}
