package chat

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cbaxter/domainfolio/internal/model"
)

// ErrSessionClosed is returned when sending to a closed session.
var ErrSessionClosed = errors.New("chat session closed")

// Session is one visitor's negotiation transcript. The owner reply to each
// user message arrives after a fixed artificial delay on a cancellable
// timer, so closing the session never leaves a dangling transcript write.
type Session struct {
	ID       uuid.UUID
	Domain   string // domain name the negotiation is about, may be empty
	OpenedAt time.Time

	responder *Responder
	delay     time.Duration

	mu       sync.Mutex
	messages []model.ChatMessage
	pending  []*time.Timer
	lastSeen time.Time
	closed   bool
}

func newSession(domainName string, responder *Responder, delay time.Duration) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.New(),
		Domain:    domainName,
		OpenedAt:  now,
		responder: responder,
		delay:     delay,
		lastSeen:  now,
	}
	if domainName != "" {
		s.messages = append(s.messages, model.ChatMessage{
			ID:     uuid.New(),
			Role:   model.RoleOwner,
			Text:   Greeting(domainName),
			SentAt: now,
		})
	}
	return s
}

// Send appends the user message to the transcript immediately and schedules
// the owner's reply after the session delay. The computed reply only becomes
// visible once the timer fires; Send itself never blocks on it.
func (s *Session) Send(text string) (model.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return model.ChatMessage{}, ErrSessionClosed
	}

	msg := model.ChatMessage{
		ID:     uuid.New(),
		Role:   model.RoleUser,
		Text:   text,
		SentAt: time.Now(),
	}
	s.messages = append(s.messages, msg)
	s.lastSeen = msg.SentAt

	reply := s.responder.Respond(text)
	s.pending = append(s.pending, time.AfterFunc(s.delay, func() {
		s.deliver(reply)
	}))

	return msg, nil
}

// deliver appends the owner reply unless the session was closed while the
// timer was pending.
func (s *Session) deliver(reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.messages = append(s.messages, model.ChatMessage{
		ID:     uuid.New(),
		Role:   model.RoleOwner,
		Text:   reply,
		SentAt: time.Now(),
	})
}

// Transcript returns a copy of the messages so far, oldest first.
func (s *Session) Transcript() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeen = time.Now()
	out := make([]model.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Close marks the session closed and stops any pending reply timers.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for _, t := range s.pending {
		t.Stop()
	}
	s.pending = nil
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Manager is the session registry. A background janitor expires sessions
// that have been idle longer than the configured TTL.
type Manager struct {
	responder *Responder
	delay     time.Duration
	idleTTL   time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewManager creates a manager whose sessions reply after delay and are
// expired once idle for idleTTL.
func NewManager(responder *Responder, delay, idleTTL time.Duration) *Manager {
	return &Manager{
		responder: responder,
		delay:     delay,
		idleTTL:   idleTTL,
		sessions:  make(map[uuid.UUID]*Session),
		stopChan:  make(chan struct{}),
	}
}

// Open creates a new session. A non-empty domainName seeds the transcript
// with the owner's context greeting.
func (m *Manager) Open(domainName string) *Session {
	s := newSession(domainName, m.responder, m.delay)

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s
}

// Get returns the session with the given id.
func (m *Manager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close closes and removes the session with the given id. It reports
// whether a session was found.
func (m *Manager) Close(id uuid.UUID) bool {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		s.Close()
	}
	return ok
}

// Start begins the janitor loop.
func (m *Manager) Start() {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(m.idleTTL / 2)
		defer ticker.Stop()
		for {
			select {
			case <-m.stopChan:
				return
			case <-ticker.C:
				m.expireIdle()
			}
		}
	}()
}

// Stop stops the janitor and closes every live session.
func (m *Manager) Stop() {
	close(m.stopChan)
	m.wg.Wait()

	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

func (m *Manager) expireIdle() {
	cutoff := time.Now().Add(-m.idleTTL)

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if s.idleSince().Before(cutoff) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	if len(expired) > 0 {
		log.Printf("Chat janitor: expired %d idle session(s)", len(expired))
	}
}
