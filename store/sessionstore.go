package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/minaorangina/hanabi/engine"
	"github.com/minaorangina/hanabi/protocol"
)

var (
	ErrUnknownSessionID   = errors.New("unknown session ID")
	ErrDuplicateSessionID = errors.New("session ID already exists")
	ErrStoreFull          = errors.New("session store is full")
	ErrNilSession         = errors.New("session is nil")
)

// SessionInfo is what the store can tell anyone about a live session
type SessionInfo struct {
	ID    string           `json:"id"`
	Phase engine.Phase     `json:"phase"`
	Last  *protocol.Report `json:"last,omitempty"`
}

type SessionStore interface {
	Add(s *engine.Session) error
	Remove(id string)
	Record(id string, reports []protocol.Report) error
	Snapshot(id string) (SessionInfo, error)
	List() []SessionInfo
}

type entry struct {
	session *engine.Session
	phase   engine.Phase
	last    *protocol.Report
}

// InMemorySessionStore maps session id to session.
// Sessions themselves are driven by a single goroutine each; the store only
// hands out copies of what was last recorded, so readers never touch a
// session mid step.
type InMemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]*entry
	capacity int
}

// NewInMemorySessionStore constructs a store. A capacity of 0 or less
// means there is no limit.
func NewInMemorySessionStore(capacity int) *InMemorySessionStore {
	return &InMemorySessionStore{
		sessions: map[string]*entry{},
		capacity: capacity,
	}
}

func (s *InMemorySessionStore) Add(session *engine.Session) error {
	if session == nil {
		return ErrNilSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSessionID, session.ID())
	}
	if s.capacity > 0 && len(s.sessions) >= s.capacity {
		return fmt.Errorf("%w: %d sessions", ErrStoreFull, s.capacity)
	}

	s.sessions[session.ID()] = &entry{session: session, phase: session.Phase()}
	return nil
}

func (s *InMemorySessionStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

// Record keeps the phase and the latest of the reports produced by a step.
// It must be called from the goroutine driving the session.
func (s *InMemorySessionStore) Record(id string, reports []protocol.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSessionID, id)
	}

	e.phase = e.session.Phase()
	if len(reports) > 0 {
		last := reports[len(reports)-1]
		e.last = &last
	}
	return nil
}

func (s *InMemorySessionStore) Snapshot(id string) (SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return SessionInfo{}, fmt.Errorf("%w: %s", ErrUnknownSessionID, id)
	}
	return e.info(id), nil
}

// List returns every live session, ordered by id
func (s *InMemorySessionStore) List() []SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]SessionInfo, 0, len(s.sessions))
	for id, e := range s.sessions {
		info := e.info(id)
		info.Last = nil
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

func (e *entry) info(id string) SessionInfo {
	info := SessionInfo{ID: id, Phase: e.phase}
	if e.last != nil {
		last := *e.last
		info.Last = &last
	}
	return info
}
