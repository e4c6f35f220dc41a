package session

import (
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/louisbranch/molehunt/internal/catalog"
	"github.com/louisbranch/molehunt/internal/errors"
	"github.com/louisbranch/molehunt/internal/random"
)

// Manager tracks running sessions by join token.
type Manager struct {
	mu       sync.Mutex
	rng      *rand.Rand
	snapshot *catalog.Snapshot
	reserved map[string]bool
	sessions map[string]*Actor
}

// NewManager builds a manager drawing solutions from the given catalog
// snapshot.
func NewManager(snapshot *catalog.Snapshot) (*Manager, error) {
	seed, err := random.NewSeed()
	if err != nil {
		return nil, err
	}
	return &Manager{
		rng:      rand.New(rand.NewSource(seed)),
		snapshot: snapshot,
		reserved: make(map[string]bool),
		sessions: make(map[string]*Actor),
	}, nil
}

// CreateToken reserves a short numeric join token for a new lobby.
func (m *Manager) CreateToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		token := fmt.Sprintf("%05d", m.rng.Intn(100000))
		if m.reserved[token] {
			continue
		}
		if _, running := m.sessions[token]; running {
			continue
		}
		m.reserved[token] = true
		return token
	}
}

// Start turns a reserved token into a running session.
func (m *Manager) Start(token string, notifier Notifier, infos []PlayerInfo, cfg Config, opts ...Option) (*Actor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, running := m.sessions[token]; running {
		return nil, errors.Newf(errors.CodeSessionExists, "session %s is already running", token)
	}
	if !m.reserved[token] {
		return nil, errors.Newf(errors.CodeSessionNotFound, "token %s was not reserved", token)
	}

	s, err := New(token, notifier, m.snapshot, infos, cfg, opts...)
	if err != nil {
		return nil, err
	}
	actor := NewActor(s)
	delete(m.reserved, token)
	m.sessions[token] = actor
	log.Printf("session started token=%s players=%d", token, len(infos))
	return actor, nil
}

// Get returns the running session for a token.
func (m *Manager) Get(token string) (*Actor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	actor, ok := m.sessions[token]
	if !ok {
		return nil, errors.Newf(errors.CodeSessionNotFound, "no session with token %s", token)
	}
	return actor, nil
}

// End stops and evicts a session.
func (m *Manager) End(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if actor, ok := m.sessions[token]; ok {
		actor.Close()
		delete(m.sessions, token)
		log.Printf("session ended token=%s", token)
	}
	delete(m.reserved, token)
}
