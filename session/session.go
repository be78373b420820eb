package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nakhazaman/restaurant-foh/gateway"
	"github.com/nakhazaman/restaurant-foh/models"
	"github.com/nakhazaman/restaurant-foh/store"
)

// CookieName adalah nama cookie session di browser.
const CookieName = "foh_session"

// Session adalah state front-of-house satu browser: credential upstream plus
// store per sesi (cart, draft submit, papan order). Semua state ini hilang
// saat sesi berakhir; tidak ada yang dipersist.
type Session struct {
	ID    string
	Token string
	User  models.User

	Hub   *store.Hub
	Cart  *store.Cart
	Draft *store.Submission
	Board *store.Board

	CreatedAt time.Time
	lastSeen  time.Time
}

// Manager memegang semua sesi aktif di memory, dengan sweep periodik untuk
// sesi yang lewat TTL.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	gw       *gateway.Client
	stop     chan struct{}
	stopOnce sync.Once
}

func NewManager(gw *gateway.Client, ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		gw:       gw,
		stop:     make(chan struct{}),
	}
}

// Create membuat sesi baru untuk credential hasil login dan merangkai store
// per sesinya: cart -> submission -> board, dengan refetch penuh sebagai hook
// sukses submit.
func (m *Manager) Create(token string, user models.User) *Session {
	hub := store.NewHub()
	cart := store.NewCart(hub)
	board := store.NewBoard(m.gw, hub)
	refresh := func(ctx context.Context) error {
		return board.Refresh(ctx, token)
	}
	draft := store.NewSubmission(cart, m.gw, refresh, hub)

	sess := &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		Hub:       hub,
		Cart:      cart,
		Draft:     draft,
		Board:     board,
		CreatedAt: time.Now(),
		lastSeen:  time.Now(),
	}

	m.mu.Lock()
	m.sessions[sess.ID] = sess
	m.mu.Unlock()
	return sess
}

// Get mengambil sesi dan menyentuh lastSeen-nya. Sesi yang sudah lewat TTL
// dianggap tidak ada.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Since(sess.lastSeen) > m.ttl {
		delete(m.sessions, id)
		return nil, false
	}
	sess.lastSeen = time.Now()
	return sess, true
}

func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartCleanup menjalankan sweep periodik sesi kadaluarsa.
func (m *Manager) StartCleanup(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.sweep()
			case <-m.stop:
				return
			}
		}
	}()
}

func (m *Manager) StopCleanup() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})
}

func (m *Manager) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, sess := range m.sessions {
		if time.Since(sess.lastSeen) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
