package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nakhazaman/restaurant-foh/gateway"
	"github.com/nakhazaman/restaurant-foh/models"
)

func newTestManager(ttl time.Duration) *Manager {
	gw := gateway.NewClient("http://upstream.invalid", time.Second)
	return NewManager(gw, ttl)
}

func TestCreateAndGet(t *testing.T) {
	manager := newTestManager(time.Hour)

	sess := manager.Create("tok", models.User{ID: "u1", Role: models.RoleWaiter})
	assert.NotEmpty(t, sess.ID)
	assert.NotNil(t, sess.Cart)
	assert.NotNil(t, sess.Draft)
	assert.NotNil(t, sess.Board)

	got, ok := manager.Get(sess.ID)
	assert.True(t, ok)
	assert.Equal(t, "tok", got.Token)
	assert.True(t, got.User.IsWaiter())

	_, ok = manager.Get("tidak-ada")
	assert.False(t, ok)
}

func TestDestroy(t *testing.T) {
	manager := newTestManager(time.Hour)
	sess := manager.Create("tok", models.User{ID: "u1"})

	manager.Destroy(sess.ID)
	_, ok := manager.Get(sess.ID)
	assert.False(t, ok)
	assert.Zero(t, manager.Len())
}

func TestExpiry(t *testing.T) {
	manager := newTestManager(10 * time.Millisecond)
	sess := manager.Create("tok", models.User{ID: "u1"})

	time.Sleep(25 * time.Millisecond)

	_, ok := manager.Get(sess.ID)
	assert.False(t, ok)
}

func TestSweep(t *testing.T) {
	manager := newTestManager(10 * time.Millisecond)
	manager.Create("tok", models.User{ID: "u1"})
	manager.Create("tok", models.User{ID: "u2"})

	time.Sleep(25 * time.Millisecond)
	manager.sweep()

	assert.Zero(t, manager.Len())
}

func TestSessionsAreIndependent(t *testing.T) {
	manager := newTestManager(time.Hour)
	first := manager.Create("tok-a", models.User{ID: "u1"})
	second := manager.Create("tok-b", models.User{ID: "u2"})

	first.Cart.Add(models.MenuItem{ID: "m1", Price: 10})
	assert.Equal(t, 1, first.Cart.Len())
	assert.Zero(t, second.Cart.Len())
}
