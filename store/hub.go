package store

import "sync"

// Event types
const (
	EventCartUpdate   = "cart_update"
	EventOrderUpdate  = "order_update"
	EventTableUpdate  = "table_update"
	EventMenuUpdate   = "menu_update"
	EventSubmitUpdate = "submit_update"
)

type Event struct {
	Name string      `json:"event"`
	Data interface{} `json:"data"`
}

// Hub menampung subscriber dari satu sesi dan menyiarkan perubahan state
// (cart, order, table) supaya tiap store bisa diuji tanpa runtime UI.
// Tidak ada push real-time ke browser: browser tetap poll/refetch.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]func(Event)
	nextID int
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[int]func(Event)),
	}
}

// Subscribe mendaftarkan callback dan mengembalikan fungsi untuk melepasnya.
func (h *Hub) Subscribe(fn func(Event)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++
	h.subs[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// Publish menyiarkan event ke semua subscriber.
func (h *Hub) Publish(name string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.Lock()
	handlers := make([]func(Event), 0, len(h.subs))
	for _, fn := range h.subs {
		handlers = append(handlers, fn)
	}
	h.mu.Unlock()

	event := Event{Name: name, Data: data}
	for _, fn := range handlers {
		fn(event)
	}
}
