package store

import (
	"sync"

	"github.com/nakhazaman/restaurant-foh/models"
)

// Cart adalah agregasi pesanan di sisi client: map identitas item -> entry.
// Item disimpan sebagai snapshot dari saat ditambahkan; perubahan menu setelah
// itu tidak mengubah isi cart. Cart tidak pernah memanggil gateway.
type Cart struct {
	mu      sync.Mutex
	entries map[string]*models.CartEntry
	order   []string // urutan insert untuk tampilan
	hub     *Hub
}

func NewCart(hub *Hub) *Cart {
	return &Cart{
		entries: make(map[string]*models.CartEntry),
		hub:     hub,
	}
}

// Add menambah item: entry baru dengan quantity 1, atau quantity naik 1 kalau
// item sudah ada. Tidak ada batas atas di sisi client.
func (c *Cart) Add(item models.MenuItem) {
	c.mu.Lock()
	if entry, ok := c.entries[item.ID]; ok {
		entry.Quantity++
	} else {
		c.entries[item.ID] = &models.CartEntry{Item: item, Quantity: 1}
		c.order = append(c.order, item.ID)
	}
	c.mu.Unlock()

	c.hub.Publish(EventCartUpdate, c.Entries())
}

// Increment menaikkan quantity; no-op kalau item tidak ada di cart.
func (c *Cart) Increment(itemID string) {
	c.mu.Lock()
	entry, ok := c.entries[itemID]
	if !ok {
		c.mu.Unlock()
		return
	}
	entry.Quantity++
	c.mu.Unlock()

	c.hub.Publish(EventCartUpdate, c.Entries())
}

// Decrement menurunkan quantity; turun di bawah 1 menghapus entry sama sekali.
// No-op kalau item tidak ada.
func (c *Cart) Decrement(itemID string) {
	c.mu.Lock()
	entry, ok := c.entries[itemID]
	if !ok {
		c.mu.Unlock()
		return
	}
	if entry.Quantity <= 1 {
		delete(c.entries, itemID)
		c.removeFromOrder(itemID)
	} else {
		entry.Quantity--
	}
	c.mu.Unlock()

	c.hub.Publish(EventCartUpdate, c.Entries())
}

// Entries mengembalikan snapshot isi cart dalam urutan insert.
func (c *Cart) Entries() []models.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]models.CartEntry, 0, len(c.entries))
	for _, id := range c.order {
		if entry, ok := c.entries[id]; ok {
			entries = append(entries, *entry)
		}
	}
	return entries
}

// Total menghitung ulang total dari state sekarang pada setiap panggilan;
// tidak ada total ter-cache yang bisa basi.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, entry := range c.entries {
		total += entry.Item.Price * float64(entry.Quantity)
	}
	return total
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear mengosongkan cart (dipakai setelah submit sukses).
func (c *Cart) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*models.CartEntry)
	c.order = nil
	c.mu.Unlock()

	c.hub.Publish(EventCartUpdate, []models.CartEntry{})
}

// removeFromOrder dipanggil dengan lock sudah dipegang.
func (c *Cart) removeFromOrder(itemID string) {
	for i, id := range c.order {
		if id == itemID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
