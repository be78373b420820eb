package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/nakhazaman/restaurant-foh/gateway"
	"github.com/nakhazaman/restaurant-foh/models"
)

// SubmitState adalah state machine flow submit order.
type SubmitState int

const (
	SubmitIdle SubmitState = iota
	Submitting
	SubmitSucceeded
	SubmitFailed
)

func (s SubmitState) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case SubmitSucceeded:
		return "succeeded"
	case SubmitFailed:
		return "failed"
	default:
		return "idle"
	}
}

// OrderPlacer adalah bagian gateway yang dibutuhkan flow submit.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, token string, req gateway.CreateOrderRequest) (*models.Order, string, error)
}

// Submission memegang draft order satu sesi: meja terpilih, catatan, dan
// snapshot cart saat submit. Draft dibuang saat submit sukses.
type Submission struct {
	mu      sync.Mutex
	state   SubmitState
	tableID string
	notes   string

	cart    *Cart
	gw      OrderPlacer
	refresh func(ctx context.Context) error
	hub     *Hub
}

// NewSubmission membuat flow submit. refresh dipanggil setelah submit sukses
// di-acknowledge server (full refetch menu/table/order); boleh nil di test.
func NewSubmission(cart *Cart, gw OrderPlacer, refresh func(ctx context.Context) error, hub *Hub) *Submission {
	return &Submission{
		cart:    cart,
		gw:      gw,
		refresh: refresh,
		hub:     hub,
	}
}

func (s *Submission) SelectTable(tableID string) {
	s.mu.Lock()
	s.tableID = tableID
	s.mu.Unlock()
}

func (s *Submission) SetNotes(notes string) {
	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()
}

func (s *Submission) TableID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tableID
}

func (s *Submission) Notes() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes
}

func (s *Submission) State() SubmitState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit menjalankan satu siklus submit. Urutan precondition: meja dulu, baru
// cart; dua-duanya gagal sebelum ada call ke gateway. Hanya satu submit boleh
// in-flight; percobaan kedua selama Submitting adalah no-op.
//
// Return pertama adalah pesan user-facing (konfirmasi server atau fallback);
// error nil berarti sukses.
func (s *Submission) Submit(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	if s.state == Submitting {
		s.mu.Unlock()
		return "", ErrSubmitInFlight
	}
	if s.tableID == "" {
		s.mu.Unlock()
		return MsgSelectTable, ErrNoTableSelected
	}

	entries := s.cart.Entries()
	if len(entries) == 0 {
		s.mu.Unlock()
		return MsgAddItem, ErrEmptyCart
	}

	s.state = Submitting
	lines := make([]models.OrderLine, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, models.OrderLine{
			MenuItemID: entry.Item.ID,
			Quantity:   entry.Quantity,
		})
	}
	req := gateway.CreateOrderRequest{
		TableID: s.tableID,
		Notes:   strings.TrimSpace(s.notes),
		Items:   lines,
	}
	s.mu.Unlock()
	s.hub.Publish(EventSubmitUpdate, Submitting.String())

	_, message, err := s.gw.CreateOrder(ctx, token, req)
	if err != nil {
		// Gagal: cart dan pilihan meja dibiarkan supaya user bisa retry.
		s.mu.Lock()
		s.state = SubmitFailed
		s.mu.Unlock()
		s.hub.Publish(EventSubmitUpdate, SubmitFailed.String())
		return submitFailureMessage(err), err
	}

	s.mu.Lock()
	s.state = SubmitSucceeded
	s.tableID = ""
	s.notes = ""
	s.mu.Unlock()
	s.cart.Clear()
	s.hub.Publish(EventSubmitUpdate, SubmitSucceeded.String())

	// Refetch penuh setelah ack server; kalau refetch gagal, cache lama
	// bertahan sampai poll berikutnya dan submit tetap dianggap sukses.
	if s.refresh != nil {
		_ = s.refresh(ctx)
	}

	if message == "" {
		message = MsgOrderCreated
	}
	return message, nil
}

// submitFailureMessage memetakan error submit ke pesan user:
// success:false di 2xx -> pesan generik "tidak bisa buat order",
// non-2xx dengan pesan server -> pesan server apa adanya,
// selain itu (transport) -> pesan generik gagal kirim.
func submitFailureMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Logical() {
			return MsgCreateRejected
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return MsgSubmitFailed
}
