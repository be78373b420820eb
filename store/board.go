package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/nakhazaman/restaurant-foh/gateway"
	"github.com/nakhazaman/restaurant-foh/models"
)

// CustomerHistoryLimit membatasi riwayat order di tampilan customer.
// Waiter melihat semua order tanpa batas.
const CustomerHistoryLimit = 8

// BoardGateway adalah bagian gateway yang dibutuhkan papan order.
type BoardGateway interface {
	ListMenuItems(ctx context.Context, category string) ([]models.MenuItem, error)
	ListTables(ctx context.Context) ([]models.Table, error)
	ListOrders(ctx context.Context, token string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus) (string, error)
}

// Board memegang cache menu/meja/order satu sesi. Cache diganti utuh pada
// setiap Refresh, tidak pernah di-merge sebagian, jadi refetch yang balapan
// berakhir last-writer-wins pada snapshot yang sama-sama otoritatif.
type Board struct {
	mu  sync.Mutex
	gw  BoardGateway
	hub *Hub

	menu      []models.MenuItem
	menuByID  map[string]models.MenuItem
	tables    []models.Table
	tableByID map[string]models.Table
	available []models.Table
	orders    []models.Order

	// advisory flag per order selama PUT status berjalan; server tetap
	// penentu akhir statusnya
	updating map[string]bool
}

func NewBoard(gw BoardGateway, hub *Hub) *Board {
	return &Board{
		gw:        gw,
		hub:       hub,
		menuByID:  make(map[string]models.MenuItem),
		tableByID: make(map[string]models.Table),
		updating:  make(map[string]bool),
	}
}

// LoadError menandai kegagalan fetch gabungan dengan pesan user-nya.
type LoadError struct {
	UserMessage string
	Err         error
}

func (e *LoadError) Error() string {
	return e.UserMessage + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Refresh menarik ulang menu, meja, dan order sekaligus. Menu dan meja wajib:
// kalau salah satunya gagal, Refresh berhenti dan cache lama tidak disentuh.
// Order opsional: gagal ambil order hanya menurunkan tampilan jadi daftar
// kosong, bukan menggagalkan seluruh view.
func (b *Board) Refresh(ctx context.Context, token string) error {
	menu, err := b.gw.ListMenuItems(ctx, "")
	if err != nil {
		return &LoadError{UserMessage: MsgMenuFetchFailed, Err: err}
	}

	tables, err := b.gw.ListTables(ctx)
	if err != nil {
		return &LoadError{UserMessage: MsgTableFetchFailed, Err: err}
	}

	orders, err := b.gw.ListOrders(ctx, token)
	if err != nil {
		orders = nil
	}
	sortOrders(orders)

	b.mu.Lock()
	b.menu = menu
	b.menuByID = make(map[string]models.MenuItem, len(menu))
	for _, item := range menu {
		b.menuByID[item.ID] = item
	}
	b.tables = tables
	b.tableByID = make(map[string]models.Table, len(tables))
	for _, table := range tables {
		b.tableByID[table.ID] = table
	}
	b.available = availableIn(tables)
	b.orders = orders
	b.mu.Unlock()

	b.hub.Publish(EventMenuUpdate, len(menu))
	b.hub.Publish(EventTableUpdate, len(tables))
	b.hub.Publish(EventOrderUpdate, len(orders))
	return nil
}

// sortOrders mengurutkan order terbaru dulu; order tanpa createdAt (zero time)
// jatuh ke paling akhir.
func sortOrders(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// OrderView adalah satu baris papan order yang siap dirender.
type OrderView struct {
	ID           string             `json:"id"`
	ShortID      string             `json:"shortId"`
	TableLabel   string             `json:"tableLabel"`
	Status       models.OrderStatus `json:"status"`
	StatusLabel  string             `json:"statusLabel"`
	ItemCount    int                `json:"itemCount"`
	CreatedAt    time.Time          `json:"createdAt"`
	CreatedLabel string             `json:"createdLabel"`
	CanDeliver   bool               `json:"canDeliver"`
	Updating     bool               `json:"updating"`
}

// CustomerView -> riwayat read-only, maksimal 8 order terbaru.
func (b *Board) CustomerView() []OrderView {
	return b.view(CustomerHistoryLimit)
}

// StaffView -> semua order, dengan flag aksi deliver per order.
func (b *Board) StaffView() []OrderView {
	return b.view(0)
}

func (b *Board) view(limit int) []OrderView {
	b.mu.Lock()
	defer b.mu.Unlock()

	orders := b.orders
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, OrderView{
			ID:           order.ID,
			ShortID:      order.ShortID(),
			TableLabel:   b.tableLabelLocked(order),
			Status:       order.Status,
			StatusLabel:  order.Status.Label(),
			ItemCount:    len(order.Items),
			CreatedAt:    order.CreatedAt,
			CreatedLabel: formatDate(order.CreatedAt),
			CanDeliver:   order.Status.Deliverable(),
			Updating:     b.updating[order.ID],
		})
	}
	return views
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2/1/2006, 15:04:05")
}

// MarkDelivered meminta transisi order ke served. Satu update per order boleh
// in-flight (dikunci per identitas order); order lain tetap bisa diproses.
// Sukses memicu refetch penuh supaya status dan status meja ikut server;
// pembebasan meja adalah efek samping milik server, bukan dihitung di sini.
func (b *Board) MarkDelivered(ctx context.Context, token, orderID string) (string, error) {
	b.mu.Lock()
	if b.updating[orderID] {
		b.mu.Unlock()
		return "", ErrUpdateInFlight
	}
	for _, order := range b.orders {
		if order.ID == orderID && !order.Status.Deliverable() {
			b.mu.Unlock()
			return "", ErrNotDeliverable
		}
	}
	b.updating[orderID] = true
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.updating, orderID)
		b.mu.Unlock()
	}()

	if _, err := b.gw.UpdateOrderStatus(ctx, token, orderID, models.StatusServed); err != nil {
		// Status lama tetap tampil sampai refetch berikutnya.
		return deliverFailureMessage(err), err
	}

	// Refetch setelah ack; kalau gagal, poll berikutnya yang menyusul.
	_ = b.Refresh(ctx, token)
	return MsgOrderDelivered, nil
}

func deliverFailureMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Logical() {
			return MsgUpdateRejected
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return MsgUpdateFailed
}

func (b *Board) MenuItems() []models.MenuItem {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.MenuItem(nil), b.menu...)
}

// MenuItem mencari item di cache menu; snapshot inilah yang masuk cart.
func (b *Board) MenuItem(itemID string) (models.MenuItem, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	item, ok := b.menuByID[itemID]
	return item, ok
}

func (b *Board) Orders() []models.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Order(nil), b.orders...)
}

// Updating melaporkan flag in-flight aksi deliver untuk satu order.
func (b *Board) Updating(orderID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.updating[orderID]
}
