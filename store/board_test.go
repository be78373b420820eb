package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nakhazaman/restaurant-foh/gateway"
	"github.com/nakhazaman/restaurant-foh/models"
)

type fakeBoardGateway struct {
	mu sync.Mutex

	menu    []models.MenuItem
	menuErr error

	tables    []models.Table
	tablesErr error

	orders    []models.Order
	ordersErr error

	statusErr   error
	statusCalls int
	lastOrderID string
	lastStatus  models.OrderStatus
	statusBlock chan struct{} // kalau diisi, UpdateOrderStatus menunggu di sini
}

func (f *fakeBoardGateway) ListMenuItems(ctx context.Context, category string) ([]models.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.menuErr != nil {
		return nil, f.menuErr
	}
	return f.menu, nil
}

func (f *fakeBoardGateway) ListTables(ctx context.Context) ([]models.Table, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tablesErr != nil {
		return nil, f.tablesErr
	}
	return f.tables, nil
}

func (f *fakeBoardGateway) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeBoardGateway) UpdateOrderStatus(ctx context.Context, token, orderID string, status models.OrderStatus) (string, error) {
	f.mu.Lock()
	f.statusCalls++
	f.lastOrderID = orderID
	f.lastStatus = status
	block := f.statusBlock
	err := f.statusErr
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return "", err
}

func at(s string) time.Time {
	parsed, _ := time.Parse(time.RFC3339, s)
	return parsed
}

func newBoardFixture() (*fakeBoardGateway, *Board) {
	gw := &fakeBoardGateway{
		menu: []models.MenuItem{
			{ID: "m1", Name: "Kebab", Price: 10},
			{ID: "m2", Name: "Hummus", Price: 5},
		},
		tables: []models.Table{
			{ID: "t1", TableNumber: 1, Capacity: 4, Status: "available"},
			{ID: "t2", TableNumber: 2, Capacity: 2, Status: "occupied"},
		},
	}
	return gw, NewBoard(gw, nil)
}

func TestRefreshSortsOrdersNewestFirst(t *testing.T) {
	gw, board := newBoardFixture()
	gw.orders = []models.Order{
		{ID: "old", CreatedAt: at("2026-08-01T10:00:00Z"), Status: models.StatusPending},
		{ID: "none", Status: models.StatusPending}, // tanpa createdAt
		{ID: "new", CreatedAt: at("2026-08-02T10:00:00Z"), Status: models.StatusServed},
	}

	assert.NoError(t, board.Refresh(context.Background(), "tok"))

	orders := board.Orders()
	assert.Equal(t, []string{"new", "old", "none"}, []string{orders[0].ID, orders[1].ID, orders[2].ID})
}

func TestRefreshMandatoryFetchFailures(t *testing.T) {
	gw, board := newBoardFixture()
	gw.orders = []models.Order{{ID: "o1", Status: models.StatusPending}}
	assert.NoError(t, board.Refresh(context.Background(), "tok"))

	// Menu wajib: gagal -> refresh gagal dan cache lama tidak disentuh.
	gw.mu.Lock()
	gw.menuErr = errors.New("boom")
	gw.mu.Unlock()

	err := board.Refresh(context.Background(), "tok")
	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, MsgMenuFetchFailed, loadErr.UserMessage)
	assert.Len(t, board.Orders(), 1)
	assert.Len(t, board.MenuItems(), 2)

	// Meja juga wajib.
	gw.mu.Lock()
	gw.menuErr = nil
	gw.tablesErr = errors.New("boom")
	gw.mu.Unlock()

	err = board.Refresh(context.Background(), "tok")
	assert.ErrorAs(t, err, &loadErr)
	assert.Equal(t, MsgTableFetchFailed, loadErr.UserMessage)
}

func TestRefreshOrdersAreOptional(t *testing.T) {
	gw, board := newBoardFixture()
	gw.ordersErr = errors.New("401")

	// Order gagal diambil -> view tetap jalan dengan daftar kosong.
	assert.NoError(t, board.Refresh(context.Background(), "tok"))
	assert.Empty(t, board.Orders())
	assert.Len(t, board.MenuItems(), 2)
	assert.Len(t, board.Tables(), 2)
}

func TestCustomerViewCappedStaffViewNot(t *testing.T) {
	gw, board := newBoardFixture()
	for i := 0; i < 10; i++ {
		gw.orders = append(gw.orders, models.Order{
			ID:        string(rune('a' + i)),
			CreatedAt: at("2026-08-01T10:00:00Z").Add(time.Duration(i) * time.Minute),
			Status:    models.StatusPending,
		})
	}
	assert.NoError(t, board.Refresh(context.Background(), "tok"))

	assert.Len(t, board.CustomerView(), CustomerHistoryLimit)
	assert.Len(t, board.StaffView(), 10)
}

func TestViewDeliverFlagsAndOrdering(t *testing.T) {
	gw, board := newBoardFixture()
	gw.orders = []models.Order{
		{ID: "p1", CreatedAt: at("2026-08-01T10:00:00Z"), Status: models.StatusPending},
		{ID: "s1", CreatedAt: at("2026-08-02T10:00:00Z"), Status: models.StatusServed},
		{ID: "d1", CreatedAt: at("2026-08-03T10:00:00Z"), Status: models.StatusPaid},
		{ID: "c1", CreatedAt: at("2026-08-04T10:00:00Z"), Status: models.StatusPreparing},
	}
	assert.NoError(t, board.Refresh(context.Background(), "tok"))

	views := board.StaffView()
	assert.Equal(t, "c1", views[0].ID)
	assert.True(t, views[0].CanDeliver)
	assert.False(t, views[1].CanDeliver) // paid
	assert.False(t, views[2].CanDeliver) // served
	assert.True(t, views[3].CanDeliver)  // pending
	assert.Equal(t, "قيد التحضير", views[0].StatusLabel)
}

func TestTableLabelResolution(t *testing.T) {
	gw, board := newBoardFixture()
	gw.orders = []models.Order{
		// Referensi dokumen ter-populate yang ada di cache meja.
		{ID: "o1", TableID: models.TableRef{ID: "t1", Table: &models.Table{ID: "t1", TableNumber: 1}}, Status: models.StatusPending},
		// Id mentah yang tidak dikenal -> potongan akhir id.
		{ID: "o2", TableID: models.TableRef{ID: "unknown-abcdef"}, Status: models.StatusPending},
		// Tanpa referensi sama sekali -> placeholder.
		{ID: "o3", Status: models.StatusPending},
	}
	assert.NoError(t, board.Refresh(context.Background(), "tok"))

	views := board.StaffView()
	labels := map[string]string{}
	for _, v := range views {
		labels[v.ID] = v.TableLabel
	}
	assert.Equal(t, "#1", labels["o1"])
	assert.Equal(t, "abcdef", labels["o2"])
	assert.Equal(t, "-", labels["o3"])
}

func TestAvailableTablesFilter(t *testing.T) {
	_, board := newBoardFixture()
	assert.NoError(t, board.Refresh(context.Background(), "tok"))

	available := board.AvailableTables()
	assert.Len(t, available, 1)
	assert.Equal(t, "t1", available[0].ID)
}

func TestMarkDeliveredSuccess(t *testing.T) {
	gw, board := newBoardFixture()
	gw.orders = []models.Order{{ID: "o1", CreatedAt: at("2026-08-01T10:00:00Z"), Status: models.StatusPending}}
	assert.NoError(t, board.Refresh(context.Background(), "tok"))

	// Server mengubah status; refetch setelah sukses mengambilnya.
	gw.mu.Lock()
	gw.orders[0].Status = models.StatusServed
	gw.mu.Unlock()

	message, err := board.MarkDelivered(context.Background(), "tok", "o1")
	assert.NoError(t, err)
	assert.Equal(t, MsgOrderDelivered, message)
	assert.Equal(t, "o1", gw.lastOrderID)
	assert.Equal(t, models.StatusServed, gw.lastStatus)
	assert.Equal(t, models.StatusServed, board.Orders()[0].Status)
	assert.False(t, board.Updating("o1"))
}

func TestMarkDeliveredRejectsTerminalStatus(t *testing.T) {
	gw, board := newBoardFixture()
	gw.orders = []models.Order{{ID: "o1", Status: models.StatusServed}}
	assert.NoError(t, board.Refresh(context.Background(), "tok"))

	_, err := board.MarkDelivered(context.Background(), "tok", "o1")
	assert.ErrorIs(t, err, ErrNotDeliverable)
	assert.Zero(t, gw.statusCalls)
}

func TestMarkDeliveredFailureKeepsStatus(t *testing.T) {
	gw, board := newBoardFixture()
	gw.orders = []models.Order{{ID: "o1", Status: models.StatusPending}}
	assert.NoError(t, board.Refresh(context.Background(), "tok"))

	gw.mu.Lock()
	gw.statusErr = &gateway.APIError{StatusCode: 403, Message: "غير مسموح"}
	gw.mu.Unlock()

	message, err := board.MarkDelivered(context.Background(), "tok", "o1")
	assert.Error(t, err)
	assert.Equal(t, "غير مسموح", message)
	// Status lama bertahan sampai refetch berikutnya.
	assert.Equal(t, models.StatusPending, board.Orders()[0].Status)
}

func TestMarkDeliveredSingleFlightPerOrder(t *testing.T) {
	gw, board := newBoardFixture()
	gw.orders = []models.Order{{ID: "o1", Status: models.StatusPending}}
	assert.NoError(t, board.Refresh(context.Background(), "tok"))

	block := make(chan struct{})
	gw.mu.Lock()
	gw.statusBlock = block
	gw.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = board.MarkDelivered(context.Background(), "tok", "o1")
	}()

	assert.Eventually(t, func() bool {
		return board.Updating("o1")
	}, time.Second, 5*time.Millisecond)

	// Klik kedua pada order yang sama selama in-flight ditolak.
	_, err := board.MarkDelivered(context.Background(), "tok", "o1")
	assert.ErrorIs(t, err, ErrUpdateInFlight)

	gw.mu.Lock()
	gw.statusBlock = nil
	gw.mu.Unlock()
	close(block)
	<-done
}
