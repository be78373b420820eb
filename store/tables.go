package store

import "github.com/nakhazaman/restaurant-foh/models"

// Table Selector: view turunan dari cache meja, di-recompute setiap kali
// cache diganti di Refresh. Tidak ada mutasi di sini; pemilihan meja sendiri
// hidup di Submission.

func availableIn(tables []models.Table) []models.Table {
	available := make([]models.Table, 0, len(tables))
	for _, table := range tables {
		if table.Available() {
			available = append(available, table)
		}
	}
	return available
}

// AvailableTables mengembalikan meja berstatus available untuk dipilih pada
// order baru.
func (b *Board) AvailableTables() []models.Table {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Table(nil), b.available...)
}

func (b *Board) Tables() []models.Table {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Table(nil), b.tables...)
}

// tableLabelLocked memetakan referensi meja sebuah order (id mentah atau
// dokumen ter-populate) ke nomor meja. Kalau meja tidak ketemu di cache,
// jatuh ke potongan akhir id, lalu ke placeholder.
func (b *Board) tableLabelLocked(order models.Order) string {
	if table, ok := b.tableByID[order.TableID.ID]; ok {
		return table.Label()
	}
	if order.TableID.ID != "" {
		return models.ShortID(order.TableID.ID)
	}
	return "-"
}
