package models

import (
	"encoding/json"
	"time"
)

// OrderStatus adalah lifecycle order di server:
// pending -> preparing -> served -> paid.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusServed    OrderStatus = "served"
	StatusPaid      OrderStatus = "paid"
)

var statusLabels = map[OrderStatus]string{
	StatusPending:   "معلق",
	StatusPreparing: "قيد التحضير",
	StatusServed:    "تم التقديم",
	StatusPaid:      "مدفوع",
}

// Label mengembalikan label status dalam bahasa Arab. Status yang tidak
// dikenal ditampilkan apa adanya supaya status baru dari server tetap terbaca.
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s OrderStatus) Known() bool {
	_, ok := statusLabels[s]
	return ok
}

// Deliverable -> aksi "tandai terkirim" hanya untuk order yang belum
// served/paid.
func (s OrderStatus) Deliverable() bool {
	return s != StatusServed && s != StatusPaid
}

// TableRef menangani dua bentuk field tableId di wire: string id mentah atau
// dokumen table yang di-populate server.
type TableRef struct {
	ID    string
	Table *Table
}

func (r *TableRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		return nil
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return err
	}
	r.ID = table.ID
	r.Table = &table
	return nil
}

func (r TableRef) MarshalJSON() ([]byte, error) {
	if r.Table != nil {
		return json.Marshal(r.Table)
	}
	return json.Marshal(r.ID)
}

// OrderLine adalah satu baris item pada order (request maupun response).
type OrderLine struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// Order adalah salinan read-only milik server. Client tidak pernah
// mengubahnya langsung, hanya meminta transisi status lalu refetch.
type Order struct {
	ID        string      `json:"_id"`
	TableID   TableRef    `json:"tableId"`
	Items     []OrderLine `json:"items"`
	Status    OrderStatus `json:"status"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ShortID -> 6 karakter terakhir id untuk tampilan.
func (o Order) ShortID() string {
	return ShortID(o.ID)
}

func ShortID(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
