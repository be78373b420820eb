package models

// CartEntry adalah satu baris cart: snapshot item dari saat ditambahkan plus
// jumlah. Invariant: Quantity selalu >= 1; entry dengan quantity 0 dihapus,
// bukan disimpan.
type CartEntry struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
}

// Subtotal -> harga snapshot x jumlah.
func (e CartEntry) Subtotal() float64 {
	return e.Item.Price * float64(e.Quantity)
}
