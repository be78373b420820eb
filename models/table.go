package models

import "fmt"

// TableStatusAvailable adalah satu-satunya status meja yang boleh dipilih
// untuk order baru. Status lain (occupied, reserved, dll) datang dari server
// dan tidak kita tafsirkan lebih jauh.
const TableStatusAvailable = "available"

type Table struct {
	ID          string `json:"_id"`
	TableNumber int    `json:"tableNumber"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
}

func (t Table) Available() bool {
	return t.Status == TableStatusAvailable
}

// Label -> label tampilan meja, misal "#4".
func (t Table) Label() string {
	return fmt.Sprintf("#%d", t.TableNumber)
}
