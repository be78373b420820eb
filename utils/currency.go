package utils

import "fmt"

// FormatCurrency memformat angka ke format mata uang dinar dengan 2 desimal,
// sama dengan tampilan di halaman order.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("%.2f دينار", amount)
}
