package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims adalah claim yang kita baca dari bearer token API pusat.
// Client tidak memegang signing secret server, jadi token di-parse tanpa
// verifikasi -- hanya untuk membaca role/expiry buat gating tampilan.
// Otoritas tetap di server: setiap call tetap membawa token apa adanya.
type TokenClaims struct {
	UserID   string `json:"user_id,omitempty"`
	Role     string `json:"role,omitempty"`
	FullName string `json:"fullName,omitempty"`
	jwt.RegisteredClaims
}

// ExtractClaims membaca claim dari token tanpa validasi signature.
func ExtractClaims(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Expired -> true kalau token membawa exp dan sudah lewat. Token tanpa exp
// dianggap masih berlaku; server yang akan menolaknya kalau tidak.
func (c *TokenClaims) Expired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return time.Now().After(c.ExpiresAt.Time)
}
