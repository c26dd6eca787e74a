package domain

import (
	"crypto/rand"
	"fmt"
	"time"
)

type LicenseStatus string

const (
	LicenseActive   LicenseStatus = "active"
	LicenseInactive LicenseStatus = "inactive"
	LicenseRevoked  LicenseStatus = "revoked"
	LicenseExpired  LicenseStatus = "expired"
)

// LicenseKey is an opaque unique token granting usage rights to a product.
// BuyerID and OrderID are nil for keys a seller pre-generates ahead of sale;
// a key issued through a purchase belongs to exactly one order/buyer pair.
type LicenseKey struct {
	ID              int64         `json:"id"`
	ProductID       int64         `json:"product_id"`
	Key             string        `json:"key"`
	BuyerID         *int64        `json:"buyer_id,omitempty"`
	OrderID         *int64        `json:"order_id,omitempty"`
	Status          LicenseStatus `json:"status"`
	ActivatedAt     *time.Time    `json:"activated_at,omitempty"`
	ExpiresAt       *time.Time    `json:"expires_at,omitempty"`
	ActivationCount int           `json:"activation_count"`
	MaxActivations  int           `json:"max_activations"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

const keyTokenLength = 20

// Unambiguous uppercase alphabet for license tokens.
const keyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewKeyString generates a "{productId}-{20 random chars}" license key.
// Uniqueness is still enforced by the storage layer; the registry regenerates
// once if a generated key collides.
func NewKeyString(productID int64) string {
	buf := make([]byte, keyTokenLength)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("license key entropy unavailable: %v", err))
	}
	for i := range buf {
		buf[i] = keyAlphabet[int(buf[i])%len(keyAlphabet)]
	}
	return fmt.Sprintf("%d-%s", productID, buf)
}
