package domain

import (
	"strings"
	"time"
)

// Review is a buyer's rating of a product. IsVerifiedPurchase is derived at
// creation time from the buyer's completed orders, never supplied by the client.
type Review struct {
	ID                 int64     `json:"id"`
	ProductID          int64     `json:"product_id"`
	BuyerID            int64     `json:"buyer_id"`
	Rating             int       `json:"rating"`
	Title              string    `json:"title"`
	Content            string    `json:"content"`
	Helpful            int       `json:"helpful"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RatingSummary aggregates reviews for a product listing.
type RatingSummary struct {
	ProductID int64   `json:"product_id"`
	Average   float64 `json:"average"`
	Count     int64   `json:"count"`
}

func ValidateNewReview(rating int, title, content string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidInput
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return ErrInvalidInput
	}
	return nil
}
