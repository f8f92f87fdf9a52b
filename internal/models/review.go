// internal/models/review.go
package models

import "time"

// Review is created once against a product and never updated. Admins may
// delete reviews; the product's rating aggregate is recomputed when the
// review set changes.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Date      time.Time `json:"date"`
}
