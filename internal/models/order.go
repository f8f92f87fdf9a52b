// internal/models/order.go
package models

import "time"

// OrderItem is a denormalized snapshot of a purchased cart line. It keeps
// the product name and price as they were at checkout time, not a live
// reference into the catalog.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Color       string  `json:"color,omitempty"`
}

// Customer is the checkout-time snapshot of the buyer's shipping details.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Country string `json:"country"`
}

type Order struct {
	ID          string      `json:"id"`
	Date        time.Time   `json:"date"`
	Customer    Customer    `json:"customer"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	TrackingID  string      `json:"tracking_id,omitempty"`
}
