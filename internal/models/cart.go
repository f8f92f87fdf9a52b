// internal/models/cart.go
package models

// CartItem is one cart line. Two lines for the same product with different
// colors are distinct; the line key is (ProductID, Color).
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Color    string  `json:"color,omitempty"`
}

// Cart is the set of lines held for one owner (a user id or an anonymous
// session id). Line order is insertion order.
type Cart struct {
	OwnerID string     `json:"owner_id"`
	Items   []CartItem `json:"items"`
}

// Total recomputes the cart total on demand.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}

// FindLine returns the index of the line with the given key, or -1.
func (c *Cart) FindLine(productID, color string) int {
	for i, item := range c.Items {
		if item.Product.ID == productID && item.Color == color {
			return i
		}
	}
	return -1
}
