// internal/services/cart_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/atjshop/storefront/internal/models"
	"github.com/atjshop/storefront/internal/store"
)

type CartService struct {
	store store.Store
}

func NewCartService(st store.Store) *CartService {
	return &CartService{store: st}
}

// GetCart returns the owner's cart, or an empty cart when none has been
// saved yet.
func (s *CartService) GetCart(ctx context.Context, ownerID string) (*models.Cart, error) {
	cart, err := s.store.Carts().Get(ctx, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return &models.Cart{OwnerID: ownerID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart, nil
}

// AddItem merges quantity into the existing (product, color) line or appends
// a new one. The same product with a different color is a distinct line.
func (s *CartService) AddItem(ctx context.Context, ownerID, productID string, quantity int, color string) (*models.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.store.Products().Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if i := cart.FindLine(productID, color); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			Product:  *product,
			Quantity: quantity,
			Color:    color,
		})
	}

	if err := s.store.Carts().Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

// RemoveItem deletes cart lines for a product. An empty color removes every
// line of that product; a set color removes only the matching line.
func (s *CartService) RemoveItem(ctx context.Context, ownerID, productID, color string) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.Product.ID == productID && (color == "" || item.Color == color) {
			continue
		}
		kept = append(kept, item)
	}
	cart.Items = kept

	if err := s.store.Carts().Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

// UpdateQuantity sets the quantity on every line of the product. Quantities
// below 1 leave the cart untouched.
func (s *CartService) UpdateQuantity(ctx context.Context, ownerID, productID string, quantity int) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		return cart, nil
	}

	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items[i].Quantity = quantity
		}
	}

	if err := s.store.Carts().Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) ClearCart(ctx context.Context, ownerID string) error {
	if err := s.store.Carts().Delete(ctx, ownerID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
