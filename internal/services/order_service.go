// internal/services/order_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atjshop/storefront/internal/models"
	"github.com/atjshop/storefront/internal/store"
	"github.com/atjshop/storefront/internal/utils"
)

// ErrEmptyCart rejects checkout for a cart with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// InvalidTransitionError reports a rejected order status change.
type InvalidTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order status cannot move from %s to %s", e.From, e.To)
}

type OrderService struct {
	store store.Store
	carts *CartService
}

func NewOrderService(st store.Store, carts *CartService) *OrderService {
	return &OrderService{store: st, carts: carts}
}

type CheckoutRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,min=5"`
	Country string `json:"country" validate:"required"`
}

// Checkout snapshots the owner's cart into a new order in the pending state
// and clears the cart. Order items are denormalized copies; later catalog
// edits do not touch them.
func (s *OrderService) Checkout(ctx context.Context, ownerID string, req *CheckoutRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cart, err := s.carts.GetCart(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	id, err := utils.NewOrderID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order id: %w", err)
	}

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Price:       line.Product.Price,
			Color:       line.Color,
		})
	}

	order := &models.Order{
		ID:   id,
		Date: time.Now().UTC(),
		Customer: models.Customer{
			Name:    req.Name,
			Email:   req.Email,
			Address: req.Address,
			Country: req.Country,
		},
		Items:       items,
		TotalAmount: cart.Total(),
		Status:      models.OrderStatusPending,
	}

	if err := s.store.Orders().Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.carts.ClearCart(ctx, ownerID); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder is the public track-order lookup.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.store.Orders().Get(ctx, id)
}

type OrderSearchParams struct {
	utils.PaginationParams
	Status *models.OrderStatus
}

// ListOrders returns orders newest first, optionally filtered by status and
// searched by order id or customer email.
func (s *OrderService) ListOrders(ctx context.Context, params OrderSearchParams) ([]models.Order, int64, error) {
	orders, err := s.store.Orders().List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	if params.Status != nil {
		matched := orders[:0]
		for _, o := range orders {
			if o.Status == *params.Status {
				matched = append(matched, o)
			}
		}
		orders = matched
	}

	if params.Search != "" {
		term := strings.ToLower(params.Search)
		matched := orders[:0]
		for _, o := range orders {
			if strings.Contains(strings.ToLower(o.ID), term) ||
				strings.Contains(strings.ToLower(o.Customer.Email), term) ||
				strings.Contains(strings.ToLower(o.Customer.Name), term) {
				matched = append(matched, o)
			}
		}
		orders = matched
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})

	total := int64(len(orders))
	return utils.Paginate(orders, params.PaginationParams), total, nil
}

// UpdateStatus moves an order along the fulfillment lifecycle. Setting the
// current status again succeeds without touching the record. A tracking id
// is assigned the first time an order ships.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, target models.OrderStatus) (*models.Order, error) {
	order, err := s.store.Orders().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.Status == target {
		return order, nil
	}
	if !order.Status.CanTransitionTo(target) {
		return nil, &InvalidTransitionError{From: order.Status, To: target}
	}

	updated := *order
	updated.Status = target
	if target == models.OrderStatusShipped && updated.TrackingID == "" {
		trackingID, err := utils.NewTrackingID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate tracking id: %w", err)
		}
		updated.TrackingID = trackingID
	}

	if err := s.store.Orders().Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// CancelOrder cancels a non-terminal order.
func (s *OrderService) CancelOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.UpdateStatus(ctx, id, models.OrderStatusCancelled)
}
