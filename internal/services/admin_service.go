// internal/services/admin_service.go
package services

import (
	"context"
	"fmt"

	"github.com/atjshop/storefront/internal/models"
	"github.com/atjshop/storefront/internal/store"
	"github.com/atjshop/storefront/internal/utils"
)

type AdminService struct {
	store store.Store
}

func NewAdminService(st store.Store) *AdminService {
	return &AdminService{store: st}
}

type DashboardStats struct {
	TotalProducts  int                        `json:"total_products"`
	TotalOrders    int                        `json:"total_orders"`
	TotalUsers     int                        `json:"total_users"`
	TotalReviews   int                        `json:"total_reviews"`
	TotalRevenue   float64                    `json:"total_revenue"`
	PendingOrders  int                        `json:"pending_orders"`
	OrdersByStatus map[models.OrderStatus]int `json:"orders_by_status"`
}

// GetDashboardStats aggregates the back-office dashboard counters. Revenue
// excludes cancelled orders.
func (s *AdminService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	products, err := s.store.Products().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	orders, err := s.store.Orders().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	reviews, err := s.store.Reviews().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	stats := &DashboardStats{
		TotalProducts:  len(products),
		TotalOrders:    len(orders),
		TotalUsers:     len(users),
		TotalReviews:   len(reviews),
		OrdersByStatus: make(map[models.OrderStatus]int),
	}

	for _, o := range orders {
		stats.OrdersByStatus[o.Status]++
		if o.Status == models.OrderStatusPending {
			stats.PendingOrders++
		}
		if o.Status != models.OrderStatusCancelled {
			stats.TotalRevenue += o.TotalAmount
		}
	}

	return stats, nil
}

func (s *AdminService) ListUsers(ctx context.Context, params utils.PaginationParams) ([]models.User, int64, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}
	total := int64(len(users))
	return utils.Paginate(users, params), total, nil
}
