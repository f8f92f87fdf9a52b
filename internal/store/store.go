// internal/store/store.go
package store

import (
	"context"
	"errors"

	"github.com/atjshop/storefront/internal/models"
)

// ErrNotFound is returned by every repository when a lookup misses.
// Callers surface it as a not-found response rather than an internal error.
var ErrNotFound = errors.New("record not found")

// Store aggregates the repositories the services are built against. The
// shipped implementation is in-memory and seeded from fixtures; a real
// persistence layer can replace it without touching call sites.
type Store interface {
	Products() ProductRepository
	Orders() OrderRepository
	Reviews() ReviewRepository
	Users() UserRepository
	Carts() CartRepository
}

type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	Update(ctx context.Context, order *models.Order) error
}

type ReviewRepository interface {
	List(ctx context.Context) ([]models.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type CartRepository interface {
	Get(ctx context.Context, ownerID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, ownerID string) error
}
