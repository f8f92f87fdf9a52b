// internal/store/memory/memory.go
package memory

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/atjshop/storefront/internal/models"
	"github.com/atjshop/storefront/internal/store"
	"github.com/atjshop/storefront/internal/store/snapshot"
)

const (
	cartsSnapshotFile = "carts.json"
	usersSnapshotFile = "users.json"
)

// userRecord is the snapshot shape for a user. The API model hides the
// password hash from JSON, but the snapshot must keep it or logins would
// break across restarts.
type userRecord struct {
	ID           string          `json:"id"`
	Email        string          `json:"email"`
	Name         string          `json:"name"`
	Role         models.UserRole `json:"role"`
	PasswordHash string          `json:"password_hash"`
	CreatedAt    time.Time       `json:"created_at"`
}

func toUserRecords(users []models.User) []userRecord {
	records := make([]userRecord, 0, len(users))
	for _, u := range users {
		records = append(records, userRecord{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			Role:         u.Role,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
		})
	}
	return records
}

func fromUserRecords(records []userRecord) []models.User {
	users := make([]models.User, 0, len(records))
	for _, r := range records {
		users = append(users, models.User{
			ID:           r.ID,
			Email:        r.Email,
			Name:         r.Name,
			Role:         r.Role,
			PasswordHash: r.PasswordHash,
			CreatedAt:    r.CreatedAt,
		})
	}
	return users
}

type Options struct {
	// Latency is applied to every repository call to simulate a network
	// round trip. Zero disables the delay (tests run with zero).
	Latency time.Duration

	// SnapshotDir, when set, enables JSON snapshot persistence for carts
	// and users. Empty disables it.
	SnapshotDir string
}

// Store is the in-memory store.Store implementation. All collections are
// guarded by a single RWMutex; records are treated as immutable and replaced
// wholesale on update.
type Store struct {
	mu       sync.RWMutex
	opts     Options
	products []models.Product
	orders   []models.Order
	reviews  []models.Review
	users    []models.User
	carts    map[string]models.Cart
}

func New(opts Options) *Store {
	s := &Store{
		opts:  opts,
		carts: make(map[string]models.Cart),
	}
	s.restoreSnapshots()
	return s
}

var _ store.Store = (*Store)(nil)

func (s *Store) Products() store.ProductRepository { return &productRepo{s} }
func (s *Store) Orders() store.OrderRepository     { return &orderRepo{s} }
func (s *Store) Reviews() store.ReviewRepository   { return &reviewRepo{s} }
func (s *Store) Users() store.UserRepository       { return &userRepo{s} }
func (s *Store) Carts() store.CartRepository       { return &cartRepo{s} }

// delay simulates backend latency while still honoring cancellation.
func (s *Store) delay(ctx context.Context) error {
	if s.opts.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.opts.Latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) restoreSnapshots() {
	if s.opts.SnapshotDir == "" {
		return
	}

	var carts map[string]models.Cart
	err := snapshot.Load(filepath.Join(s.opts.SnapshotDir, cartsSnapshotFile), &carts)
	switch {
	case err == nil:
		s.carts = carts
	case errors.Is(err, snapshot.ErrNotExist):
	case errors.Is(err, snapshot.ErrMalformed):
		logrus.WithError(err).Warn("Discarding malformed cart snapshot")
	default:
		logrus.WithError(err).Warn("Failed to read cart snapshot")
	}

	var users []userRecord
	err = snapshot.Load(filepath.Join(s.opts.SnapshotDir, usersSnapshotFile), &users)
	switch {
	case err == nil:
		s.users = fromUserRecords(users)
	case errors.Is(err, snapshot.ErrNotExist):
	case errors.Is(err, snapshot.ErrMalformed):
		logrus.WithError(err).Warn("Discarding malformed user snapshot")
	default:
		logrus.WithError(err).Warn("Failed to read user snapshot")
	}
}

// persistCarts must be called with the lock held.
func (s *Store) persistCarts() {
	if s.opts.SnapshotDir == "" {
		return
	}
	path := filepath.Join(s.opts.SnapshotDir, cartsSnapshotFile)
	if err := snapshot.Save(path, s.carts); err != nil {
		logrus.WithError(err).Error("Failed to write cart snapshot")
	}
}

// persistUsers must be called with the lock held.
func (s *Store) persistUsers() {
	if s.opts.SnapshotDir == "" {
		return
	}
	path := filepath.Join(s.opts.SnapshotDir, usersSnapshotFile)
	if err := snapshot.Save(path, toUserRecords(s.users)); err != nil {
		logrus.WithError(err).Error("Failed to write user snapshot")
	}
}

// Products

type productRepo struct{ s *Store }

func (r *productRepo) List(ctx context.Context) ([]models.Product, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]models.Product(nil), r.s.products...), nil
}

func (r *productRepo) Get(ctx context.Context, id string) (*models.Product, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.products = append(r.s.products, *product)
	return nil
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.products {
		if p.ID == product.ID {
			r.s.products[i] = *product
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.products {
		if p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// Orders

type orderRepo struct{ s *Store }

func (r *orderRepo) List(ctx context.Context) ([]models.Order, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]models.Order(nil), r.s.orders...), nil
}

func (r *orderRepo) Get(ctx context.Context, id string) (*models.Order, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.orders = append(r.s.orders, *order)
	return nil
}

func (r *orderRepo) Update(ctx context.Context, order *models.Order) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, o := range r.s.orders {
		if o.ID == order.ID {
			r.s.orders[i] = *order
			return nil
		}
	}
	return store.ErrNotFound
}

// Reviews

type reviewRepo struct{ s *Store }

func (r *reviewRepo) List(ctx context.Context) ([]models.Review, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	reviews := append([]models.Review(nil), r.s.reviews...)
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Date.After(reviews[j].Date)
	})
	return reviews, nil
}

func (r *reviewRepo) ListByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var reviews []models.Review
	for _, review := range r.s.reviews {
		if review.ProductID == productID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (r *reviewRepo) Create(ctx context.Context, review *models.Review) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reviews = append(r.s.reviews, *review)
	return nil
}

func (r *reviewRepo) Delete(ctx context.Context, id string) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, review := range r.s.reviews {
		if review.ID == id {
			r.s.reviews = append(r.s.reviews[:i], r.s.reviews[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// Users

type userRepo struct{ s *Store }

func (r *userRepo) List(ctx context.Context) ([]models.User, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]models.User(nil), r.s.users...), nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*models.User, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.users = append(r.s.users, *user)
	r.s.persistUsers()
	return nil
}

// Carts

type cartRepo struct{ s *Store }

func (r *cartRepo) Get(ctx context.Context, ownerID string) (*models.Cart, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	cart, ok := r.s.carts[ownerID]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := cart
	copied.Items = append([]models.CartItem(nil), cart.Items...)
	return &copied, nil
}

func (r *cartRepo) Save(ctx context.Context, cart *models.Cart) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.carts[cart.OwnerID] = *cart
	r.s.persistCarts()
	return nil
}

func (r *cartRepo) Delete(ctx context.Context, ownerID string) error {
	if err := r.s.delay(ctx); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.carts, ownerID)
	r.s.persistCarts()
	return nil
}
