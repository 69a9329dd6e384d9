package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/microcommerce/shipping-service/internal/shipping/domain"
	"github.com/microcommerce/shipping-service/internal/shipping/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order-item persistence adapter used for tests
// and local runs without PostgreSQL.
type Repository struct {
	mu    sync.RWMutex
	items map[domain.OrderItemID]*domain.OrderItem
}

func NewRepository() *Repository {
	return &Repository{items: map[domain.OrderItemID]*domain.OrderItem{}}
}

func (r *Repository) List(_ context.Context) ([]domain.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.OrderItem, 0, len(r.items))
	for _, item := range r.items {
		list = append(list, *item)
	}
	return list, nil
}

func (r *Repository) GetByID(_ context.Context, id domain.OrderItemID) (*domain.OrderItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *Repository) Save(_ context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	if item == nil {
		return nil, errors.New("order item is nil")
	}
	clone := *item
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[clone.ID()] = &clone
	echo := clone
	return &echo, nil
}

func (r *Repository) Delete(_ context.Context, id domain.OrderItemID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}
