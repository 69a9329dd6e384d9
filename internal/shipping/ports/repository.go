package ports

import (
	"context"
	"errors"

	"github.com/microcommerce/shipping-service/internal/shipping/domain"
)

var ErrNotFound = errors.New("order item not found")

// Repository persists order items keyed by their composite identity.
// Save has upsert semantics: an existing row at the same identity is
// overwritten. Delete is idempotent and succeeds for absent identities.
type Repository interface {
	List(ctx context.Context) ([]domain.OrderItem, error)
	GetByID(ctx context.Context, id domain.OrderItemID) (*domain.OrderItem, error)
	Save(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error)
	Delete(ctx context.Context, id domain.OrderItemID) error
}
