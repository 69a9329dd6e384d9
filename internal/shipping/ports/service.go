package ports

import (
	"context"

	"github.com/microcommerce/shipping-service/internal/shipping/application/types"
	"github.com/microcommerce/shipping-service/internal/shipping/domain"
)

// Service exposes the shipping use cases to adapters. List and GetByID return
// enriched views; Save and Update echo the stored row without re-fetching the
// remote snapshots; Delete is idempotent.
type Service interface {
	List(ctx context.Context) ([]*types.OrderItemView, error)
	GetByID(ctx context.Context, id domain.OrderItemID) (*types.OrderItemView, error)
	Save(ctx context.Context, view *types.OrderItemView) (*types.OrderItemView, error)
	Update(ctx context.Context, view *types.OrderItemView) (*types.OrderItemView, error)
	Delete(ctx context.Context, id domain.OrderItemID) error
}
