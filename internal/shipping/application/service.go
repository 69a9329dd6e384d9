// Package application orchestrates the shipping use cases: CRUD over order
// items plus per-row enrichment from the product and order services.
package application

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/microcommerce/shipping-service/internal/shared/apperrors"
	"github.com/microcommerce/shipping-service/internal/shipping/application/types"
	"github.com/microcommerce/shipping-service/internal/shipping/domain"
	"github.com/microcommerce/shipping-service/internal/shipping/ports"
)

// maxConcurrentEnrichments bounds the fan-out of remote lookups in List.
const maxConcurrentEnrichments = 8

// Dependencies carries the collaborators of the shipping service. All three
// are required.
type Dependencies struct {
	Repository ports.Repository
	Products   ports.ProductLookup
	Orders     ports.OrderLookup
}

// Service aggregates stored order items with snapshots fetched from the
// product and order services. It holds no cross-request state and does not
// translate collaborator failures; those propagate to the boundary unchanged.
type Service struct {
	repo     ports.Repository
	products ports.ProductLookup
	orders   ports.OrderLookup
}

// NewService wires the shipping service with its dependencies.
func NewService(deps Dependencies) *Service {
	return &Service{
		repo:     deps.Repository,
		products: deps.Products,
		orders:   deps.Orders,
	}
}

// List returns every stored order item enriched with its product and order
// snapshots. An empty store short-circuits without any remote call. Any
// failed lookup fails the whole listing; no partial view is returned.
func (s *Service) List(ctx context.Context) ([]*types.OrderItemView, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*types.OrderItemView, len(items))
	if len(items) == 0 {
		return views, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentEnrichments)
	for i := range items {
		g.Go(func() error {
			view, err := s.enrich(ctx, items[i])
			if err != nil {
				return err
			}
			views[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

// GetByID loads one order item and enriches it.
func (s *Service) GetByID(ctx context.Context, id domain.OrderItemID) (*types.OrderItemView, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, apperrors.NewNotFound("OrderItem with id: %s not found", id)
		}
		return nil, err
	}
	return s.enrich(ctx, *item)
}

// Save persists the identity and quantity carried by the view and echoes the
// stored row back. Any product/order payload embedded in the input is ignored
// for storage; the echo carries identifier-only stubs and no remote fetch
// happens on the write path.
func (s *Service) Save(ctx context.Context, view *types.OrderItemView) (*types.OrderItemView, error) {
	item := &domain.OrderItem{
		OrderID:         view.OrderID,
		ProductID:       view.ProductID,
		OrderedQuantity: view.OrderedQuantity,
	}
	if err := item.Validate(); err != nil {
		return nil, apperrors.NewIllegalState(err)
	}
	saved, err := s.repo.Save(ctx, item)
	if err != nil {
		return nil, err
	}
	return viewFromItem(*saved), nil
}

// Update overwrites the row at the identity embedded in the view, inserting
// when absent. Same echo semantics as Save.
func (s *Service) Update(ctx context.Context, view *types.OrderItemView) (*types.OrderItemView, error) {
	return s.Save(ctx, view)
}

// Delete removes the row at the given identity. Deleting an absent identity
// is not an error.
func (s *Service) Delete(ctx context.Context, id domain.OrderItemID) error {
	return s.repo.Delete(ctx, id)
}

// enrich fetches the product and order snapshots for one row. The two lookups
// are independent and run concurrently; the merge is commutative since they
// occupy disjoint fields.
func (s *Service) enrich(ctx context.Context, item domain.OrderItem) (*types.OrderItemView, error) {
	view := viewFromItem(item)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		product, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			return err
		}
		view.Product = product
		return nil
	})
	g.Go(func() error {
		order, err := s.orders.Get(ctx, item.OrderID)
		if err != nil {
			return err
		}
		view.Order = order
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

// viewFromItem maps a stored row to its view, pre-populating identifier-only
// stubs for the product and order slots.
func viewFromItem(item domain.OrderItem) *types.OrderItemView {
	return &types.OrderItemView{
		OrderID:         item.OrderID,
		ProductID:       item.ProductID,
		OrderedQuantity: item.OrderedQuantity,
		Product:         &types.ProductView{ID: item.ProductID},
		Order:           &types.OrderView{ID: item.OrderID},
	}
}

var _ ports.Service = (*Service)(nil)
