package ports

import (
	"context"

	"github.com/microcommerce/shipping-service/internal/shipping/application/types"
)

// ProductLookup fetches a product snapshot from product-service.
type ProductLookup interface {
	Get(ctx context.Context, productID int) (*types.ProductView, error)
}

// OrderLookup fetches an order snapshot from order-service.
type OrderLookup interface {
	Get(ctx context.Context, orderID int) (*types.OrderView, error)
}
