// Package remote adapts the sibling-service HTTP clients to the shipping
// lookup ports.
package remote

import (
	"context"
	"errors"

	orderclient "github.com/microcommerce/shipping-service/internal/clients/http/order"
	productclient "github.com/microcommerce/shipping-service/internal/clients/http/product"
	"github.com/microcommerce/shipping-service/internal/shipping/application/types"
	"github.com/microcommerce/shipping-service/internal/shipping/ports"
)

// ProductLookup implements the product lookup port over the HTTP client.
type ProductLookup struct {
	client *productclient.Client
}

// NewProductLookup wires the product client into a lookup adapter.
func NewProductLookup(client *productclient.Client) *ProductLookup {
	return &ProductLookup{client: client}
}

// Get fetches and maps one product snapshot.
func (l *ProductLookup) Get(ctx context.Context, productID int) (*types.ProductView, error) {
	if l == nil || l.client == nil {
		return nil, errors.New("product lookup not configured")
	}
	product, err := l.client.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toProductView(product), nil
}

// OrderLookup implements the order lookup port over the HTTP client.
type OrderLookup struct {
	client *orderclient.Client
}

// NewOrderLookup wires the order client into a lookup adapter.
func NewOrderLookup(client *orderclient.Client) *OrderLookup {
	return &OrderLookup{client: client}
}

// Get fetches and maps one order snapshot.
func (l *OrderLookup) Get(ctx context.Context, orderID int) (*types.OrderView, error) {
	if l == nil || l.client == nil {
		return nil, errors.New("order lookup not configured")
	}
	order, err := l.client.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderView(order), nil
}

func toProductView(p *productclient.Product) *types.ProductView {
	return &types.ProductView{
		ID:        p.ProductID,
		Title:     p.ProductTitle,
		ImageURL:  p.ImageURL,
		SKU:       p.SKU,
		PriceUnit: p.PriceUnit,
		Quantity:  p.Quantity,
	}
}

func toOrderView(o *orderclient.Order) *types.OrderView {
	return &types.OrderView{
		ID:          o.OrderID,
		Date:        o.OrderDate,
		Description: o.OrderDesc,
		Fee:         o.OrderFee,
	}
}

var (
	_ ports.ProductLookup = (*ProductLookup)(nil)
	_ ports.OrderLookup   = (*OrderLookup)(nil)
)
