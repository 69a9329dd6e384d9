package httpapi

import (
	"time"

	"github.com/microcommerce/shipping-service/internal/shipping/application/types"
)

// OrderItem is the wire representation of an order item. The three scalar
// fields are mandatory on writes; product and order are read-side payloads
// and ignored on input.
type OrderItem struct {
	OrderID         *int     `json:"orderId" binding:"required"`
	ProductID       *int     `json:"productId" binding:"required"`
	OrderedQuantity *int     `json:"orderedQuantity" binding:"required"`
	Product         *Product `json:"product,omitempty"`
	Order           *Order   `json:"order,omitempty"`
}

// Product mirrors the payload served by product-service.
type Product struct {
	ID        int     `json:"productId"`
	Title     string  `json:"productTitle"`
	ImageURL  string  `json:"imageUrl"`
	SKU       string  `json:"sku"`
	PriceUnit float64 `json:"priceUnit"`
	Quantity  int     `json:"quantity"`
}

// Order mirrors the payload served by order-service.
type Order struct {
	ID          int       `json:"orderId"`
	Date        time.Time `json:"orderDate"`
	Description string    `json:"orderDesc"`
	Fee         float64   `json:"orderFee"`
}

// OrderItemCollection wraps list responses.
type OrderItemCollection struct {
	Collection []OrderItem `json:"collection"`
}

func (o OrderItem) toView() *types.OrderItemView {
	view := &types.OrderItemView{}
	if o.OrderID != nil {
		view.OrderID = *o.OrderID
	}
	if o.ProductID != nil {
		view.ProductID = *o.ProductID
	}
	if o.OrderedQuantity != nil {
		view.OrderedQuantity = *o.OrderedQuantity
	}
	return view
}

func fromView(view *types.OrderItemView) OrderItem {
	orderID := view.OrderID
	productID := view.ProductID
	quantity := view.OrderedQuantity
	return OrderItem{
		OrderID:         &orderID,
		ProductID:       &productID,
		OrderedQuantity: &quantity,
		Product:         fromProductView(view.Product),
		Order:           fromOrderView(view.Order),
	}
}

func fromViews(views []*types.OrderItemView) []OrderItem {
	items := make([]OrderItem, 0, len(views))
	for _, view := range views {
		if view == nil {
			continue
		}
		items = append(items, fromView(view))
	}
	return items
}

func fromProductView(p *types.ProductView) *Product {
	if p == nil {
		return nil
	}
	return &Product{
		ID:        p.ID,
		Title:     p.Title,
		ImageURL:  p.ImageURL,
		SKU:       p.SKU,
		PriceUnit: p.PriceUnit,
		Quantity:  p.Quantity,
	}
}

func fromOrderView(o *types.OrderView) *Order {
	if o == nil {
		return nil
	}
	return &Order{
		ID:          o.ID,
		Date:        o.Date,
		Description: o.Description,
		Fee:         o.Fee,
	}
}
