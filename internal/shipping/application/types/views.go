// Package types holds the transient read models assembled by the shipping
// service. Views are rebuilt on every read and never persisted.
package types

import "time"

// ProductView is the snapshot of a product fetched from product-service.
type ProductView struct {
	ID        int
	Title     string
	ImageURL  string
	SKU       string
	PriceUnit float64
	Quantity  int
}

// OrderView is the snapshot of an order fetched from order-service.
type OrderView struct {
	ID          int
	Date        time.Time
	Description string
	Fee         float64
}

// OrderItemView is the enriched representation of an order item: the stored
// identity and quantity plus the remote product and order snapshots.
type OrderItemView struct {
	OrderID         int
	ProductID       int
	OrderedQuantity int
	Product         *ProductView
	Order           *OrderView
}
