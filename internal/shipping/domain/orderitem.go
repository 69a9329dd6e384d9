package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOrderID   = errors.New("order id must be greater than zero")
	ErrInvalidProductID = errors.New("product id must be greater than zero")
	ErrInvalidQuantity  = errors.New("ordered quantity must not be negative")
)

// OrderItemID is the composite identity of an order item. Two values are
// equal iff both integer fields are equal.
type OrderItemID struct {
	OrderID   int
	ProductID int
}

// NewOrderItemID builds the composite key from its two parts.
func NewOrderItemID(orderID, productID int) OrderItemID {
	return OrderItemID{OrderID: orderID, ProductID: productID}
}

// String renders the identity as "[orderId, productId]", the form embedded
// in user-facing not-found messages.
func (id OrderItemID) String() string {
	return fmt.Sprintf("[%d, %d]", id.OrderID, id.ProductID)
}

// OrderItem is the persisted shipping line: a product quantity attached to an
// order. Identity is immutable once created; only OrderedQuantity may change.
type OrderItem struct {
	OrderID         int
	ProductID       int
	OrderedQuantity int
}

// NewOrderItem validates and constructs an order item.
func NewOrderItem(orderID, productID, quantity int) (*OrderItem, error) {
	item := &OrderItem{OrderID: orderID, ProductID: productID, OrderedQuantity: quantity}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// ID returns the composite identity.
func (oi *OrderItem) ID() OrderItemID {
	return OrderItemID{OrderID: oi.OrderID, ProductID: oi.ProductID}
}

// Validate enforces invariants on the entity.
func (oi *OrderItem) Validate() error {
	if oi.OrderID <= 0 {
		return ErrInvalidOrderID
	}
	if oi.ProductID <= 0 {
		return ErrInvalidProductID
	}
	if oi.OrderedQuantity < 0 {
		return ErrInvalidQuantity
	}
	return nil
}
