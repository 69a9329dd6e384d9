//go:build pact
// +build pact

// Package pacttest carries the shared names, states, and payloads for the
// shipping contract tests. The shipping service plays both roles: provider of
// the /api/shippings resource and consumer of product-service and
// order-service.
package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "shipping-service"
	ConsumerName = "ecommerce-portal"

	ProductProviderName = "product-service"
	OrderProviderName   = "order-service"

	StateOrderItemsBaseline = "order items baseline"
	StateOrderItemExists    = "order item 1/100 exists"
	StateOrderItemMissing   = "no order item 9/9"

	StateProductExists = "product with id 100 exists"
	StateOrderExists   = "order with id 1 exists"
)

const (
	ExistingOrderID   = 1
	ExistingProductID = 100
	MissingOrderID    = 9
	MissingProductID  = 9

	ExampleQuantity = 5
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderItemPayload provides stable test data for write interactions.
func ExampleOrderItemPayload() map[string]any {
	return map[string]any{
		"orderId":         ExistingOrderID,
		"productId":       ExistingProductID,
		"orderedQuantity": ExampleQuantity,
	}
}

// ExampleProductPayload mirrors the product-service response document.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"productId":    ExistingProductID,
		"productTitle": "asus",
		"imageUrl":     "https://example.pact/products/asus.png",
		"sku":          "sku-asus-1",
		"priceUnit":    12.5,
		"quantity":     40,
	}
}

// ExampleOrderPayload mirrors the order-service response document.
func ExampleOrderPayload() map[string]any {
	return map[string]any{
		"orderId":   ExistingOrderID,
		"orderDate": "2024-06-12T10:00:00Z",
		"orderDesc": "init",
		"orderFee":  3.5,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
