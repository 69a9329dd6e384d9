// Package order is the HTTP client for order-service lookups.
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/microcommerce/shipping-service/internal/clients/http/httpclient"
	"github.com/microcommerce/shipping-service/internal/shared/apperrors"
)

// ServiceName identifies the upstream in failure reports.
const ServiceName = "order-service"

// Order is the wire representation returned by order-service.
type Order struct {
	OrderID   int       `json:"orderId"`
	OrderDate time.Time `json:"orderDate"`
	OrderDesc string    `json:"orderDesc"`
	OrderFee  float64   `json:"orderFee"`
}

// Client fetches orders by id from a fixed base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an order-service client. A nil httpClient gets the
// default bounded-timeout client.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("order service base URL is required")
	}
	if httpClient == nil {
		httpClient = httpclient.New(0, 0)
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

// Get fetches one order, classifying failures the same way the product
// client does.
func (c *Client) Get(ctx context.Context, orderID int) (*Order, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewRemoteUnavailable(ServiceName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, apperrors.NewRemoteServer(ServiceName, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return nil, apperrors.NewRemoteClient(ServiceName, resp.StatusCode)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode order %d: %w", orderID, err)
	}
	return &order, nil
}
