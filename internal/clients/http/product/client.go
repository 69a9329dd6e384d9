// Package product is the HTTP client for product-service lookups.
package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/microcommerce/shipping-service/internal/clients/http/httpclient"
	"github.com/microcommerce/shipping-service/internal/shared/apperrors"
)

// ServiceName identifies the upstream in failure reports.
const ServiceName = "product-service"

// Product is the wire representation returned by product-service.
type Product struct {
	ProductID    int     `json:"productId"`
	ProductTitle string  `json:"productTitle"`
	ImageURL     string  `json:"imageUrl"`
	SKU          string  `json:"sku"`
	PriceUnit    float64 `json:"priceUnit"`
	Quantity     int     `json:"quantity"`
}

// Client fetches products by id from a fixed base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a product-service client. A nil httpClient gets the
// default bounded-timeout client.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("product service base URL is required")
	}
	if httpClient == nil {
		httpClient = httpclient.New(0, 0)
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

// Get fetches one product. Network-level failures surface as
// RemoteUnavailableError; upstream 5xx and 4xx responses surface as
// RemoteServerError and RemoteClientError respectively.
func (c *Client) Get(ctx context.Context, productID int) (*Product, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build product request: %w", err)
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

	var product Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("decode product %d: %w", productID, err)
	}
	return &product, nil
}
