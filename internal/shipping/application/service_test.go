package application

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microcommerce/shipping-service/internal/shared/apperrors"
	"github.com/microcommerce/shipping-service/internal/shipping/application/types"
	"github.com/microcommerce/shipping-service/internal/shipping/domain"
	"github.com/microcommerce/shipping-service/internal/shipping/ports"
)

type fakeRepo struct {
	mu    sync.Mutex
	items map[domain.OrderItemID]domain.OrderItem
	err   error
}

func newFakeRepo(items ...domain.OrderItem) *fakeRepo {
	repo := &fakeRepo{items: map[domain.OrderItemID]domain.OrderItem{}}
	for _, item := range items {
		repo.items[item.ID()] = item
	}
	return repo
}

func (f *fakeRepo) List(_ context.Context) ([]domain.OrderItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list := make([]domain.OrderItem, 0, len(f.items))
	for _, item := range f.items {
		list = append(list, item)
	}
	return list, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id domain.OrderItemID) (*domain.OrderItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &item, nil
}

func (f *fakeRepo) Save(_ context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *item
	f.items[clone.ID()] = clone
	return &clone, nil
}

func (f *fakeRepo) Delete(_ context.Context, id domain.OrderItemID) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

type fakeProducts struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeProducts) Get(_ context.Context, productID int) (*types.ProductView, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &types.ProductView{ID: productID, Title: "Test Product", PriceUnit: 99.99}, nil
}

type fakeOrders struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeOrders) Get(_ context.Context, orderID int) (*types.OrderView, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &types.OrderView{ID: orderID, Description: "Test Order", Fee: 99.99}, nil
}

func newTestService(repo *fakeRepo) (*Service, *fakeProducts, *fakeOrders) {
	products := &fakeProducts{}
	orders := &fakeOrders{}
	svc := NewService(Dependencies{Repository: repo, Products: products, Orders: orders})
	return svc, products, orders
}

func TestList_EnrichesEveryRow(t *testing.T) {
	repo := newFakeRepo(
		domain.OrderItem{OrderID: 1, ProductID: 100, OrderedQuantity: 5},
		domain.OrderItem{OrderID: 2, ProductID: 200, OrderedQuantity: 3},
	)
	svc, products, orders := newTestService(repo)

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, view := range views {
		require.NotNil(t, view.Product)
		require.NotNil(t, view.Order)
		assert.Equal(t, view.ProductID, view.Product.ID)
		assert.Equal(t, view.OrderID, view.Order.ID)
		assert.Equal(t, "Test Product", view.Product.Title)
	}
	assert.Equal(t, 2, products.calls)
	assert.Equal(t, 2, orders.calls)
}

func TestList_EmptyStorePerformsNoLookups(t *testing.T) {
	svc, products, orders := newTestService(newFakeRepo())

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, views)
	assert.Zero(t, products.calls)
	assert.Zero(t, orders.calls)
}

func TestList_LookupFailureFailsWholeListing(t *testing.T) {
	repo := newFakeRepo(domain.OrderItem{OrderID: 1, ProductID: 100, OrderedQuantity: 5})
	svc, products, _ := newTestService(repo)
	products.err = apperrors.NewRemoteServer("product-service", http.StatusInternalServerError)

	_, err := svc.List(context.Background())

	var remoteErr *apperrors.RemoteServerError
	require.ErrorAs(t, err, &remoteErr)
}

func TestGetByID_MergesBothSnapshots(t *testing.T) {
	repo := newFakeRepo(domain.OrderItem{OrderID: 1, ProductID: 100, OrderedQuantity: 5})
	svc, _, _ := newTestService(repo)

	view, err := svc.GetByID(context.Background(), domain.NewOrderItemID(1, 100))
	require.NoError(t, err)
	assert.Equal(t, 1, view.OrderID)
	assert.Equal(t, 100, view.ProductID)
	assert.Equal(t, 5, view.OrderedQuantity)
	require.NotNil(t, view.Product)
	require.NotNil(t, view.Order)
	assert.Equal(t, 100, view.Product.ID)
	assert.Equal(t, 1, view.Order.ID)
}

func TestGetByID_AbsentPair(t *testing.T) {
	svc, products, orders := newTestService(newFakeRepo())

	_, err := svc.GetByID(context.Background(), domain.NewOrderItemID(999, 999))

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, notFound.Msg, "OrderItem with id: [999, 999] not found")
	assert.Zero(t, products.calls)
	assert.Zero(t, orders.calls)
}

// A lookup failure propagates untranslated; the boundary is the only place
// failures are rendered.
func TestGetByID_RemoteFailurePropagatesUnchanged(t *testing.T) {
	repo := newFakeRepo(domain.OrderItem{OrderID: 1, ProductID: 100, OrderedQuantity: 5})
	svc, _, orders := newTestService(repo)
	orders.err = apperrors.NewRemoteUnavailable("order-service", errors.New("dial tcp: i/o timeout"))

	_, err := svc.GetByID(context.Background(), domain.NewOrderItemID(1, 100))

	var unavailable *apperrors.RemoteUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "order-service", unavailable.Service)
}

func TestSave_EchoesStoredRowWithStubs(t *testing.T) {
	svc, products, orders := newTestService(newFakeRepo())

	input := &types.OrderItemView{
		OrderID:         2,
		ProductID:       200,
		OrderedQuantity: 10,
		Product:         &types.ProductView{ID: 200, Title: "client supplied"},
		Order:           &types.OrderView{ID: 2, Description: "client supplied"},
	}
	saved, err := svc.Save(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 2, saved.OrderID)
	assert.Equal(t, 200, saved.ProductID)
	assert.Equal(t, 10, saved.OrderedQuantity)
	require.NotNil(t, saved.Product)
	require.NotNil(t, saved.Order)
	assert.Equal(t, 200, saved.Product.ID)
	assert.Equal(t, 2, saved.Order.ID)
	assert.Empty(t, saved.Product.Title)
	assert.Zero(t, products.calls)
	assert.Zero(t, orders.calls)
}

func TestSave_ThenGetByID_RoundTripsQuantity(t *testing.T) {
	repo := newFakeRepo()
	svc, _, _ := newTestService(repo)

	_, err := svc.Save(context.Background(), &types.OrderItemView{OrderID: 3, ProductID: 300, OrderedQuantity: 7})
	require.NoError(t, err)

	view, err := svc.GetByID(context.Background(), domain.NewOrderItemID(3, 300))
	require.NoError(t, err)
	assert.Equal(t, 7, view.OrderedQuantity)
}

func TestSave_InvalidIdentity(t *testing.T) {
	svc, _, _ := newTestService(newFakeRepo())

	_, err := svc.Save(context.Background(), &types.OrderItemView{OrderID: 0, ProductID: 300, OrderedQuantity: 7})

	var illegal *apperrors.IllegalStateError
	require.ErrorAs(t, err, &illegal)
	require.ErrorIs(t, err, domain.ErrInvalidOrderID)
}

func TestUpdate_OverwritesExistingRow(t *testing.T) {
	repo := newFakeRepo(domain.OrderItem{OrderID: 1, ProductID: 100, OrderedQuantity: 5})
	svc, _, _ := newTestService(repo)

	updated, err := svc.Update(context.Background(), &types.OrderItemView{OrderID: 1, ProductID: 100, OrderedQuantity: 8})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.OrderedQuantity)

	view, err := svc.GetByID(context.Background(), domain.NewOrderItemID(1, 100))
	require.NoError(t, err)
	assert.Equal(t, 8, view.OrderedQuantity)
}

// Update of an absent identity inserts instead of failing (upsert semantics).
func TestUpdate_AbsentIdentityInserts(t *testing.T) {
	svc, _, _ := newTestService(newFakeRepo())

	_, err := svc.Update(context.Background(), &types.OrderItemView{OrderID: 4, ProductID: 400, OrderedQuantity: 1})
	require.NoError(t, err)

	view, err := svc.GetByID(context.Background(), domain.NewOrderItemID(4, 400))
	require.NoError(t, err)
	assert.Equal(t, 1, view.OrderedQuantity)
}

func TestDelete_IsIdempotent(t *testing.T) {
	repo := newFakeRepo(domain.OrderItem{OrderID: 1, ProductID: 100, OrderedQuantity: 5})
	svc, _, _ := newTestService(repo)
	id := domain.NewOrderItemID(1, 100)

	require.NoError(t, svc.Delete(context.Background(), id))
	require.NoError(t, svc.Delete(context.Background(), id))

	_, err := svc.GetByID(context.Background(), id)
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestList_StoreFailureFailsListing(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection reset")
	svc, products, _ := newTestService(repo)

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Zero(t, products.calls)
}
