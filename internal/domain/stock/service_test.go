package stock

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

type mockRepo struct {
	movements  []Movement
	appendErr  error
	listErr    error
	appendArgs []Movement
}

func (m *mockRepo) Append(_ context.Context, movement Movement) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appendArgs = append(m.appendArgs, movement)
	m.movements = append(m.movements, movement)
	return nil
}

func (m *mockRepo) ListByRestaurant(_ context.Context, restaurantID id.ID) ([]Movement, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []Movement
	for _, mv := range m.movements {
		if mv.RestaurantID == restaurantID {
			out = append(out, mv)
		}
	}
	return out, nil
}

func (m *mockRepo) ListByProduct(_ context.Context, restaurantID, productID id.ID, _ HistoryFilter) ([]Movement, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []Movement
	for _, mv := range m.movements {
		if mv.RestaurantID == restaurantID && mv.ProductID == productID {
			out = append(out, mv)
		}
	}
	return out, nil
}

type mockCatalog struct {
	products     []ProductInfo
	locations    []LocationInfo
	productsErr  error
	locationsErr error
}

func (m *mockCatalog) ListProducts(_ context.Context, _ id.ID) ([]ProductInfo, error) {
	return m.products, m.productsErr
}

func (m *mockCatalog) ListLocations(_ context.Context, _ id.ID) ([]LocationInfo, error) {
	return m.locations, m.locationsErr
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestService_RecordMovement(t *testing.T) {
	restaurant := id.New()
	product := id.New()
	loc := id.New()

	t.Run("appends a sealed movement", func(t *testing.T) {
		repo := &mockRepo{}
		svc := NewService(repo, &mockCatalog{}, passthroughTx{})

		got, err := svc.RecordMovement(context.Background(), Input{
			RestaurantID: restaurant,
			ProductID:    product,
			Type:         TypeInbound,
			Quantity:     qtyPtr("10"),
			ToLocationID: ptr(loc),
			Note:         "opening stock",
		})
		require.NoError(t, err)

		assert.False(t, id.IsNil(got.ID))
		assert.False(t, got.CreatedAt.IsZero())
		assert.Equal(t, qty("10"), got.Quantity)
		require.NotNil(t, got.Note)
		assert.Equal(t, "opening stock", *got.Note)

		require.Len(t, repo.appendArgs, 1)
		assert.Equal(t, got, repo.appendArgs[0])
	})

	t.Run("rejected input never reaches the store", func(t *testing.T) {
		repo := &mockRepo{}
		svc := NewService(repo, &mockCatalog{}, passthroughTx{})

		_, err := svc.RecordMovement(context.Background(), Input{
			RestaurantID: restaurant,
			ProductID:    product,
			Type:         TypeOutbound,
			Quantity:     qtyPtr("5"),
			// no fromLocation
		})
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeMissingSource, appErr.Code)
		assert.Empty(t, repo.appendArgs, "rejected movement must not be appended")
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo := &mockRepo{appendErr: errors.New("connection reset")}
		svc := NewService(repo, &mockCatalog{}, passthroughTx{})

		_, err := svc.RecordMovement(context.Background(), Input{
			RestaurantID: restaurant,
			ProductID:    product,
			Type:         TypeInbound,
			Quantity:     qtyPtr("1"),
			ToLocationID: ptr(loc),
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestService_StockView(t *testing.T) {
	restaurant := id.New()
	flour := ProductInfo{ID: id.New(), Name: "Flour", SKU: "PRD-00001", Unit: "kg"}
	kitchen := LocationInfo{ID: id.New(), Name: "Kitchen"}
	cellar := LocationInfo{ID: id.New(), Name: "Cellar"}

	t.Run("aggregates only the requested restaurant", func(t *testing.T) {
		other := id.New()
		repo := &mockRepo{movements: []Movement{
			{RestaurantID: restaurant, ProductID: flour.ID, Type: TypeInbound, Quantity: qty("9"), ToLocationID: ptr(kitchen.ID)},
			{RestaurantID: other, ProductID: flour.ID, Type: TypeInbound, Quantity: qty("100"), ToLocationID: ptr(kitchen.ID)},
		}}
		catalog := &mockCatalog{
			products:  []ProductInfo{flour},
			locations: []LocationInfo{kitchen, cellar},
		}
		svc := NewService(repo, catalog, passthroughTx{})

		views, err := svc.StockView(context.Background(), restaurant)
		require.NoError(t, err)
		require.Len(t, views, 1)
		require.Len(t, views[0].Locations, 2)
		assert.Equal(t, qty("9"), views[0].TotalQty)
	})

	t.Run("missing tenant", func(t *testing.T) {
		svc := NewService(&mockRepo{}, &mockCatalog{}, passthroughTx{})

		_, err := svc.StockView(context.Background(), id.Nil())
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeMissingTenant, appErr.Code)
	})

	t.Run("catalog failure fails the whole view", func(t *testing.T) {
		catalog := &mockCatalog{locationsErr: errors.New("timeout")}
		svc := NewService(&mockRepo{}, catalog, passthroughTx{})

		views, err := svc.StockView(context.Background(), restaurant)
		require.Error(t, err)
		assert.Nil(t, views, "no partial grid on error")
	})

	t.Run("ledger failure fails the whole view", func(t *testing.T) {
		repo := &mockRepo{listErr: errors.New("timeout")}
		svc := NewService(repo, &mockCatalog{}, passthroughTx{})

		views, err := svc.StockView(context.Background(), restaurant)
		require.Error(t, err)
		assert.Nil(t, views)
	})
}

func TestService_MovementHistory(t *testing.T) {
	restaurant := id.New()
	product := id.New()
	loc := id.New()

	repo := &mockRepo{movements: []Movement{
		{RestaurantID: restaurant, ProductID: product, Type: TypeInbound, Quantity: qty("3"), ToLocationID: ptr(loc)},
		{RestaurantID: restaurant, ProductID: id.New(), Type: TypeInbound, Quantity: qty("99"), ToLocationID: ptr(loc)},
	}}
	svc := NewService(repo, &mockCatalog{}, passthroughTx{})

	history, err := svc.MovementHistory(context.Background(), restaurant, product, HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, product, history[0].ProductID)

	_, err = svc.MovementHistory(context.Background(), id.Nil(), product, HistoryFilter{})
	require.Error(t, err)

	_, err = svc.MovementHistory(context.Background(), restaurant, id.Nil(), HistoryFilter{})
	require.Error(t, err)
}
