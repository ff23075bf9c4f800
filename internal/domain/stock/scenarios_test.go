package stock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/types"
)

// TestLedgerLifecycle runs one restaurant through a typical week: receive
// stock, consume it, shuffle it between locations, and read the grid back
// after each step.
func TestLedgerLifecycle(t *testing.T) {
	ctx := context.Background()
	restaurant := id.New()

	p1 := ProductInfo{ID: id.New(), Name: "Tomatoes", SKU: "PRD-00001", Unit: "kg"}
	p2 := ProductInfo{ID: id.New(), Name: "Basil", SKU: "PRD-00002", Unit: "bunch"}
	l1 := LocationInfo{ID: id.New(), Name: "Walk-in"}
	l2 := LocationInfo{ID: id.New(), Name: "Prep Station"}

	repo := &mockRepo{}
	catalog := &mockCatalog{
		products:  []ProductInfo{p1, p2},
		locations: []LocationInfo{l1, l2},
	}
	svc := NewService(repo, catalog, passthroughTx{})

	cell := func(t *testing.T, views []ItemView, productID, locationID id.ID) types.Quantity {
		t.Helper()
		for _, v := range views {
			if v.ID != productID {
				continue
			}
			for _, lq := range v.Locations {
				if lq.LocationID == locationID {
					return lq.Qty
				}
			}
		}
		t.Fatalf("no cell for product %s at location %s", productID, locationID)
		return 0
	}

	// Receive 20 into the walk-in.
	_, err := svc.RecordMovement(ctx, Input{
		RestaurantID: restaurant, ProductID: p1.ID,
		Type: TypeInbound, Quantity: qtyPtr("20"), ToLocationID: ptr(l1.ID),
	})
	require.NoError(t, err)

	views, err := svc.StockView(ctx, restaurant)
	require.NoError(t, err)
	assert.Equal(t, qty("20"), cell(t, views, p1.ID, l1.ID))

	// Consume 5.
	_, err = svc.RecordMovement(ctx, Input{
		RestaurantID: restaurant, ProductID: p1.ID,
		Type: TypeOutbound, Quantity: qtyPtr("5"), FromLocationID: ptr(l1.ID),
	})
	require.NoError(t, err)

	views, err = svc.StockView(ctx, restaurant)
	require.NoError(t, err)
	assert.Equal(t, qty("15"), cell(t, views, p1.ID, l1.ID))

	// Move 10 to the prep station.
	_, err = svc.RecordMovement(ctx, Input{
		RestaurantID: restaurant, ProductID: p1.ID,
		Type: TypeTransfer, Quantity: qtyPtr("10"),
		FromLocationID: ptr(l1.ID), ToLocationID: ptr(l2.ID),
	})
	require.NoError(t, err)

	views, err = svc.StockView(ctx, restaurant)
	require.NoError(t, err)
	assert.Equal(t, qty("5"), cell(t, views, p1.ID, l1.ID))
	assert.Equal(t, qty("10"), cell(t, views, p1.ID, l2.ID))

	// An outbound with no source is rejected and leaves the ledger alone.
	before := len(repo.movements)
	_, err = svc.RecordMovement(ctx, Input{
		RestaurantID: restaurant, ProductID: p1.ID,
		Type: TypeOutbound, Quantity: qtyPtr("3"),
	})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeMissingSource, appErr.Code)
	assert.Len(t, repo.movements, before)

	// So is a zero-quantity receipt.
	_, err = svc.RecordMovement(ctx, Input{
		RestaurantID: restaurant, ProductID: p1.ID,
		Type: TypeInbound, Quantity: qtyPtr("0"), ToLocationID: ptr(l1.ID),
	})
	require.Error(t, err)
	appErr, ok = apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidQuantity, appErr.Code)
	assert.Len(t, repo.movements, before)

	// Final grid: p1 split 5/10 totalling 15; p2 untouched but present.
	views, err = svc.StockView(ctx, restaurant)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, p1.ID, views[0].ID)
	assert.Equal(t, qty("5"), views[0].Locations[0].Qty)
	assert.Equal(t, qty("10"), views[0].Locations[1].Qty)
	assert.Equal(t, qty("15"), views[0].TotalQty)

	assert.Equal(t, p2.ID, views[1].ID)
	assert.Equal(t, qty("0"), views[1].Locations[0].Qty)
	assert.Equal(t, qty("0"), views[1].Locations[1].Qty)
	assert.Equal(t, qty("0"), views[1].TotalQty)
}
