package stock

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/types"
)

func ptr(v id.ID) *id.ID { return &v }

func qty(s string) types.Quantity { return types.MustQuantity(s) }

func qtyPtr(s string) *types.Quantity {
	q := types.MustQuantity(s)
	return &q
}

func TestAggregate_MovementKinds(t *testing.T) {
	product := id.New()
	locA := id.New()
	locB := id.New()

	tests := []struct {
		name     string
		movement Movement
		want     map[ItemKey]types.Quantity
	}{
		{
			name:     "inbound credits destination",
			movement: Movement{ProductID: product, Type: TypeInbound, Quantity: qty("10"), ToLocationID: ptr(locA)},
			want: map[ItemKey]types.Quantity{
				{ProductID: product, LocationID: locA}: qty("10"),
			},
		},
		{
			name:     "outbound debits source",
			movement: Movement{ProductID: product, Type: TypeOutbound, Quantity: qty("4"), FromLocationID: ptr(locA)},
			want: map[ItemKey]types.Quantity{
				{ProductID: product, LocationID: locA}: qty("-4"),
			},
		},
		{
			name:     "positive adjustment credits destination",
			movement: Movement{ProductID: product, Type: TypeAdjustment, Quantity: qty("2"), ToLocationID: ptr(locA)},
			want: map[ItemKey]types.Quantity{
				{ProductID: product, LocationID: locA}: qty("2"),
			},
		},
		{
			name:     "negative adjustment debits source",
			movement: Movement{ProductID: product, Type: TypeAdjustment, Quantity: qty("2"), FromLocationID: ptr(locA)},
			want: map[ItemKey]types.Quantity{
				{ProductID: product, LocationID: locA}: qty("-2"),
			},
		},
		{
			name:     "adjustment with both endpoints credits destination",
			movement: Movement{ProductID: product, Type: TypeAdjustment, Quantity: qty("5"), FromLocationID: ptr(locA), ToLocationID: ptr(locB)},
			want: map[ItemKey]types.Quantity{
				{ProductID: product, LocationID: locB}: qty("5"),
			},
		},
		{
			name:     "transfer moves between locations",
			movement: Movement{ProductID: product, Type: TypeTransfer, Quantity: qty("3"), FromLocationID: ptr(locA), ToLocationID: ptr(locB)},
			want: map[ItemKey]types.Quantity{
				{ProductID: product, LocationID: locA}: qty("-3"),
				{ProductID: product, LocationID: locB}: qty("3"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate([]Movement{tt.movement})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregate_AdjustmentWithoutLocationsIsNoop(t *testing.T) {
	// A historic record that predates intake validation must not break or
	// skew the fold.
	product := id.New()
	locA := id.New()

	movements := []Movement{
		{ProductID: product, Type: TypeInbound, Quantity: qty("5"), ToLocationID: ptr(locA)},
		{ProductID: product, Type: TypeAdjustment, Quantity: qty("99")},
		{ProductID: product, Type: TypeOutbound, Quantity: qty("1"), FromLocationID: ptr(locA)},
	}

	got := Aggregate(movements)
	assert.Equal(t, map[ItemKey]types.Quantity{
		{ProductID: product, LocationID: locA}: qty("4"),
	}, got)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	products := []id.ID{id.New(), id.New(), id.New()}
	locations := []id.ID{id.New(), id.New()}

	rng := rand.New(rand.NewSource(42))
	movements := make([]Movement, 0, 200)
	for i := 0; i < 200; i++ {
		p := products[rng.Intn(len(products))]
		from := locations[rng.Intn(len(locations))]
		to := locations[rng.Intn(len(locations))]
		q := types.NewQuantityFromInt64Scaled(int64(rng.Intn(100_000) + 1))

		var m Movement
		switch rng.Intn(4) {
		case 0:
			m = Movement{ProductID: p, Type: TypeInbound, Quantity: q, ToLocationID: ptr(to)}
		case 1:
			m = Movement{ProductID: p, Type: TypeOutbound, Quantity: q, FromLocationID: ptr(from)}
		case 2:
			m = Movement{ProductID: p, Type: TypeAdjustment, Quantity: q, ToLocationID: ptr(to)}
		default:
			m = Movement{ProductID: p, Type: TypeTransfer, Quantity: q, FromLocationID: ptr(from), ToLocationID: ptr(to)}
		}
		movements = append(movements, m)
	}

	want := Aggregate(movements)

	for trial := 0; trial < 5; trial++ {
		shuffled := make([]Movement, len(movements))
		copy(shuffled, movements)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		assert.Equal(t, want, Aggregate(shuffled))
	}
}

func TestAggregate_ReplayDoubles(t *testing.T) {
	// Replayed facts count again. Exactly-once delivery is the caller's
	// responsibility, not the reducer's.
	product := id.New()
	loc := id.New()

	movements := []Movement{
		{ProductID: product, Type: TypeInbound, Quantity: qty("7"), ToLocationID: ptr(loc)},
		{ProductID: product, Type: TypeOutbound, Quantity: qty("2"), FromLocationID: ptr(loc)},
	}

	doubled := append(append([]Movement{}, movements...), movements...)
	got := Aggregate(doubled)
	assert.Equal(t, qty("10"), got[ItemKey{ProductID: product, LocationID: loc}])
}

func TestAggregate_TransferIsZeroSum(t *testing.T) {
	product := id.New()
	locA := id.New()
	locB := id.New()
	locC := id.New()

	movements := []Movement{
		{ProductID: product, Type: TypeInbound, Quantity: qty("20"), ToLocationID: ptr(locA)},
		{ProductID: product, Type: TypeTransfer, Quantity: qty("8"), FromLocationID: ptr(locA), ToLocationID: ptr(locB)},
		{ProductID: product, Type: TypeTransfer, Quantity: qty("3"), FromLocationID: ptr(locB), ToLocationID: ptr(locC)},
	}

	got := Aggregate(movements)

	var total types.Quantity
	for _, q := range got {
		total = total.Add(q)
	}
	assert.Equal(t, qty("20"), total, "transfers must not change the product total")
	assert.Equal(t, qty("12"), got[ItemKey{ProductID: product, LocationID: locA}])
	assert.Equal(t, qty("5"), got[ItemKey{ProductID: product, LocationID: locB}])
	assert.Equal(t, qty("3"), got[ItemKey{ProductID: product, LocationID: locC}])
}

func TestAggregate_NegativeBalanceAllowed(t *testing.T) {
	product := id.New()
	loc := id.New()

	got := Aggregate([]Movement{
		{ProductID: product, Type: TypeOutbound, Quantity: qty("5"), FromLocationID: ptr(loc)},
	})
	assert.Equal(t, qty("-5"), got[ItemKey{ProductID: product, LocationID: loc}])
}

func TestAggregate_FractionalQuantitiesExact(t *testing.T) {
	product := id.New()
	loc := id.New()

	movements := make([]Movement, 0, 10)
	for i := 0; i < 10; i++ {
		movements = append(movements, Movement{
			ProductID: product, Type: TypeInbound, Quantity: qty("0.1"), ToLocationID: ptr(loc),
		})
	}

	got := Aggregate(movements)
	assert.Equal(t, qty("1"), got[ItemKey{ProductID: product, LocationID: loc}])
}

func TestProject_DenseGrid(t *testing.T) {
	flour := ProductInfo{ID: id.New(), Name: "Flour", SKU: "PRD-00001", Unit: "kg"}
	oil := ProductInfo{ID: id.New(), Name: "Olive Oil", SKU: "PRD-00002", Unit: "l"}
	salt := ProductInfo{ID: id.New(), Name: "Salt", SKU: "PRD-00003", Unit: "kg"}

	kitchen := LocationInfo{ID: id.New(), Name: "Kitchen"}
	cellar := LocationInfo{ID: id.New(), Name: "Cellar"}

	quantities := map[ItemKey]types.Quantity{
		{ProductID: flour.ID, LocationID: kitchen.ID}: qty("12.5"),
		{ProductID: oil.ID, LocationID: cellar.ID}:    qty("-2"),
	}

	views := Project(
		[]ProductInfo{flour, oil, salt},
		[]LocationInfo{kitchen, cellar},
		quantities,
	)

	require.Len(t, views, 3)
	for i, v := range views {
		require.Len(t, v.Locations, 2, "row %d must have a cell per location", i)
		assert.Equal(t, kitchen.ID, v.Locations[0].LocationID)
		assert.Equal(t, cellar.ID, v.Locations[1].LocationID)
	}

	assert.Equal(t, "Flour", views[0].Name)
	assert.Equal(t, qty("12.5"), views[0].Locations[0].Qty)
	assert.Equal(t, qty("0"), views[0].Locations[1].Qty)
	assert.Equal(t, qty("12.5"), views[0].TotalQty)

	assert.Equal(t, qty("-2"), views[1].TotalQty, "negative balances surface as-is")

	// Salt has no movements at all and still gets a zero-filled row.
	assert.Equal(t, qty("0"), views[2].TotalQty)
	assert.Equal(t, qty("0"), views[2].Locations[0].Qty)
	assert.Equal(t, qty("0"), views[2].Locations[1].Qty)
}

func TestProject_EmptyCatalogs(t *testing.T) {
	views := Project(nil, nil, map[ItemKey]types.Quantity{})
	assert.Empty(t, views)

	p := ProductInfo{ID: id.New(), Name: "Flour", SKU: "PRD-00001"}
	views = Project([]ProductInfo{p}, nil, nil)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].Locations)
	assert.True(t, views[0].TotalQty.IsZero())
}
