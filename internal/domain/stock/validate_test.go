package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
)

func TestValidateInput(t *testing.T) {
	restaurant := id.New()
	product := id.New()
	locA := id.New()
	locB := id.New()

	valid := func() Input {
		return Input{
			RestaurantID:   restaurant,
			ProductID:      product,
			Type:           TypeTransfer,
			Quantity:       qtyPtr("5"),
			FromLocationID: ptr(locA),
			ToLocationID:   ptr(locB),
		}
	}

	tests := []struct {
		name     string
		mutate   func(*Input)
		wantCode string
	}{
		{
			name:   "valid transfer",
			mutate: func(in *Input) {},
		},
		{
			name: "valid inbound",
			mutate: func(in *Input) {
				in.Type = TypeInbound
				in.FromLocationID = nil
			},
		},
		{
			name: "valid outbound",
			mutate: func(in *Input) {
				in.Type = TypeOutbound
				in.ToLocationID = nil
			},
		},
		{
			name: "valid positive adjustment",
			mutate: func(in *Input) {
				in.Type = TypeAdjustment
				in.FromLocationID = nil
			},
		},
		{
			name: "valid negative adjustment",
			mutate: func(in *Input) {
				in.Type = TypeAdjustment
				in.ToLocationID = nil
			},
		},
		{
			name:     "missing restaurant",
			mutate:   func(in *Input) { in.RestaurantID = id.Nil() },
			wantCode: apperror.CodeMissingTenant,
		},
		{
			name:     "missing product",
			mutate:   func(in *Input) { in.ProductID = id.Nil() },
			wantCode: apperror.CodeMissingField,
		},
		{
			name:     "missing type",
			mutate:   func(in *Input) { in.Type = "" },
			wantCode: apperror.CodeMissingField,
		},
		{
			name:     "missing quantity",
			mutate:   func(in *Input) { in.Quantity = nil },
			wantCode: apperror.CodeMissingField,
		},
		{
			name:     "unknown type",
			mutate:   func(in *Input) { in.Type = "RESTOCK" },
			wantCode: apperror.CodeInvalidType,
		},
		{
			name:     "zero quantity",
			mutate:   func(in *Input) { in.Quantity = qtyPtr("0") },
			wantCode: apperror.CodeInvalidQuantity,
		},
		{
			name:     "negative quantity",
			mutate:   func(in *Input) { in.Quantity = qtyPtr("-3") },
			wantCode: apperror.CodeInvalidQuantity,
		},
		{
			name: "inbound without destination",
			mutate: func(in *Input) {
				in.Type = TypeInbound
				in.ToLocationID = nil
			},
			wantCode: apperror.CodeMissingDestination,
		},
		{
			name: "outbound without source",
			mutate: func(in *Input) {
				in.Type = TypeOutbound
				in.FromLocationID = nil
			},
			wantCode: apperror.CodeMissingSource,
		},
		{
			name: "transfer without source",
			mutate: func(in *Input) {
				in.FromLocationID = nil
			},
			wantCode: apperror.CodeMissingEndpoint,
		},
		{
			name: "transfer without destination",
			mutate: func(in *Input) {
				in.ToLocationID = nil
			},
			wantCode: apperror.CodeMissingEndpoint,
		},
		{
			name: "adjustment without any location",
			mutate: func(in *Input) {
				in.Type = TypeAdjustment
				in.FromLocationID = nil
				in.ToLocationID = nil
			},
			wantCode: apperror.CodeMissingEndpoint,
		},
		{
			name: "nil uuid location counts as absent",
			mutate: func(in *Input) {
				in.Type = TypeInbound
				in.FromLocationID = nil
				in.ToLocationID = ptr(id.Nil())
			},
			wantCode: apperror.CodeMissingDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)

			err := ValidateInput(in)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok, "expected an AppError, got %T", err)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestValidateInput_FirstFailureWins(t *testing.T) {
	// Multiple violations report the earliest rule only: missing type is
	// reported before the quantity problem.
	in := Input{
		RestaurantID: id.New(),
		ProductID:    id.New(),
		Quantity:     qtyPtr("0"),
	}

	err := ValidateInput(in)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeMissingField, appErr.Code)
	assert.Equal(t, "type", appErr.Details["field"])
}
