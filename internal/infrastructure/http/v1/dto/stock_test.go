package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/types"
)

func TestRecordMovementRequest_ToInput(t *testing.T) {
	scope := id.New()
	product := id.New()
	location := id.New()
	qty := types.MustQuantity("2.5")
	locStr := location.String()

	req := RecordMovementRequest{
		ProductID:    product.String(),
		Type:         "IN",
		Quantity:     &qty,
		ToLocationID: &locStr,
		Note:         "delivery",
	}

	input, err := req.ToInput(scope)
	require.NoError(t, err)
	assert.Equal(t, scope, input.RestaurantID)
	assert.Equal(t, product, input.ProductID)
	require.NotNil(t, input.ToLocationID)
	assert.Equal(t, location, *input.ToLocationID)
	assert.Nil(t, input.FromLocationID)
	assert.Equal(t, "delivery", input.Note)
}

func TestRecordMovementRequest_BodyTenant(t *testing.T) {
	scope := id.New()
	other := id.New()

	t.Run("body fills empty scope", func(t *testing.T) {
		req := RecordMovementRequest{RestaurantID: scope.String()}
		input, err := req.ToInput(id.Nil())
		require.NoError(t, err)
		assert.Equal(t, scope, input.RestaurantID)
	})

	t.Run("body must match resolved scope", func(t *testing.T) {
		req := RecordMovementRequest{RestaurantID: other.String()}
		_, err := req.ToInput(scope)
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
	})

	t.Run("matching body is accepted", func(t *testing.T) {
		req := RecordMovementRequest{RestaurantID: scope.String()}
		input, err := req.ToInput(scope)
		require.NoError(t, err)
		assert.Equal(t, scope, input.RestaurantID)
	})
}

func TestRecordMovementRequest_MalformedIDs(t *testing.T) {
	scope := id.New()

	bad := "not-a-uuid"
	for _, req := range []RecordMovementRequest{
		{ProductID: bad},
		{FromLocationID: &bad},
		{ToLocationID: &bad},
		{RestaurantID: bad},
	} {
		_, err := req.ToInput(scope)
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
	}
}

func TestRecordMovementRequest_AbsentOptionalIDsStayAbsent(t *testing.T) {
	req := RecordMovementRequest{ProductID: id.New().String(), Type: "OUT"}
	input, err := req.ToInput(id.New())
	require.NoError(t, err)
	assert.Nil(t, input.FromLocationID)
	assert.Nil(t, input.ToLocationID)
	assert.Nil(t, input.Quantity)
}
