package attribute

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/tenant"
)

type memRepo struct {
	attrs  map[id.ID]*Attribute
	values map[[2]id.ID]*ProductValue // (productID, attributeID)
}

func newMemRepo() *memRepo {
	return &memRepo{
		attrs:  make(map[id.ID]*Attribute),
		values: make(map[[2]id.ID]*ProductValue),
	}
}

func (r *memRepo) Create(_ context.Context, attr *Attribute) error {
	r.attrs[attr.ID] = attr
	return nil
}

func (r *memRepo) GetByID(_ context.Context, attrID id.ID) (*Attribute, error) {
	attr, ok := r.attrs[attrID]
	if !ok {
		return nil, apperror.NewNotFound("attribute", attrID.String())
	}
	return attr, nil
}

func (r *memRepo) Update(_ context.Context, attr *Attribute) error {
	r.attrs[attr.ID] = attr
	return nil
}

func (r *memRepo) Delete(_ context.Context, attrID id.ID) error {
	delete(r.attrs, attrID)
	for key := range r.values {
		if key[1] == attrID {
			delete(r.values, key)
		}
	}
	return nil
}

func (r *memRepo) List(_ context.Context, restaurantID id.ID) ([]*Attribute, error) {
	var out []*Attribute
	for _, attr := range r.attrs {
		if attr.RestaurantID == restaurantID {
			out = append(out, attr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *memRepo) MaxPosition(_ context.Context, restaurantID id.ID) (int, error) {
	max := -1
	for _, attr := range r.attrs {
		if attr.RestaurantID == restaurantID && attr.Position > max {
			max = attr.Position
		}
	}
	return max, nil
}

func (r *memRepo) Reorder(_ context.Context, restaurantID id.ID, orderedIDs []id.ID) error {
	for pos, attrID := range orderedIDs {
		if attr, ok := r.attrs[attrID]; ok && attr.RestaurantID == restaurantID {
			attr.Position = pos
		}
	}
	return nil
}

func (r *memRepo) Assign(_ context.Context, value *ProductValue) error {
	r.values[[2]id.ID{value.ProductID, value.AttributeID}] = value
	return nil
}

func (r *memRepo) Unassign(_ context.Context, productID, attrID id.ID) error {
	delete(r.values, [2]id.ID{productID, attrID})
	return nil
}

func (r *memRepo) ListByProduct(_ context.Context, restaurantID, productID id.ID) ([]*ProductAttribute, error) {
	var out []*ProductAttribute
	for key, value := range r.values {
		if key[0] != productID {
			continue
		}
		attr, ok := r.attrs[key[1]]
		if !ok || attr.RestaurantID != restaurantID {
			continue
		}
		out = append(out, &ProductAttribute{Attribute: *attr, Value: *value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService() (*Service, *memRepo) {
	repo := newMemRepo()
	return NewService(repo, passthroughTx{}), repo
}

func TestService_Create_AssignsNextPosition(t *testing.T) {
	svc, _ := newTestService()
	restaurant := id.New()

	first := New(restaurant, "Origin", KindText)
	require.NoError(t, svc.Create(context.Background(), first))
	assert.Equal(t, 0, first.Position)

	second := New(restaurant, "Shelf Life Days", KindNumber)
	require.NoError(t, svc.Create(context.Background(), second))
	assert.Equal(t, 1, second.Position)

	// Positions are sequenced per tenant.
	other := New(id.New(), "Origin", KindText)
	require.NoError(t, svc.Create(context.Background(), other))
	assert.Equal(t, 0, other.Position)
}

func TestService_Create_RejectsUnknownKind(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Create(context.Background(), New(id.New(), "Broken", Kind("color")))
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestService_GetByID_HidesOtherTenants(t *testing.T) {
	svc, _ := newTestService()
	restaurant := id.New()

	attr := New(restaurant, "Origin", KindText)
	require.NoError(t, svc.Create(context.Background(), attr))

	_, err := svc.GetByID(context.Background(), id.New(), attr.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Reorder(t *testing.T) {
	svc, _ := newTestService()
	restaurant := id.New()

	a := New(restaurant, "A", KindText)
	b := New(restaurant, "B", KindText)
	c := New(restaurant, "C", KindText)
	for _, attr := range []*Attribute{a, b, c} {
		require.NoError(t, svc.Create(context.Background(), attr))
	}

	require.NoError(t, svc.Reorder(context.Background(), restaurant, []id.ID{c.ID, a.ID, b.ID}))

	attrs, err := svc.List(context.Background(), restaurant)
	require.NoError(t, err)
	require.Len(t, attrs, 3)
	assert.Equal(t, "C", attrs[0].Name)
	assert.Equal(t, "A", attrs[1].Name)
	assert.Equal(t, "B", attrs[2].Name)
}

func TestService_Reorder_MustBeComplete(t *testing.T) {
	svc, _ := newTestService()
	restaurant := id.New()

	a := New(restaurant, "A", KindText)
	b := New(restaurant, "B", KindText)
	for _, attr := range []*Attribute{a, b} {
		require.NoError(t, svc.Create(context.Background(), attr))
	}

	err := svc.Reorder(context.Background(), restaurant, []id.ID{a.ID})
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))

	err = svc.Reorder(context.Background(), restaurant, []id.ID{a.ID, id.New()})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Assign_CoercesByKind(t *testing.T) {
	svc, _ := newTestService()
	restaurant := id.New()
	ctx := tenant.WithRestaurant(context.Background(), restaurant)
	product := id.New()

	number := New(restaurant, "Shelf Life Days", KindNumber)
	text := New(restaurant, "Origin", KindText)
	date := New(restaurant, "Best Before", KindDate)
	for _, attr := range []*Attribute{number, text, date} {
		require.NoError(t, svc.Create(ctx, attr))
	}

	days := 14.0
	value, err := svc.Assign(ctx, AssignInput{ProductID: product, AttributeID: number.ID, ValueNumber: &days})
	require.NoError(t, err)
	require.NotNil(t, value.ValueNumber)
	assert.Equal(t, 14.0, *value.ValueNumber)
	assert.Nil(t, value.ValueText)

	// Value field must match the attribute kind.
	origin := "Italy"
	_, err = svc.Assign(ctx, AssignInput{ProductID: product, AttributeID: number.ID, ValueText: &origin})
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))

	_, err = svc.Assign(ctx, AssignInput{ProductID: product, AttributeID: text.ID, ValueText: &origin})
	require.NoError(t, err)

	when := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	_, err = svc.Assign(ctx, AssignInput{ProductID: product, AttributeID: date.ID, ValueDate: &when})
	require.NoError(t, err)

	rows, err := svc.ListByProduct(ctx, restaurant, product)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestService_Assign_RequiresTenant(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Assign(context.Background(), AssignInput{ProductID: id.New(), AttributeID: id.New()})
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingTenant))
}

func TestService_Unassign(t *testing.T) {
	svc, repo := newTestService()
	restaurant := id.New()
	ctx := tenant.WithRestaurant(context.Background(), restaurant)
	product := id.New()

	attr := New(restaurant, "Origin", KindText)
	require.NoError(t, svc.Create(ctx, attr))

	origin := "Italy"
	_, err := svc.Assign(ctx, AssignInput{ProductID: product, AttributeID: attr.ID, ValueText: &origin})
	require.NoError(t, err)
	require.Len(t, repo.values, 1)

	require.NoError(t, svc.Unassign(ctx, restaurant, product, attr.ID))
	assert.Empty(t, repo.values)
}
