package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxgambino/tandem-inventory/internal/core/apperror"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/core/numerator"
	"github.com/maxgambino/tandem-inventory/internal/domain"
)

type memRepo struct {
	byID map[id.ID]*Product
}

func newMemRepo() *memRepo {
	return &memRepo{byID: make(map[id.ID]*Product)}
}

func (r *memRepo) Create(_ context.Context, p *Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *memRepo) GetByID(_ context.Context, entityID id.ID) (*Product, error) {
	p, ok := r.byID[entityID]
	if !ok {
		return nil, apperror.NewNotFound("product", entityID.String())
	}
	return p, nil
}

func (r *memRepo) GetByCode(_ context.Context, restaurantID id.ID, code string) (*Product, error) {
	for _, p := range r.byID {
		if p.RestaurantID == restaurantID && p.Code == code {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("product", code)
}

func (r *memRepo) Update(_ context.Context, p *Product) error {
	r.byID[p.ID] = p
	return nil
}

func (r *memRepo) Delete(_ context.Context, entityID id.ID) error {
	delete(r.byID, entityID)
	return nil
}

func (r *memRepo) SetDeletionMark(_ context.Context, entityID id.ID, marked bool) error {
	if p, ok := r.byID[entityID]; ok {
		p.DeletionMark = marked
	}
	return nil
}

func (r *memRepo) List(_ context.Context, filter domain.ListFilter) (domain.ListResult[*Product], error) {
	var items []*Product
	for _, p := range r.byID {
		if p.RestaurantID == filter.RestaurantID {
			items = append(items, p)
		}
	}
	return domain.ListResult[*Product]{
		Items:      items,
		TotalCount: int64(len(items)),
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	}, nil
}

func (r *memRepo) Exists(_ context.Context, entityID id.ID) (bool, error) {
	_, ok := r.byID[entityID]
	return ok, nil
}

func (r *memRepo) ExistsByCode(_ context.Context, restaurantID id.ID, code string) (bool, error) {
	for _, p := range r.byID {
		if p.RestaurantID == restaurantID && p.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) ListActive(_ context.Context, restaurantID id.ID) ([]*Product, error) {
	var items []*Product
	for _, p := range r.byID {
		if p.RestaurantID == restaurantID && !p.DeletionMark {
			items = append(items, p)
		}
	}
	return items, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestService_Create_GeneratesSKU(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, passthroughTx{}, &numerator.MockGenerator{})
	restaurant := id.New()

	first := New(restaurant, "", "Tomatoes")
	require.NoError(t, svc.Create(context.Background(), first))
	assert.Equal(t, "PRD-00001", first.Code)

	second := New(restaurant, "", "Flour")
	require.NoError(t, svc.Create(context.Background(), second))
	assert.Equal(t, "PRD-00002", second.Code)
}

func TestService_Create_KeepsExplicitSKU(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, passthroughTx{}, &numerator.MockGenerator{})

	p := New(id.New(), "TOMATO-1", "Tomatoes")
	require.NoError(t, svc.Create(context.Background(), p))
	assert.Equal(t, "TOMATO-1", p.Code)
}

func TestService_Create_RejectsDuplicateSKU(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, passthroughTx{}, &numerator.MockGenerator{})
	restaurant := id.New()

	require.NoError(t, svc.Create(context.Background(), New(restaurant, "TOMATO-1", "Tomatoes")))

	err := svc.Create(context.Background(), New(restaurant, "TOMATO-1", "Tomatoes Again"))
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicate))
}

func TestService_Create_SameSKUInAnotherRestaurant(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, passthroughTx{}, &numerator.MockGenerator{})

	require.NoError(t, svc.Create(context.Background(), New(id.New(), "TOMATO-1", "Tomatoes")))
	require.NoError(t, svc.Create(context.Background(), New(id.New(), "TOMATO-1", "Tomatoes")))
}

func TestService_Create_RequiresName(t *testing.T) {
	svc := NewService(newMemRepo(), passthroughTx{}, &numerator.MockGenerator{})

	err := svc.Create(context.Background(), New(id.New(), "SKU-1", ""))
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestService_Create_RequiresTenant(t *testing.T) {
	svc := NewService(newMemRepo(), passthroughTx{}, &numerator.MockGenerator{})

	err := svc.Create(context.Background(), New(id.Nil(), "SKU-1", "Tomatoes"))
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingTenant))
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(newMemRepo(), passthroughTx{}, &numerator.MockGenerator{})

	_, err := svc.GetByID(context.Background(), id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Update_BumpsVersion(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, passthroughTx{}, &numerator.MockGenerator{})

	p := New(id.New(), "TOMATO-1", "Tomatoes")
	require.NoError(t, svc.Create(context.Background(), p))
	require.Equal(t, 1, p.Version)

	p.Name = "Cherry Tomatoes"
	require.NoError(t, svc.Update(context.Background(), p))

	// The stored row's version moved to 2; the entity handed back to the
	// caller must carry the same value or the caller's next update is
	// rejected as a concurrent modification.
	assert.Equal(t, 2, p.Version)
}

func TestService_ListActive_ExcludesMarked(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, passthroughTx{}, &numerator.MockGenerator{})
	restaurant := id.New()

	keep := New(restaurant, "KEEP-1", "Keep")
	gone := New(restaurant, "GONE-1", "Gone")
	require.NoError(t, svc.Create(context.Background(), keep))
	require.NoError(t, svc.Create(context.Background(), gone))
	require.NoError(t, svc.SetDeletionMark(context.Background(), gone.ID, true))

	items, err := svc.ListActive(context.Background(), restaurant)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "KEEP-1", items[0].Code)
}

func TestService_ListActive_RequiresTenant(t *testing.T) {
	svc := NewService(newMemRepo(), passthroughTx{}, &numerator.MockGenerator{})

	_, err := svc.ListActive(context.Background(), id.Nil())
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingTenant))
}
