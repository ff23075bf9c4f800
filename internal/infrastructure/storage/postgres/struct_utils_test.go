package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxgambino/tandem-inventory/internal/core/entity"
	"github.com/maxgambino/tandem-inventory/internal/core/id"
	"github.com/maxgambino/tandem-inventory/internal/domain/catalogs/product"
)

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[product.Product]()

	// Embedded Catalog and BaseEntity columns must be flattened in.
	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "deletion_mark")
	assert.Contains(t, cols, "version")
	assert.Contains(t, cols, "restaurant_id")
	assert.Contains(t, cols, "code")
	assert.Contains(t, cols, "name")
	assert.Contains(t, cols, "barcode")
	assert.Contains(t, cols, "unit")
	assert.Contains(t, cols, "default_location_id")
	assert.Contains(t, cols, "supplier_id")
}

func TestExtractDBColumns_PointerType(t *testing.T) {
	assert.Equal(t, ExtractDBColumns[product.Product](), ExtractDBColumns[*product.Product]())
}

func TestStructToMap(t *testing.T) {
	restaurant := id.New()
	p := product.New(restaurant, "PRD-00001", "Flour")
	unit := "kg"
	p.Unit = &unit

	m := StructToMap(p)

	assert.Equal(t, p.ID, m["id"])
	assert.Equal(t, restaurant, m["restaurant_id"])
	assert.Equal(t, "PRD-00001", m["code"])
	assert.Equal(t, "Flour", m["name"])
	assert.Equal(t, &unit, m["unit"])
	assert.Equal(t, 1, m["version"])
	assert.Equal(t, false, m["deletion_mark"])
}

func TestStructToMap_SkipsUntaggedFields(t *testing.T) {
	type row struct {
		Keep    string `db:"keep"`
		Ignored string `db:"-"`
		NoTag   string
	}

	m := StructToMap(row{Keep: "a", Ignored: "b", NoTag: "c"})
	assert.Equal(t, map[string]any{"keep": "a"}, m)
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap("not a struct"))
	assert.Nil(t, StructToMap(42))
}

func TestStructToMap_EmbeddedOverride(t *testing.T) {
	// Repeated calls hit the metadata cache and must stay consistent.
	c := entity.NewCatalog(id.New(), "LOC-00001", "Kitchen")
	first := StructToMap(&c)
	second := StructToMap(&c)
	assert.Equal(t, first, second)
}
