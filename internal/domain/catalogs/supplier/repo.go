package supplier

import (
	"github.com/maxgambino/tandem-inventory/internal/domain"
)

// Repository defines the interface for Supplier persistence.
type Repository interface {
	domain.CatalogRepository[*Supplier]
}
