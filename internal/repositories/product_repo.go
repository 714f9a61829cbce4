package repositories

import (
	"nexx/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// Update applies a partial patch and returns the updated product, or a
// not-found error when no product has the id. Delete is idempotent: deleting
// an unknown id succeeds.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	Create(product *models.Product) error
	Update(id string, patch models.ProductPatch) (*models.Product, error)
	Delete(id string) error
}
