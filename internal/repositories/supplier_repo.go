package repositories

import "nexx/internal/models"

// SupplierRepository defines the interface for supplier data access. Update
// returns the updated supplier or a not-found error; Delete is idempotent.
type SupplierRepository interface {
	GetAll() ([]models.Supplier, error)
	GetByID(id string) (*models.Supplier, error)
	Create(supplier *models.Supplier) error
	Update(id string, patch models.SupplierPatch) (*models.Supplier, error)
	Delete(id string) error
}
