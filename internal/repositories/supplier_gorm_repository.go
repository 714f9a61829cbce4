package repositories

import (
	"fmt"

	"nexx/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSupplierRepository is a GORM implementation of SupplierRepository.
type GORMSupplierRepository struct {
	db *gorm.DB
}

// NewGORMSupplierRepository creates a new instance of GORMSupplierRepository.
func NewGORMSupplierRepository(db *gorm.DB) *GORMSupplierRepository {
	return &GORMSupplierRepository{db: db}
}

// GetAll retrieves all suppliers from the database.
func (r *GORMSupplierRepository) GetAll() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.Find(&suppliers).Error; err != nil {
		return nil, fmt.Errorf("failed to get all suppliers: %w", err)
	}
	return suppliers, nil
}

// GetByID retrieves a single supplier by its ID from the database.
func (r *GORMSupplierRepository) GetByID(id string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("supplier with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get supplier by ID %s: %w", id, err)
	}
	return &supplier, nil
}

// Create creates a new supplier in the database.
func (r *GORMSupplierRepository) Create(supplier *models.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	if err := r.db.Create(supplier).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// Update loads the supplier, applies the patch, and saves the result.
func (r *GORMSupplierRepository) Update(id string, patch models.SupplierPatch) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("supplier with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to load supplier %s for update: %w", id, err)
	}

	patch.Apply(&supplier)
	if err := r.db.Save(&supplier).Error; err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return &supplier, nil
}

// Delete deletes a supplier by its ID. Deleting an unknown id is a no-op.
func (r *GORMSupplierRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Supplier{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	return nil
}
