package repositories

import (
	"fmt"
	"time"

	"nexx/internal/models"
	"nexx/internal/store"

	"github.com/google/uuid"
)

const suppliersKey = "suppliers"

// StoreSupplierRepository keeps suppliers in the local persistent store.
type StoreSupplierRepository struct {
	store *store.Store
}

// NewStoreSupplierRepository creates a new StoreSupplierRepository.
func NewStoreSupplierRepository(s *store.Store) *StoreSupplierRepository {
	return &StoreSupplierRepository{store: s}
}

func (r *StoreSupplierRepository) load() []models.Supplier {
	var suppliers []models.Supplier
	r.store.Get(suppliersKey, &suppliers)
	return suppliers
}

func (r *StoreSupplierRepository) save(suppliers []models.Supplier) error {
	if !r.store.Set(suppliersKey, suppliers) {
		return fmt.Errorf("failed to persist suppliers collection")
	}
	return nil
}

// GetAll returns all suppliers.
func (r *StoreSupplierRepository) GetAll() ([]models.Supplier, error) {
	return r.load(), nil
}

// GetByID returns a supplier by its ID.
func (r *StoreSupplierRepository) GetByID(id string) (*models.Supplier, error) {
	for _, s := range r.load() {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("supplier with ID %s not found", id)
}

// Create assigns an ID and creation timestamp and appends the supplier.
func (r *StoreSupplierRepository) Create(supplier *models.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	now := time.Now()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	return r.save(append(r.load(), *supplier))
}

// Update merges the patch into the matching supplier.
func (r *StoreSupplierRepository) Update(id string, patch models.SupplierPatch) (*models.Supplier, error) {
	suppliers := r.load()
	for i := range suppliers {
		if suppliers[i].ID == id {
			patch.Apply(&suppliers[i])
			suppliers[i].UpdatedAt = time.Now()
			if err := r.save(suppliers); err != nil {
				return nil, err
			}
			updated := suppliers[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("supplier with ID %s not found", id)
}

// Delete filters the supplier out of the collection. Unknown ids are a no-op.
func (r *StoreSupplierRepository) Delete(id string) error {
	suppliers := r.load()
	kept := suppliers[:0]
	for _, s := range suppliers {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	return r.save(kept)
}
