package repositories

import (
	"fmt"
	"time"

	"nexx/internal/models"
	"nexx/internal/store"

	"github.com/google/uuid"
)

const productsKey = "products"

// StoreProductRepository keeps products in the local persistent store as a
// single JSON collection, rewritten whole on every mutation.
type StoreProductRepository struct {
	store *store.Store
}

// NewStoreProductRepository creates a new StoreProductRepository.
func NewStoreProductRepository(s *store.Store) *StoreProductRepository {
	return &StoreProductRepository{store: s}
}

func (r *StoreProductRepository) load() []models.Product {
	var products []models.Product
	r.store.Get(productsKey, &products)
	return products
}

func (r *StoreProductRepository) save(products []models.Product) error {
	if !r.store.Set(productsKey, products) {
		return fmt.Errorf("failed to persist products collection")
	}
	return nil
}

// GetAll returns all products.
func (r *StoreProductRepository) GetAll() ([]models.Product, error) {
	return r.load(), nil
}

// GetByID returns a product by its ID.
func (r *StoreProductRepository) GetByID(id string) (*models.Product, error) {
	for _, p := range r.load() {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product with ID %s not found", id)
}

// GetBySlug returns a product by its slug.
func (r *StoreProductRepository) GetBySlug(slug string) (*models.Product, error) {
	for _, p := range r.load() {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product with slug %s not found", slug)
}

// Create assigns an ID and creation timestamp and appends the product.
func (r *StoreProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	products := append(r.load(), *product)
	return r.save(products)
}

// Update merges the patch into the matching product and stamps the update
// time.
func (r *StoreProductRepository) Update(id string, patch models.ProductPatch) (*models.Product, error) {
	products := r.load()
	for i := range products {
		if products[i].ID == id {
			patch.Apply(&products[i])
			products[i].UpdatedAt = time.Now()
			if err := r.save(products); err != nil {
				return nil, err
			}
			updated := products[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("product with ID %s not found", id)
}

// Delete filters the product out of the collection. Unknown ids are a no-op.
func (r *StoreProductRepository) Delete(id string) error {
	products := r.load()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return r.save(kept)
}
