package repositories

import (
	"context"
	"errors"
	"fmt"

	"nexx/internal/models"
	"nexx/pkg/apiclient"
)

// RemoteProductRepository is a ProductRepository backed by a remote store API
// over HTTP. It keeps the repository contract identical to the local
// backends so callers never know which side of the wire they are on.
type RemoteProductRepository struct {
	client *apiclient.Client
}

// NewRemoteProductRepository creates a repository over the given API client.
func NewRemoteProductRepository(client *apiclient.Client) *RemoteProductRepository {
	return &RemoteProductRepository{client: client}
}

// GetAll fetches the full catalog from the remote API.
func (r *RemoteProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.client.Get(context.Background(), "/products", &products); err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID fetches a single product from the remote API.
func (r *RemoteProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.client.Get(context.Background(), "/products/"+id, &product); err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// GetBySlug fetches a single product by slug from the remote API.
func (r *RemoteProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.client.Get(context.Background(), "/products/slug/"+slug, &product); err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil, fmt.Errorf("product with slug %s not found", slug)
		}
		return nil, fmt.Errorf("failed to get product by slug %s: %w", slug, err)
	}
	return &product, nil
}

// Create posts a new product to the remote API and adopts the assigned
// identity fields.
func (r *RemoteProductRepository) Create(product *models.Product) error {
	var created models.Product
	if err := r.client.Post(context.Background(), "/products", product, &created); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	*product = created
	return nil
}

// Update sends a partial update to the remote API.
func (r *RemoteProductRepository) Update(id string, patch models.ProductPatch) (*models.Product, error) {
	var updated models.Product
	if err := r.client.Put(context.Background(), "/products/"+id, patch, &updated); err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil, fmt.Errorf("product with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return &updated, nil
}

// Delete removes a product through the remote API. A remote 404 is treated
// as success to keep deletion idempotent across backends.
func (r *RemoteProductRepository) Delete(id string) error {
	if err := r.client.Delete(context.Background(), "/products/"+id, nil); err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.IsNotFound() {
			return nil
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
