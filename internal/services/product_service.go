package services

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode"

	"nexx/internal/cache"
	"nexx/internal/models"
	"nexx/internal/repositories"
)

const (
	catalogCacheKey = "catalog:all"
	catalogCacheTTL = 5 * time.Minute
)

// ProductService handles business logic related to the catalog.
type ProductService struct {
	repo  repositories.ProductRepository
	cache *cache.Cache
}

// NewProductService creates a new ProductService. cache may be nil.
func NewProductService(repo repositories.ProductRepository, c *cache.Cache) *ProductService {
	return &ProductService{repo: repo, cache: c}
}

// GetAllProducts retrieves the catalog, filtered by brand, category and a
// free-text search over name, description and part number. The unfiltered
// listing is served read-through from the cache.
func (s *ProductService) GetAllProducts(filter models.ProductFilter) ([]models.Product, error) {
	products, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}

	if filter.Brand == "" && filter.Category == "" && filter.Search == "" {
		return products, nil
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesFilter(p, filter) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *ProductService) loadCatalog() ([]models.Product, error) {
	ctx := context.Background()

	var cached []models.Product
	if err := s.cache.Get(ctx, catalogCacheKey, &cached); err == nil {
		return cached, nil
	}

	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, catalogCacheKey, products, catalogCacheTTL); err != nil {
		log.Printf("Failed to cache catalog: %v", err)
	}
	return products, nil
}

func (s *ProductService) invalidateCatalog() {
	if err := s.cache.Delete(context.Background(), catalogCacheKey); err != nil {
		log.Printf("Failed to invalidate catalog cache: %v", err)
	}
}

func matchesFilter(p models.Product, filter models.ProductFilter) bool {
	if filter.Brand != "" && !strings.EqualFold(p.Brand, filter.Brand) {
		return false
	}
	if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) &&
			!strings.Contains(strings.ToLower(p.PartNumber), needle) {
			return false
		}
	}
	return true
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetProductBySlug retrieves a single product by its slug.
func (s *ProductService) GetProductBySlug(slug string) (*models.Product, error) {
	return s.repo.GetBySlug(slug)
}

// CreateProduct creates a new product, deriving the slug from the name when
// none is supplied.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Slug == "" {
		product.Slug = Slugify(product.Name)
	}
	if product.StockQuantity > 0 {
		product.InStock = true
	}
	if err := s.repo.Create(product); err != nil {
		return err
	}
	s.invalidateCatalog()
	return nil
}

// UpdateProduct applies a partial update to a product.
func (s *ProductService) UpdateProduct(id string, patch models.ProductPatch) (*models.Product, error) {
	updated, err := s.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidateCatalog()
	return updated, nil
}

// DeleteProduct deletes a product by its ID. Deleting an unknown id is a
// no-op; cart and order lines keep their price snapshots regardless.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalog()
	return nil
}

// Slugify derives a URL slug from a product name: lowercase, alphanumeric
// runs joined by single dashes.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
