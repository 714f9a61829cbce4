package services

import (
	"fmt"
	"sort"
	"time"

	"nexx/internal/models"
	"nexx/internal/repositories"
)

// Wholesale prices are modeled as a fixed share of the retail price until a
// live supplier feed is wired in.
const mockWholesaleShare = 0.8

// SupplierService handles supplier management and supplier-priced product
// offers. Connection tests are simulated with a fixed delay; no real
// supplier API is called.
type SupplierService struct {
	repo        repositories.SupplierRepository
	productRepo repositories.ProductRepository
	testDelay   time.Duration
}

// NewSupplierService creates a new SupplierService. testDelay is the
// simulated round-trip of a connection test.
func NewSupplierService(repo repositories.SupplierRepository, productRepo repositories.ProductRepository, testDelay time.Duration) *SupplierService {
	return &SupplierService{repo: repo, productRepo: productRepo, testDelay: testDelay}
}

// GetAllSuppliers retrieves all suppliers.
func (s *SupplierService) GetAllSuppliers() ([]models.Supplier, error) {
	return s.repo.GetAll()
}

// GetSupplierByID retrieves a single supplier by its ID.
func (s *SupplierService) GetSupplierByID(id string) (*models.Supplier, error) {
	return s.repo.GetByID(id)
}

// CreateSupplier creates a new supplier.
func (s *SupplierService) CreateSupplier(supplier *models.Supplier) error {
	return s.repo.Create(supplier)
}

// UpdateSupplier applies a partial update to a supplier.
func (s *SupplierService) UpdateSupplier(id string, patch models.SupplierPatch) (*models.Supplier, error) {
	return s.repo.Update(id, patch)
}

// DeleteSupplier deletes a supplier by its ID.
func (s *SupplierService) DeleteSupplier(id string) error {
	return s.repo.Delete(id)
}

// ConnectionTestResult reports the outcome of a supplier connection test.
type ConnectionTestResult struct {
	SupplierID string `json:"supplier_id"`
	OK         bool   `json:"ok"`
	Message    string `json:"message"`
	ElapsedMS  int64  `json:"elapsed_ms"`
}

// TestConnection simulates probing a supplier's API endpoint.
func (s *SupplierService) TestConnection(id string) (*ConnectionTestResult, error) {
	supplier, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	time.Sleep(s.testDelay)
	result := &ConnectionTestResult{
		SupplierID: supplier.ID,
		ElapsedMS:  time.Since(started).Milliseconds(),
	}

	switch {
	case !supplier.Active:
		result.Message = "supplier is disabled"
	case supplier.APIURL == "":
		result.Message = "no API URL configured"
	default:
		result.OK = true
		result.Message = "connection established"
	}
	return result, nil
}

// ProductOffers computes per-supplier priced offers for a product. Each
// active supplier's markup is applied to the wholesale price; offers are
// returned cheapest first.
func (s *SupplierService) ProductOffers(productID string) ([]models.SupplierOffer, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	suppliers, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load suppliers: %w", err)
	}

	wholesale := product.BasePrice * mockWholesaleShare
	offers := make([]models.SupplierOffer, 0, len(suppliers))
	for _, supplier := range suppliers {
		if !supplier.Active {
			continue
		}
		offers = append(offers, models.SupplierOffer{
			SupplierID:     supplier.ID,
			SupplierName:   supplier.Name,
			Brand:          product.Brand,
			PartNumber:     product.PartNumber,
			Description:    product.Description,
			WholesalePrice: wholesale,
			ClientPrice:    wholesale * (1 + supplier.MarkupPercent/100),
			StockQuantity:  product.StockQuantity,
			DeliveryDays:   supplier.DeliveryDays,
		})
	}

	sort.Slice(offers, func(i, j int) bool {
		if offers[i].ClientPrice != offers[j].ClientPrice {
			return offers[i].ClientPrice < offers[j].ClientPrice
		}
		return offers[i].DeliveryDays < offers[j].DeliveryDays
	})
	return offers, nil
}
