package services_test

import (
	"fmt"
	"testing"

	"nexx/internal/models"
	"nexx/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySlug(slug string) (*models.Product, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(id string, patch models.ProductPatch) (*models.Product, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Hydraulic Pump", PartNumber: "20/925592", Brand: "JCB", Category: "Hydraulics", BasePrice: 1200, StockQuantity: 4},
		{ID: "2", Name: "Oil Filter", PartNumber: "320/04133A", Brand: "JCB", Category: "Filters", BasePrice: 18.5, StockQuantity: 120},
		{ID: "3", Name: "Brake Pad Set", PartNumber: "BP-5521", Brand: "Bosch", Category: "Brakes", BasePrice: 55, StockQuantity: 30},
	}
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := catalogFixture()
	mockRepo.On("GetAll").Return(expected, nil).Once()

	products, err := service.GetAllProducts(models.ProductFilter{})

	assert.NoError(t, err)
	assert.Len(t, products, 3)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetAllProducts_FilterByBrand(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetAll").Return(catalogFixture(), nil).Once()

	// Brand matching is case-insensitive.
	products, err := service.GetAllProducts(models.ProductFilter{Brand: "jcb"})

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "JCB", p.Brand)
	}
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetAllProducts_FilterBySearch(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetAll").Return(catalogFixture(), nil).Once()

	// Search spans name, description and part number.
	products, err := service.GetAllProducts(models.ProductFilter{Search: "bp-5521"})

	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "3", products[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetAllProducts_CombinedFilterNoMatch(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("GetAll").Return(catalogFixture(), nil).Once()

	products, err := service.GetAllProducts(models.ProductFilter{Brand: "Bosch", Category: "Filters"})

	assert.NoError(t, err)
	assert.Empty(t, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_DerivesSlugAndStock(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	product := &models.Product{
		Name:          "JCB 3CX Hydraulic Pump",
		PartNumber:    "20/925592",
		Brand:         "JCB",
		Category:      "Hydraulics",
		BasePrice:     1200,
		StockQuantity: 4,
	}
	mockRepo.On("Create", product).Return(nil).Once()

	err := service.CreateProduct(product)

	assert.NoError(t, err)
	assert.Equal(t, "jcb-3cx-hydraulic-pump", product.Slug)
	assert.True(t, product.InStock)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_KeepsExplicitSlug(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	product := &models.Product{Name: "Oil Filter", Slug: "custom-slug", BasePrice: 18.5}
	mockRepo.On("Create", product).Return(nil).Once()

	err := service.CreateProduct(product)

	assert.NoError(t, err)
	assert.Equal(t, "custom-slug", product.Slug)
	assert.False(t, product.InStock)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	patch := models.ProductPatch{}
	mockRepo.On("Update", "99", patch).Return(nil, fmt.Errorf("product with ID 99 not found")).Once()

	product, err := service.UpdateProduct("99", patch)

	assert.Error(t, err)
	assert.Nil(t, product)
	assert.Contains(t, err.Error(), "not found")
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Delete", "1").Return(nil).Once()

	err := service.DeleteProduct("1")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"JCB 3CX Hydraulic Pump":  "jcb-3cx-hydraulic-pump",
		"Oil Filter (320/04133A)": "oil-filter-320-04133a",
		"  Brake   Pads  ":        "brake-pads",
		"Simple":                  "simple",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, services.Slugify(input), "input: %q", input)
	}
}
