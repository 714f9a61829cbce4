package services_test

import (
	"fmt"
	"testing"

	"nexx/internal/models"
	"nexx/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSupplierRepository is a mock implementation of repositories.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) GetAll() ([]models.Supplier, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetByID(id string) (*models.Supplier, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Create(supplier *models.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Update(id string, patch models.SupplierPatch) (*models.Supplier, error) {
	args := m.Called(id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestSupplierService_ProductOffers(t *testing.T) {
	mockSuppliers := new(MockSupplierRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewSupplierService(mockSuppliers, mockProducts, 0)

	product := &models.Product{
		ID:            "p1",
		Name:          "Hydraulic Pump",
		PartNumber:    "20/925592",
		Brand:         "JCB",
		BasePrice:     1000,
		StockQuantity: 4,
	}
	suppliers := []models.Supplier{
		{ID: "s1", Name: "PartsExpress", MarkupPercent: 25, DeliveryDays: 2, Active: true},
		{ID: "s2", Name: "AutoHub", MarkupPercent: 10, DeliveryDays: 5, Active: true},
		{ID: "s3", Name: "Dormant Co", MarkupPercent: 1, DeliveryDays: 1, Active: false},
	}
	mockProducts.On("GetByID", "p1").Return(product, nil).Once()
	mockSuppliers.On("GetAll").Return(suppliers, nil).Once()

	offers, err := service.ProductOffers("p1")

	assert.NoError(t, err)
	// Inactive suppliers never price offers.
	require.Len(t, offers, 2)

	// Wholesale is 80% of the base price; the markup goes on top, and the
	// cheapest offer comes first.
	assert.Equal(t, "s2", offers[0].SupplierID)
	assert.Equal(t, 800.0, offers[0].WholesalePrice)
	assert.InDelta(t, 880.0, offers[0].ClientPrice, 0.001)
	assert.Equal(t, "s1", offers[1].SupplierID)
	assert.InDelta(t, 1000.0, offers[1].ClientPrice, 0.001)

	assert.Equal(t, "JCB", offers[0].Brand)
	assert.Equal(t, "20/925592", offers[0].PartNumber)

	mockProducts.AssertExpectations(t)
	mockSuppliers.AssertExpectations(t)
}

func TestSupplierService_ProductOffers_TiesBreakOnDelivery(t *testing.T) {
	mockSuppliers := new(MockSupplierRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewSupplierService(mockSuppliers, mockProducts, 0)

	product := &models.Product{ID: "p1", BasePrice: 100}
	suppliers := []models.Supplier{
		{ID: "slow", MarkupPercent: 20, DeliveryDays: 7, Active: true},
		{ID: "fast", MarkupPercent: 20, DeliveryDays: 1, Active: true},
	}
	mockProducts.On("GetByID", "p1").Return(product, nil).Once()
	mockSuppliers.On("GetAll").Return(suppliers, nil).Once()

	offers, err := service.ProductOffers("p1")

	assert.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "fast", offers[0].SupplierID)
	assert.Equal(t, "slow", offers[1].SupplierID)
}

func TestSupplierService_ProductOffers_ProductNotFound(t *testing.T) {
	mockSuppliers := new(MockSupplierRepository)
	mockProducts := new(MockProductRepository)
	service := services.NewSupplierService(mockSuppliers, mockProducts, 0)

	mockProducts.On("GetByID", "99").Return(nil, fmt.Errorf("product with ID 99 not found")).Once()

	offers, err := service.ProductOffers("99")

	assert.Error(t, err)
	assert.Nil(t, offers)
	assert.Contains(t, err.Error(), "not found")
}

func TestSupplierService_TestConnection(t *testing.T) {
	cases := []struct {
		name     string
		supplier models.Supplier
		ok       bool
		message  string
	}{
		{
			name:     "reachable",
			supplier: models.Supplier{ID: "s1", APIURL: "https://api.example.com", Active: true},
			ok:       true,
			message:  "connection established",
		},
		{
			name:     "disabled",
			supplier: models.Supplier{ID: "s2", APIURL: "https://api.example.com", Active: false},
			ok:       false,
			message:  "supplier is disabled",
		},
		{
			name:     "no url",
			supplier: models.Supplier{ID: "s3", Active: true},
			ok:       false,
			message:  "no API URL configured",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockSuppliers := new(MockSupplierRepository)
			service := services.NewSupplierService(mockSuppliers, new(MockProductRepository), 0)

			supplier := tc.supplier
			mockSuppliers.On("GetByID", supplier.ID).Return(&supplier, nil).Once()

			result, err := service.TestConnection(supplier.ID)

			assert.NoError(t, err)
			assert.Equal(t, supplier.ID, result.SupplierID)
			assert.Equal(t, tc.ok, result.OK)
			assert.Equal(t, tc.message, result.Message)
			mockSuppliers.AssertExpectations(t)
		})
	}
}

func TestSupplierService_TestConnection_NotFound(t *testing.T) {
	mockSuppliers := new(MockSupplierRepository)
	service := services.NewSupplierService(mockSuppliers, new(MockProductRepository), 0)

	mockSuppliers.On("GetByID", "99").Return(nil, fmt.Errorf("supplier with ID 99 not found")).Once()

	result, err := service.TestConnection("99")

	assert.Error(t, err)
	assert.Nil(t, result)
}
