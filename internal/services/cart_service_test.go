package services_test

import (
	"testing"

	"nexx/internal/models"
	"nexx/internal/repositories"
	"nexx/internal/services"
	"nexx/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCartFixture wires a cart service against the document store in a temp
// directory and seeds one product.
func newCartFixture(t *testing.T) (*services.CartService, repositories.ProductRepository, *models.Product) {
	t.Helper()

	s, err := store.New(t.TempDir(), "test")
	require.NoError(t, err)

	productRepo := repositories.NewStoreProductRepository(s)
	cartRepo := repositories.NewStoreCartRepository(s)

	product := &models.Product{
		Name:          "Hydraulic Pump",
		PartNumber:    "20/925592",
		Brand:         "JCB",
		Category:      "Hydraulics",
		BasePrice:     1200,
		StockQuantity: 4,
	}
	require.NoError(t, productRepo.Create(product))

	return services.NewCartService(cartRepo, productRepo), productRepo, product
}

func TestCartService_AddItem_SnapshotsProduct(t *testing.T) {
	service, _, product := newCartFixture(t)

	summary, err := service.AddItem("user-1", product.ID, 1)

	assert.NoError(t, err)
	require.Len(t, summary.Items, 1)
	line := summary.Items[0]
	assert.NotEmpty(t, line.ID)
	assert.Equal(t, product.ID, line.ProductID)
	assert.Equal(t, "Hydraulic Pump", line.ProductName)
	assert.Equal(t, 1200.0, line.ProductPrice)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 1200.0, summary.Total)
	assert.Equal(t, 1, summary.ItemCount)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	service, _, product := newCartFixture(t)

	_, err := service.AddItem("user-1", product.ID, 1)
	require.NoError(t, err)
	summary, err := service.AddItem("user-1", product.ID, 1)

	assert.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.Items[0].Quantity)
	assert.Equal(t, 2400.0, summary.Total)
	assert.Equal(t, 2, summary.ItemCount)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	service, _, _ := newCartFixture(t)

	_, err := service.AddItem("user-1", "no-such-product", 1)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCartService_AddItem_PriceChangesDoNotAffectSnapshot(t *testing.T) {
	service, productRepo, product := newCartFixture(t)

	_, err := service.AddItem("user-1", product.ID, 1)
	require.NoError(t, err)

	newPrice := 9999.0
	_, err = productRepo.Update(product.ID, models.ProductPatch{BasePrice: &newPrice})
	require.NoError(t, err)

	summary, err := service.Get("user-1")
	assert.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 1200.0, summary.Items[0].ProductPrice)
	assert.Equal(t, 1200.0, summary.Total)
}

func TestCartService_UpdateItem_SetsQuantity(t *testing.T) {
	service, _, product := newCartFixture(t)

	added, err := service.AddItem("user-1", product.ID, 1)
	require.NoError(t, err)

	summary, err := service.UpdateItem("user-1", added.Items[0].ID, 5)

	assert.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 5, summary.Items[0].Quantity)
	assert.Equal(t, 6000.0, summary.Total)
}

func TestCartService_UpdateItem_ZeroRemovesLine(t *testing.T) {
	service, _, product := newCartFixture(t)

	added, err := service.AddItem("user-1", product.ID, 2)
	require.NoError(t, err)

	summary, err := service.UpdateItem("user-1", added.Items[0].ID, 0)

	assert.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0.0, summary.Total)
}

func TestCartService_UpdateItem_UnknownIDIsNoOp(t *testing.T) {
	service, _, product := newCartFixture(t)

	_, err := service.AddItem("user-1", product.ID, 2)
	require.NoError(t, err)

	summary, err := service.UpdateItem("user-1", "no-such-line", 7)

	assert.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.Items[0].Quantity)
}

func TestCartService_RemoveItem_Idempotent(t *testing.T) {
	service, _, product := newCartFixture(t)

	added, err := service.AddItem("user-1", product.ID, 1)
	require.NoError(t, err)

	summary, err := service.RemoveItem("user-1", added.Items[0].ID)
	assert.NoError(t, err)
	assert.Empty(t, summary.Items)

	// Removing the same line again is still a success.
	summary, err = service.RemoveItem("user-1", added.Items[0].ID)
	assert.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestCartService_Clear(t *testing.T) {
	service, _, product := newCartFixture(t)

	_, err := service.AddItem("user-1", product.ID, 3)
	require.NoError(t, err)

	summary, err := service.Clear("user-1")
	assert.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0, summary.ItemCount)

	summary, err = service.Get("user-1")
	assert.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestCartService_CartsAreSeparatedByUser(t *testing.T) {
	service, _, product := newCartFixture(t)

	_, err := service.AddItem("user-1", product.ID, 1)
	require.NoError(t, err)

	summary, err := service.Get("user-2")
	assert.NoError(t, err)
	assert.Empty(t, summary.Items)
}
