package repositories_test

import (
	"testing"

	"nexx/internal/models"
	"nexx/internal/repositories"
	"nexx/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRepo(t *testing.T) (*repositories.StoreProductRepository, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := store.New(dir, "test")
	require.NoError(t, err)
	return repositories.NewStoreProductRepository(s), dir
}

func pumpFixture() *models.Product {
	return &models.Product{
		Name:          "Hydraulic Pump",
		PartNumber:    "20/925592",
		Brand:         "JCB",
		Category:      "Hydraulics",
		BasePrice:     1200,
		Slug:          "hydraulic-pump",
		StockQuantity: 4,
	}
}

func TestStoreProductRepository_CreateAndGetByID(t *testing.T) {
	repo, _ := newProductRepo(t)

	product := pumpFixture()
	require.NoError(t, repo.Create(product))
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())

	found, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)
	assert.Equal(t, "Hydraulic Pump", found.Name)
	assert.Equal(t, 1200.0, found.BasePrice)
}

func TestStoreProductRepository_GetByID_NotFound(t *testing.T) {
	repo, _ := newProductRepo(t)

	found, err := repo.GetByID("missing")

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.Contains(t, err.Error(), "not found")
}

func TestStoreProductRepository_GetBySlug(t *testing.T) {
	repo, _ := newProductRepo(t)

	product := pumpFixture()
	require.NoError(t, repo.Create(product))

	found, err := repo.GetBySlug("hydraulic-pump")
	assert.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)

	_, err = repo.GetBySlug("no-such-slug")
	assert.Error(t, err)
}

func TestStoreProductRepository_Update(t *testing.T) {
	repo, _ := newProductRepo(t)

	product := pumpFixture()
	require.NoError(t, repo.Create(product))

	newPrice := 1350.0
	newStock := 0
	updated, err := repo.Update(product.ID, models.ProductPatch{
		BasePrice:     &newPrice,
		StockQuantity: &newStock,
	})

	assert.NoError(t, err)
	assert.Equal(t, 1350.0, updated.BasePrice)
	assert.Equal(t, 0, updated.StockQuantity)
	// Unpatched fields survive.
	assert.Equal(t, "Hydraulic Pump", updated.Name)

	reread, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1350.0, reread.BasePrice)
}

func TestStoreProductRepository_Update_NotFound(t *testing.T) {
	repo, _ := newProductRepo(t)

	updated, err := repo.Update("missing", models.ProductPatch{})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.Contains(t, err.Error(), "not found")
}

func TestStoreProductRepository_Delete_Idempotent(t *testing.T) {
	repo, _ := newProductRepo(t)

	product := pumpFixture()
	require.NoError(t, repo.Create(product))

	assert.NoError(t, repo.Delete(product.ID))
	_, err := repo.GetByID(product.ID)
	assert.Error(t, err)

	// Deleting again, or deleting an id that never existed, still succeeds.
	assert.NoError(t, repo.Delete(product.ID))
	assert.NoError(t, repo.Delete("never-existed"))
}

func TestStoreProductRepository_SurvivesReopen(t *testing.T) {
	repo, dir := newProductRepo(t)

	product := pumpFixture()
	require.NoError(t, repo.Create(product))

	reopened, err := store.New(dir, "test")
	require.NoError(t, err)
	repo2 := repositories.NewStoreProductRepository(reopened)

	found, err := repo2.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Hydraulic Pump", found.Name)
}
