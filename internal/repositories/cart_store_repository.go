package repositories

import (
	"fmt"

	"nexx/internal/models"
	"nexx/internal/store"
)

const cartKey = "cart"

// StoreCartRepository keeps carts in the local persistent store as a map of
// user id to cart lines.
type StoreCartRepository struct {
	store *store.Store
}

// NewStoreCartRepository creates a new StoreCartRepository.
func NewStoreCartRepository(s *store.Store) *StoreCartRepository {
	return &StoreCartRepository{store: s}
}

func (r *StoreCartRepository) load() map[string][]models.CartItem {
	carts := make(map[string][]models.CartItem)
	r.store.Get(cartKey, &carts)
	return carts
}

func (r *StoreCartRepository) save(carts map[string][]models.CartItem) error {
	if !r.store.Set(cartKey, carts) {
		return fmt.Errorf("failed to persist cart collection")
	}
	return nil
}

// Items returns the user's cart lines in insertion order.
func (r *StoreCartRepository) Items(userID string) ([]models.CartItem, error) {
	return r.load()[userID], nil
}

// Replace overwrites the user's cart lines.
func (r *StoreCartRepository) Replace(userID string, items []models.CartItem) error {
	carts := r.load()
	carts[userID] = items
	return r.save(carts)
}

// Clear empties the user's cart.
func (r *StoreCartRepository) Clear(userID string) error {
	carts := r.load()
	carts[userID] = []models.CartItem{}
	return r.save(carts)
}
