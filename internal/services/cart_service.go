package services

import (
	"fmt"
	"time"

	"nexx/internal/models"
	"nexx/internal/repositories"

	"github.com/google/uuid"
)

// CartService handles per-user cart logic. Product name and price are
// snapshotted into the line at add time and never re-synced with the
// catalog.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{cartRepo: cartRepo, productRepo: productRepo}
}

// Get returns the user's cart summary.
func (s *CartService) Get(userID string) (models.CartSummary, error) {
	items, err := s.cartRepo.Items(userID)
	if err != nil {
		return models.CartSummary{}, err
	}
	return models.Summarize(items), nil
}

// AddItem adds a product to the cart. A second add of the same product
// increments the existing line's quantity instead of creating a new line.
func (s *CartService) AddItem(userID, productID string, quantity int) (models.CartSummary, error) {
	if quantity < 1 {
		quantity = 1
	}

	items, err := s.cartRepo.Items(userID)
	if err != nil {
		return models.CartSummary{}, err
	}

	merged := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}

	if !merged {
		product, err := s.productRepo.GetByID(productID)
		if err != nil {
			return models.CartSummary{}, fmt.Errorf("cannot add product to cart: %w", err)
		}
		items = append(items, models.CartItem{
			ID:           uuid.New().String(),
			UserID:       userID,
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductPrice: product.BasePrice,
			ProductImage: product.ImageURL,
			Quantity:     quantity,
			AddedAt:      time.Now(),
		})
	}

	if err := s.cartRepo.Replace(userID, items); err != nil {
		return models.CartSummary{}, err
	}
	return models.Summarize(items), nil
}

// UpdateItem sets a line's quantity. A quantity of zero or less removes the
// line. An unknown item id is a no-op returning the cart unchanged.
func (s *CartService) UpdateItem(userID, itemID string, quantity int) (models.CartSummary, error) {
	items, err := s.cartRepo.Items(userID)
	if err != nil {
		return models.CartSummary{}, err
	}

	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		if quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		} else {
			items[i].Quantity = quantity
		}
		if err := s.cartRepo.Replace(userID, items); err != nil {
			return models.CartSummary{}, err
		}
		break
	}
	return models.Summarize(items), nil
}

// RemoveItem drops a line from the cart. Unknown ids are a no-op.
func (s *CartService) RemoveItem(userID, itemID string) (models.CartSummary, error) {
	items, err := s.cartRepo.Items(userID)
	if err != nil {
		return models.CartSummary{}, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	if err := s.cartRepo.Replace(userID, kept); err != nil {
		return models.CartSummary{}, err
	}
	return models.Summarize(kept), nil
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID string) (models.CartSummary, error) {
	if err := s.cartRepo.Clear(userID); err != nil {
		return models.CartSummary{}, err
	}
	return models.Summarize(nil), nil
}
