package repositories

import (
	"fmt"

	"nexx/internal/models"

	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository. Cart lines
// live in their own table keyed by user id; Replace swaps the user's lines
// inside a transaction.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{db: db}
}

// Items returns the user's cart lines ordered by add time.
func (r *GORMCartRepository) Items(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Order("added_at").Find(&items, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return items, nil
}

// Replace overwrites the user's cart lines.
func (r *GORMCartRepository) Replace(userID string, items []models.CartItem) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].UserID = userID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace cart for user %s: %w", userID, err)
	}
	return nil
}

// Clear empties the user's cart.
func (r *GORMCartRepository) Clear(userID string) error {
	if err := r.db.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
