package repositories

import "nexx/internal/models"

// CartRepository defines the interface for per-user cart persistence. Carts
// are keyed by user id; line merging and price snapshotting live in the cart
// service, the repository only stores the lines.
type CartRepository interface {
	Items(userID string) ([]models.CartItem, error)
	Replace(userID string, items []models.CartItem) error
	Clear(userID string) error
}
