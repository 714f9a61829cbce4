package repositories

import "nexx/internal/models"

// OrderRepository defines the interface for order data access. Orders are
// append-only apart from status changes.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status string) (*models.Order, error)
}
