package repositories

import (
	"fmt"
	"time"

	"nexx/internal/models"
	"nexx/internal/store"

	"github.com/google/uuid"
)

const ordersKey = "orders"

// StoreOrderRepository keeps orders in the local persistent store.
type StoreOrderRepository struct {
	store *store.Store
}

// NewStoreOrderRepository creates a new StoreOrderRepository.
func NewStoreOrderRepository(s *store.Store) *StoreOrderRepository {
	return &StoreOrderRepository{store: s}
}

func (r *StoreOrderRepository) load() []models.Order {
	var orders []models.Order
	r.store.Get(ordersKey, &orders)
	return orders
}

// GetAll returns all orders.
func (r *StoreOrderRepository) GetAll() ([]models.Order, error) {
	return r.load(), nil
}

// GetByID returns an order by its ID.
func (r *StoreOrderRepository) GetByID(id string) (*models.Order, error) {
	for _, o := range r.load() {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, fmt.Errorf("order with ID %s not found", id)
}

// GetByUser returns the orders placed by a user.
func (r *StoreOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	for _, o := range r.load() {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// Create assigns an ID and creation timestamp and appends the order.
func (r *StoreOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	orders := append(r.load(), *order)
	if !r.store.Set(ordersKey, orders) {
		return fmt.Errorf("failed to persist orders collection")
	}
	return nil
}

// UpdateStatus sets the status of an order and stamps the update time.
func (r *StoreOrderRepository) UpdateStatus(id string, status string) (*models.Order, error) {
	orders := r.load()
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			orders[i].UpdatedAt = time.Now()
			if !r.store.Set(ordersKey, orders) {
				return nil, fmt.Errorf("failed to persist orders collection")
			}
			updated := orders[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("order with ID %s not found for status update", id)
}
