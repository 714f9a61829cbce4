package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"nexx/internal/models"
	"nexx/internal/repositories"
)

// OrderEventPublisher publishes order lifecycle events to the message queue.
type OrderEventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// OrderService handles checkout and order management. Creating an order
// snapshots the cart, persists the order, clears the cart, then publishes an
// order.created event.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	publisher   OrderEventPublisher
	orderPrefix string
}

// NewOrderService creates a new OrderService. publisher may be nil, in which
// case events are skipped.
func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, publisher OrderEventPublisher, orderPrefix string) *OrderService {
	if orderPrefix == "" {
		orderPrefix = "NEXX"
	}
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		publisher:   publisher,
		orderPrefix: orderPrefix,
	}
}

// CreateOrder places an order from the user's current cart. The total is the
// sum of the snapshotted line prices; later catalog price changes never
// affect it.
func (s *OrderService) CreateOrder(userID string, req models.OrderRequest) (*models.Order, error) {
	cartItems, err := s.cartRepo.Items(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	var total float64
	items := make([]models.OrderItem, 0, len(cartItems))
	for _, line := range cartItems {
		items = append(items, models.OrderItem{
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			ProductPrice: line.ProductPrice,
			Quantity:     line.Quantity,
		})
		total += line.LineTotal()
	}

	order := &models.Order{
		OrderNumber:     fmt.Sprintf("%s-%d", s.orderPrefix, time.Now().UnixMilli()),
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
		PaymentMethod:   req.PaymentMethod,
		DeliveryMethod:  req.DeliveryMethod,
		DeliveryAddress: req.DeliveryAddress,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Notes:           req.Notes,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	// The order is already persisted at this point, so a failed cart clear
	// must not fail the checkout. The stale cart is logged and left for the
	// next mutation to overwrite.
	if err := s.cartRepo.Clear(userID); err != nil {
		log.Printf("Warning: order %s created but cart for user %s was not cleared: %v", order.ID, userID, err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"user_id":      order.UserID,
		"status":       order.Status,
		"total":        order.TotalAmount,
	})

	return order, nil
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// GetOrdersForUser retrieves the orders placed by a user.
func (s *OrderService) GetOrdersForUser(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}

// UpdateOrderStatus moves an order to a new status. Only the known statuses
// are accepted.
func (s *OrderService) UpdateOrderStatus(id string, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("invalid order status: %s", status)
	}

	order, err := s.orderRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publishEvent("order.status_updated", map[string]interface{}{
		"order_id": order.ID,
		"status":   order.Status,
	})

	return order, nil
}

func (s *OrderService) publishEvent(routingKey string, payload map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
