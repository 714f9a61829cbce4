package models

import "time"

// Order statuses. Only admins move an order between them.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem is a priced line copied from the cart at checkout. It is a value
// snapshot, deliberately distinct from the live Product entity.
type OrderItem struct {
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
}

// Order represents a placed order.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderNumber     string      `json:"order_number" gorm:"uniqueIndex;type:varchar(64)"`
	UserID          string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Items           []OrderItem `json:"items" gorm:"serializer:json"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	PaymentMethod   string      `json:"payment_method,omitempty"`
	DeliveryMethod  string      `json:"delivery_method,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	CustomerName    string      `json:"customer_name,omitempty"`
	CustomerEmail   string      `json:"customer_email,omitempty"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	Notes           string      `json:"notes,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderRequest is the checkout payload. Items and totals come from the cart,
// never from the client.
type OrderRequest struct {
	CustomerName    string `json:"customer_name" validate:"required,max=200"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone" validate:"required,max=32"`
	DeliveryAddress string `json:"delivery_address" validate:"required,max=500"`
	DeliveryMethod  string `json:"delivery_method" validate:"omitempty,max=100"`
	PaymentMethod   string `json:"payment_method" validate:"omitempty,max=100"`
	Notes           string `json:"notes" validate:"omitempty,max=1000"`
}
