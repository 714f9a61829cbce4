package services

import (
	"time"

	"nexx/internal/models"
	"nexx/internal/repositories"
)

// Products with fewer units than this count as low stock on the dashboard.
const lowStockThreshold = 5

// AnalyticsService computes the admin dashboard figures from the live
// collections. Cancelled orders are excluded from revenue.
type AnalyticsService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, userRepo repositories.UserRepository) *AnalyticsService {
	return &AnalyticsService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// Dashboard builds the aggregate stats for the admin dashboard.
func (s *AnalyticsService) Dashboard() (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, err
	}
	stats.Orders.Total = len(orders)
	for _, order := range orders {
		if !order.CreatedAt.Before(startOfDay) {
			stats.Orders.Today++
		}
		switch order.Status {
		case models.OrderStatusPending:
			stats.Orders.Pending++
		case models.OrderStatusCompleted:
			stats.Orders.Completed++
		}
		if order.Status == models.OrderStatusCancelled {
			continue
		}
		stats.Revenue.Total += order.TotalAmount
		if !order.CreatedAt.Before(startOfDay) {
			stats.Revenue.Today += order.TotalAmount
		}
		if !order.CreatedAt.Before(startOfMonth) {
			stats.Revenue.ThisMonth += order.TotalAmount
		}
	}

	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, err
	}
	stats.Products.Total = len(products)
	for _, product := range products {
		switch {
		case product.StockQuantity == 0:
			stats.Products.OutOfStock++
		case product.StockQuantity < lowStockThreshold:
			stats.Products.LowStock++
		}
	}

	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	stats.Users.Total = len(users)
	for _, user := range users {
		if !user.CreatedAt.Before(startOfDay) {
			stats.Users.NewToday++
		}
	}

	return stats, nil
}
