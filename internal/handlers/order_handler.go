package handlers

import (
	"log"
	"strings"

	"nexx/internal/middleware"
	"nexx/internal/models"
	"nexx/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders. Customers see their own
// orders; admins see and manage all of them.
type OrderHandler struct {
	service     *services.OrderService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, authService *services.AuthService) *OrderHandler {
	return &OrderHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orders := router.Group("/orders", middleware.AuthRequired(h.authService))
	orders.Get("/", h.HandleGetOrders)
	orders.Get("/:id", h.HandleGetOrderByID)
	orders.Post("/", h.HandleCreateOrder)
	orders.Patch("/:id/status", middleware.AdminOnly(), h.HandleUpdateOrderStatus)
}

// HandleGetOrders lists orders: all of them for admins, the caller's own
// otherwise.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)

	var (
		orders []models.Order
		err    error
	)
	if role == models.RoleAdmin {
		orders, err = h.service.GetAllOrders()
	} else {
		orders, err = h.service.GetOrdersForUser(middleware.UserID(c))
	}
	if err != nil {
		log.Printf("Error getting orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not retrieve orders",
		})
	}
	if orders == nil {
		orders = []models.Order{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    orders,
	})
}

// HandleGetOrderByID retrieves a single order. Customers can only see their
// own orders.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"))
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Order not found",
			})
		}
		log.Printf("Error getting order %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not retrieve order",
		})
	}

	role, _ := c.Locals("role").(string)
	if role != models.RoleAdmin && order.UserID != middleware.UserID(c) {
		// Do not leak the existence of other users' orders.
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Order not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    order,
	})
}

// HandleCreateOrder places an order from the caller's cart.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req models.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  fieldErrors(err),
		})
	}

	order, err := h.service.CreateOrder(middleware.UserID(c), req)
	if err != nil {
		if strings.Contains(err.Error(), "cart is empty") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Cart is empty",
			})
		}
		log.Printf("Error creating order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    order,
	})
}

// UpdateStatusRequest represents the request body for an order status
// change.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// HandleUpdateOrderStatus moves an order to a new status.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  fieldErrors(err),
		})
	}

	order, err := h.service.UpdateOrderStatus(c.Params("id"), req.Status)
	if err != nil {
		if strings.Contains(err.Error(), "invalid order status") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		}
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Order not found",
			})
		}
		log.Printf("Error updating order %s status: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not update order status",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    order,
	})
}
