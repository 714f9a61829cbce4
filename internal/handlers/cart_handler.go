package handlers

import (
	"log"

	"nexx/internal/middleware"
	"nexx/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the authenticated user's cart.
type CartHandler struct {
	service     *services.CartService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService, authService *services.AuthService) *CartHandler {
	return &CartHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app. All cart
// routes require authentication; the cart is keyed by the token's user id.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cart := router.Group("/cart", middleware.AuthRequired(h.authService))
	cart.Get("/", h.HandleGetCart)
	cart.Post("/items", h.HandleAddItem)
	cart.Put("/items/:id", h.HandleUpdateItem)
	cart.Delete("/items/:id", h.HandleRemoveItem)
	cart.Delete("/", h.HandleClearCart)
}

// HandleGetCart returns the user's cart summary.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	summary, err := h.service.Get(middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not retrieve cart",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}

// AddItemRequest represents the request body for adding a product to the
// cart.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

// HandleAddItem adds a product to the cart, merging with an existing line
// for the same product.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
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

	summary, err := h.service.AddItem(middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Product not found",
			})
		}
		log.Printf("Error adding item to cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not add item to cart",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}

// UpdateItemRequest represents the request body for changing a cart line's
// quantity. Zero removes the line.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// HandleUpdateItem sets a cart line's quantity.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	var req UpdateItemRequest
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

	summary, err := h.service.UpdateItem(middleware.UserID(c), c.Params("id"), req.Quantity)
	if err != nil {
		log.Printf("Error updating cart item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not update cart item",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}

// HandleRemoveItem drops a line from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	summary, err := h.service.RemoveItem(middleware.UserID(c), c.Params("id"))
	if err != nil {
		log.Printf("Error removing cart item: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not remove cart item",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}

// HandleClearCart empties the user's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	summary, err := h.service.Clear(middleware.UserID(c))
	if err != nil {
		log.Printf("Error clearing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not clear cart",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    summary,
	})
}
