package handlers

import (
	"log"

	"nexx/internal/middleware"
	"nexx/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler serves the admin dashboard aggregates.
type AnalyticsHandler struct {
	service     *services.AnalyticsService
	authService *services.AuthService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(service *services.AnalyticsService, authService *services.AuthService) *AnalyticsHandler {
	return &AnalyticsHandler{
		service:     service,
		authService: authService,
	}
}

// RegisterRoutes registers the analytics routes with the Fiber app.
func (h *AnalyticsHandler) RegisterRoutes(router fiber.Router) {
	analytics := router.Group("/analytics", middleware.AuthRequired(h.authService), middleware.AdminOnly())
	analytics.Get("/dashboard", h.HandleDashboard)
}

// HandleDashboard returns order, revenue, product and user figures for the
// admin dashboard.
func (h *AnalyticsHandler) HandleDashboard(c *fiber.Ctx) error {
	stats, err := h.service.Dashboard()
	if err != nil {
		log.Printf("Error building dashboard stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not build dashboard",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
