package handlers

import (
	"log"

	"nexx/internal/middleware"
	"nexx/internal/models"
	"nexx/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles the singleton settings documents. Site and SEO
// settings are publicly readable so the storefront can render itself; SMS
// gateway settings are admin-only in both directions.
type SettingsHandler struct {
	service     *services.SettingsService
	authService *services.AuthService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service *services.SettingsService, authService *services.AuthService) *SettingsHandler {
	return &SettingsHandler{
		service:     service,
		authService: authService,
	}
}

// RegisterRoutes registers the settings routes with the Fiber app.
func (h *SettingsHandler) RegisterRoutes(router fiber.Router) {
	settings := router.Group("/settings")
	settings.Get("/site", h.HandleGetSiteSettings)
	settings.Get("/seo", h.HandleGetSEOSettings)

	admin := settings.Group("", middleware.AuthRequired(h.authService), middleware.AdminOnly())
	admin.Put("/site", h.HandleUpdateSiteSettings)
	admin.Put("/seo", h.HandleUpdateSEOSettings)
	admin.Get("/sms", h.HandleGetSMSSettings)
	admin.Put("/sms", h.HandleUpdateSMSSettings)
}

// HandleGetSiteSettings returns the site settings.
func (h *SettingsHandler) HandleGetSiteSettings(c *fiber.Ctx) error {
	settings, err := h.service.SiteSettings()
	if err != nil {
		log.Printf("Error getting site settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not retrieve site settings",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    settings,
	})
}

// HandleUpdateSiteSettings replaces the site settings.
func (h *SettingsHandler) HandleUpdateSiteSettings(c *fiber.Ctx) error {
	var settings models.SiteSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.service.UpdateSiteSettings(&settings); err != nil {
		log.Printf("Error updating site settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not update site settings",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    settings,
	})
}

// HandleGetSEOSettings returns the SEO settings.
func (h *SettingsHandler) HandleGetSEOSettings(c *fiber.Ctx) error {
	settings, err := h.service.SEOSettings()
	if err != nil {
		log.Printf("Error getting SEO settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not retrieve SEO settings",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    settings,
	})
}

// HandleUpdateSEOSettings replaces the SEO settings.
func (h *SettingsHandler) HandleUpdateSEOSettings(c *fiber.Ctx) error {
	var settings models.SEOSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.service.UpdateSEOSettings(&settings); err != nil {
		log.Printf("Error updating SEO settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not update SEO settings",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    settings,
	})
}

// HandleGetSMSSettings returns the SMS gateway settings with credentials
// redacted.
func (h *SettingsHandler) HandleGetSMSSettings(c *fiber.Ctx) error {
	settings, err := h.service.SMSSettings()
	if err != nil {
		log.Printf("Error getting SMS settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not retrieve SMS settings",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    settings.Sanitized(),
	})
}

// HandleUpdateSMSSettings replaces the SMS gateway settings.
func (h *SettingsHandler) HandleUpdateSMSSettings(c *fiber.Ctx) error {
	var settings models.SMSSettings
	if err := c.BodyParser(&settings); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.service.UpdateSMSSettings(&settings); err != nil {
		log.Printf("Error updating SMS settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not update SMS settings",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    settings.Sanitized(),
	})
}
