package handlers

import (
	"log"

	"nexx/internal/middleware"
	"nexx/internal/models"
	"nexx/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SupplierHandler handles the admin supplier CRUD panel and connection
// tests.
type SupplierHandler struct {
	service     *services.SupplierService
	authService *services.AuthService
	validate    *validator.Validate
}

// NewSupplierHandler creates a new SupplierHandler.
func NewSupplierHandler(service *services.SupplierService, authService *services.AuthService) *SupplierHandler {
	return &SupplierHandler{
		service:     service,
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the supplier routes with the Fiber app. All of
// them are admin-only.
func (h *SupplierHandler) RegisterRoutes(router fiber.Router) {
	suppliers := router.Group("/suppliers", middleware.AuthRequired(h.authService), middleware.AdminOnly())
	suppliers.Get("/", h.HandleGetSuppliers)
	suppliers.Get("/:id", h.HandleGetSupplierByID)
	suppliers.Post("/", h.HandleCreateSupplier)
	suppliers.Put("/:id", h.HandleUpdateSupplier)
	suppliers.Delete("/:id", h.HandleDeleteSupplier)
	suppliers.Get("/:id/test", h.HandleTestConnection)
}

// HandleGetSuppliers lists all suppliers.
func (h *SupplierHandler) HandleGetSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.service.GetAllSuppliers()
	if err != nil {
		log.Printf("Error getting suppliers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not retrieve suppliers",
		})
	}
	if suppliers == nil {
		suppliers = []models.Supplier{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    suppliers,
	})
}

// HandleGetSupplierByID retrieves a single supplier.
func (h *SupplierHandler) HandleGetSupplierByID(c *fiber.Ctx) error {
	supplier, err := h.service.GetSupplierByID(c.Params("id"))
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Supplier not found",
			})
		}
		log.Printf("Error getting supplier %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not retrieve supplier",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    supplier,
	})
}

// HandleCreateSupplier creates a new supplier.
func (h *SupplierHandler) HandleCreateSupplier(c *fiber.Ctx) error {
	var supplier models.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(supplier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  fieldErrors(err),
		})
	}

	if err := h.service.CreateSupplier(&supplier); err != nil {
		log.Printf("Error creating supplier: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not create supplier",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    supplier,
	})
}

// HandleUpdateSupplier applies a partial update to a supplier.
func (h *SupplierHandler) HandleUpdateSupplier(c *fiber.Ctx) error {
	var patch models.SupplierPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  fieldErrors(err),
		})
	}

	supplier, err := h.service.UpdateSupplier(c.Params("id"), patch)
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Supplier not found",
			})
		}
		log.Printf("Error updating supplier %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not update supplier",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    supplier,
	})
}

// HandleDeleteSupplier deletes a supplier. Deleting an unknown id succeeds.
func (h *SupplierHandler) HandleDeleteSupplier(c *fiber.Ctx) error {
	if err := h.service.DeleteSupplier(c.Params("id")); err != nil {
		log.Printf("Error deleting supplier %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not delete supplier",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Supplier deleted successfully",
	})
}

// HandleTestConnection runs the simulated supplier connection test.
func (h *SupplierHandler) HandleTestConnection(c *fiber.Ctx) error {
	result, err := h.service.TestConnection(c.Params("id"))
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"message": "Supplier not found",
			})
		}
		log.Printf("Error testing supplier %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Could not test supplier connection",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}
