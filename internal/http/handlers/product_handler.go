package handlers

import (
	"github.com/gofiber/fiber/v2"

	"veltora/internal/images"
	applog "veltora/internal/log"
	"veltora/internal/services"
	"veltora/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	Store   *services.CartStore
}

// Detail serves one product with render-ready imagery. A not-found id is
// a navigable 404, not a server error.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	p, found := h.Catalog.ProductByID(c.Context(), id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(fiber.Map{
		"product":        p,
		"image":          images.ProductImage(p, 0),
		"resolvedImages": images.ProductImages(p),
		"inWishlist":     h.Store.IsInWishlist(p.ID),
	})
}
