package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "veltora/internal/log"
	"veltora/internal/services"
	"veltora/internal/validate"
)

type WishlistHandler struct {
	Store   *services.CartStore
	Catalog *services.CatalogService
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items": h.Store.Wishlist(),
		"count": h.Store.WishlistCount(),
	})
}

// Toggle flips wishlist membership for a catalog product: present
// removes, absent appends.
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	p, found := h.Catalog.ProductByID(c.Context(), pid)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	h.Store.ToggleWishlist(p)
	saved := h.Store.IsInWishlist(pid)
	applog.Audit(c, "wishlist.toggle", map[string]any{"product": pid, "saved": saved})
	return c.JSON(fiber.Map{"saved": saved, "count": h.Store.WishlistCount()})
}
