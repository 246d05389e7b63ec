package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "veltora/internal/log"
	"veltora/internal/services"
)

// CatalogHandler exposes catalog maintenance: forced refresh and cache
// invalidation.
type CatalogHandler struct {
	Catalog *services.CatalogService
}

func (h *CatalogHandler) Refresh(c *fiber.Ctx) error {
	products := h.Catalog.AllProducts(c.Context(), true)
	applog.Audit(c, "catalog.refresh.forced", map[string]any{"count": len(products)})
	return c.JSON(fiber.Map{"count": len(products)})
}

func (h *CatalogHandler) ClearCache(c *fiber.Ctx) error {
	h.Catalog.ClearProductCache()
	applog.Audit(c, "catalog.cache.clear", nil)
	return c.JSON(fiber.Map{"ok": true})
}
