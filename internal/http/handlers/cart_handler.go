package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "veltora/internal/log"
	"veltora/internal/services"
	"veltora/internal/validate"
)

type CartHandler struct {
	Store   *services.CartStore
	Catalog *services.CatalogService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items": h.Store.Items(),
		"count": h.Store.CartCount(),
		"total": h.Store.CartTotal(),
	})
}

// Add puts a catalog product in the cart. Quantity beyond the first unit
// comes from repeating the add, matching the storefront's plus button.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	p, found := h.Catalog.ProductByID(c.Context(), pid)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	qty := validate.Qty(c.FormValue("qty"))
	for i := 0; i < qty; i++ {
		h.Store.AddToCart(p)
	}
	applog.Audit(c, "cart.add", map[string]any{"product": pid, "qty": qty})
	return c.JSON(fiber.Map{"count": h.Store.CartCount(), "total": h.Store.CartTotal()})
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	qty, err := strconv.Atoi(strings.TrimSpace(c.FormValue("qty")))
	if err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "qty", "value": c.FormValue("qty")})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid qty"})
	}
	if qty > 50 {
		qty = 50
	}
	// Zero and below removes the line item.
	h.Store.UpdateQuantity(pid, qty)
	applog.Audit(c, "cart.update", map[string]any{"product": pid, "qty": qty})
	return c.JSON(fiber.Map{"count": h.Store.CartCount(), "total": h.Store.CartTotal()})
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	pid, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	h.Store.RemoveFromCart(pid)
	applog.Audit(c, "cart.remove", map[string]any{"product": pid})
	return c.JSON(fiber.Map{"count": h.Store.CartCount(), "total": h.Store.CartTotal()})
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Store.ClearCart()
	applog.Audit(c, "cart.clear", nil)
	return c.JSON(fiber.Map{"count": 0, "total": 0})
}
