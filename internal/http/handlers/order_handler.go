package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"veltora/internal/domain"
	applog "veltora/internal/log"
	"veltora/internal/services"
	"veltora/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
	Store *services.CartStore
}

// Checkout serves the order summary for the checkout page.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	subtotal := h.Store.CartTotal()
	shipping := services.ShippingCost(subtotal)
	return c.JSON(fiber.Map{
		"items":    h.Store.Items(),
		"subtotal": subtotal,
		"shipping": shipping,
		"total":    float64(subtotal) + shipping,
	})
}

// Place runs the simulated order placement.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var form domain.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "body"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request"})
	}

	placed, err := h.Order.Place(form)
	if err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			fields := make([]string, 0, len(verr))
			for _, fe := range verr {
				fields = append(fields, fe.Field())
			}
			applog.Security(c, "validation.fail", map[string]any{"fields": fields})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid checkout details", "fields": fields})
		}
		if errors.Is(err, services.ErrCartEmpty) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cart empty"})
		}
		applog.Error(c, "order.place.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not place order"})
	}

	applog.Audit(c, "order.place", map[string]any{"order": placed.ID, "total": placed.Total})
	return c.Status(fiber.StatusCreated).JSON(placed)
}

// View serves one placed order.
func (h *OrderHandler) View(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	order, items, err := h.Order.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "order not found"})
	}
	return c.JSON(fiber.Map{"order": order, "items": items})
}
