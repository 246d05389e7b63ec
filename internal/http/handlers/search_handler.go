package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"veltora/internal/domain"
	applog "veltora/internal/log"
	"veltora/internal/services"
	"veltora/internal/validate"
)

type SearchHandler struct {
	Catalog *services.CatalogService
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	rawQ := c.Query("q")
	if strings.TrimSpace(rawQ) == "" {
		// Initial page load: empty results, no error.
		return c.JSON(fiber.Map{"q": "", "products": []domain.Product{}, "count": 0})
	}
	q, ok := validate.Q(rawQ)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "q", "value": rawQ})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid keyword (letters/numbers only)"})
	}

	category := strings.TrimSpace(c.Query("category"))
	if category != "" && !domain.ValidCategory(category) {
		applog.Security(c, "validation.fail", map[string]any{"field": "category"})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid category"})
	}

	products := h.Catalog.Search(c.Context(), services.SearchQuery{
		Q:         q,
		Category:  category,
		MinPrice:  validate.Price(c.Query("minPrice")),
		MaxPrice:  validate.Price(c.Query("maxPrice")),
		MinRating: validate.Rating(c.Query("minRating")),
		Sort:      validate.Sort(c.Query("sort")),
	})
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(fiber.Map{"q": q, "products": products, "count": len(products)})
}
