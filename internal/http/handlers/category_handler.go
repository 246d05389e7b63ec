package handlers

import (
	"github.com/gofiber/fiber/v2"

	"veltora/internal/domain"
	applog "veltora/internal/log"
	"veltora/internal/services"
	"veltora/internal/validate"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

// Home serves the landing page data: the taxonomy plus the featured and
// new-arrival rails.
func (h *CategoryHandler) Home(c *fiber.Ctx) error {
	limit := validate.Limit(c.Query("limit"), 20, 50)
	return c.JSON(fiber.Map{
		"categories":  domain.MainCategories,
		"featured":    h.Catalog.FeaturedProducts(c.Context(), limit),
		"newArrivals": h.Catalog.NewArrivals(c.Context(), limit),
	})
}

// List serves one category's products with optional sort and filters.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	catID, ok := validate.ID(c.Params("id"))
	if !ok || !domain.ValidCategory(catID) {
		applog.Security(c, "validation.fail", map[string]any{"field": "category", "value": c.Params("id")})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "category not found"})
	}
	cat, _ := domain.CategoryByID(catID)

	products := h.Catalog.Search(c.Context(), services.SearchQuery{
		Category:  catID,
		MinPrice:  validate.Price(c.Query("minPrice")),
		MaxPrice:  validate.Price(c.Query("maxPrice")),
		MinRating: validate.Rating(c.Query("minRating")),
		Sort:      validate.Sort(c.Query("sort")),
	})
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(fiber.Map{
		"category": cat,
		"products": products,
		"count":    len(products),
	})
}
