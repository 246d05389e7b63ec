package services

import (
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"veltora/internal/domain"
	"veltora/internal/images"
)

// ExternalIDPrefix namespaces ids of externally sourced products so they
// can never collide with curated ids.
const ExternalIDPrefix = "dummy-"

const defaultSeller = "Veltora Official"

// categoryMapping translates the external source's category strings into
// the storefront taxonomy.
var categoryMapping = map[string]string{
	"smartphones":      "phones-tablets",
	"laptops":          "computing",
	"fragrances":       "health-beauty",
	"skincare":         "health-beauty",
	"groceries":        "supermarket",
	"home-decoration":  "home-office",
	"furniture":        "home-office",
	"tops":             "fashion",
	"womens-dresses":   "fashion",
	"womens-shoes":     "fashion",
	"mens-shirts":      "fashion",
	"mens-shoes":       "fashion",
	"mens-watches":     "fashion",
	"womens-watches":   "fashion",
	"womens-bags":      "fashion",
	"womens-jewellery": "fashion",
	"sunglasses":       "fashion",
	"automotive":       "electronics",
	"motorcycle":       "electronics",
	"lighting":         "home-office",
}

var subcategoryMapping = map[string]string{
	"smartphones":      "smartphones",
	"laptops":          "laptops",
	"fragrances":       "personal-care",
	"skincare":         "skincare",
	"groceries":        "groceries",
	"home-decoration":  "decor",
	"furniture":        "furniture",
	"tops":             "mens-fashion",
	"womens-dresses":   "womens-fashion",
	"womens-shoes":     "womens-fashion",
	"mens-shirts":      "mens-fashion",
	"mens-shoes":       "mens-fashion",
	"mens-watches":     "mens-fashion",
	"womens-watches":   "womens-fashion",
	"womens-bags":      "womens-fashion",
	"womens-jewellery": "womens-fashion",
	"sunglasses":       "mens-fashion",
	"automotive":       "televisions",
	"motorcycle":       "audio",
	"lighting":         "decor",
}

// originalPriceMarkup synthesizes a "was" price from the source price.
const originalPriceMarkup = 1.2

// freeShippingThreshold and flatShippingCost govern the shipping block.
const (
	freeShippingThreshold = 99.0
	flatShippingCost      = 5.99
	shippingEstimate      = "3-5 days"
)

// discountPercent derives the integer discount from a price pair,
// clamped so it can never go negative.
func discountPercent(price, originalPrice float64) int {
	if originalPrice <= 0 {
		return 0
	}
	d := int(math.Round((originalPrice - price) / originalPrice * 100))
	if d < 0 {
		return 0
	}
	return d
}

// stableDraw hashes id+salt into [0, n). It replaces the random draws the
// reference used for reviewCount, stockCount and isNewArrival, so that
// transforming the same record twice yields the same product.
func stableDraw(id, salt string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(id))
	h.Write([]byte(":"))
	h.Write([]byte(salt))
	return int(h.Sum32() % uint32(n))
}

// TransformProduct maps one raw external record into the storefront
// product schema.
func TransformProduct(raw domain.RawProduct) domain.Product {
	id := ExternalIDPrefix + strconv.Itoa(raw.ID)

	category, ok := categoryMapping[raw.Category]
	if !ok {
		category = domain.DefaultCategory
	}
	subcategory, ok := subcategoryMapping[raw.Category]
	if !ok {
		subcategory = domain.DefaultSubcategory
	}

	originalPrice := raw.Price * originalPriceMarkup

	// Images: non-blank entries of the source array, falling back to the
	// thumbnail. An empty list is kept empty; placeholders are a render
	// concern, not a storage concern.
	imgs := make([]string, 0, len(raw.Images))
	for _, img := range raw.Images {
		if strings.TrimSpace(img) != "" {
			imgs = append(imgs, img)
		}
	}
	if len(imgs) == 0 && raw.Thumbnail != "" {
		imgs = []string{raw.Thumbnail}
	}
	if imgs == nil {
		imgs = []string{}
	}

	thumbnail := raw.Thumbnail
	if thumbnail == "" && len(imgs) > 0 {
		thumbnail = imgs[0]
	}

	brand := raw.Brand
	if brand == "" {
		brand = "Generic"
	}

	reviewCount := raw.Stock
	if reviewCount == 0 {
		reviewCount = 50 + stableDraw(id, "reviews", 500)
	}
	stockCount := raw.Stock
	if stockCount == 0 {
		stockCount = stableDraw(id, "stock", 100)
	}

	p := domain.Product{
		ID:            id,
		Title:         raw.Title,
		Brand:         brand,
		Description:   raw.Description,
		Category:      category,
		Subcategory:   subcategory,
		Price:         int(math.Round(raw.Price)),
		OriginalPrice: int(math.Round(originalPrice)),
		Discount:      discountPercent(raw.Price, originalPrice),
		Rating:        math.Round(raw.Rating*10) / 10,
		ReviewCount:   reviewCount,
		Images:        imgs,
		Thumbnail:     thumbnail,
		InStock:       raw.Stock > 0,
		StockCount:    stockCount,
		IsFeatured:    raw.Rating > 4.5,
		IsNewArrival:  stableDraw(id, "arrival", 100) < 30,
		Shipping:      shippingFor(raw.Price),
		Seller:        defaultSeller,
	}

	// Informational validation only: a title/category mismatch marks the
	// product for placeholder imagery, it never excludes the product.
	if !images.TitleMatchesCategory(p) {
		p.UsePlaceholder = true
	}
	return p
}

func shippingFor(price float64) domain.Shipping {
	free := price > freeShippingThreshold
	cost := flatShippingCost
	if free {
		cost = 0
	}
	return domain.Shipping{Cost: cost, FreeShipping: free, EstimatedDays: shippingEstimate}
}

// TransformProducts maps a batch of raw records, preserving order.
func TransformProducts(raws []domain.RawProduct) []domain.Product {
	out := make([]domain.Product, 0, len(raws))
	for _, raw := range raws {
		out = append(out, TransformProduct(raw))
	}
	return out
}
