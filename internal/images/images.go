// Package images resolves product imagery: source image when usable,
// category placeholder otherwise. Resolution happens at render time;
// products with empty image lists are stored as-is.
package images

import (
	"strings"

	"veltora/internal/domain"
)

// categoryKeywords associates each taxonomy category with title words
// that suggest the product imagery actually matches the category.
var categoryKeywords = map[string][]string{
	"phones-tablets": {"phone", "iphone", "samsung", "tablet", "ipad", "mobile", "smartphone", "galaxy", "xiaomi", "oneplus"},
	"computing":      {"laptop", "computer", "macbook", "desktop", "monitor", "pc", "notebook", "chromebook", "thinkpad"},
	"fashion":        {"shirt", "dress", "shoe", "watch", "bag", "jean", "jacket", "sneaker", "boot", "sandal", "handbag", "jewelry", "ring", "necklace"},
	"appliances":     {"refrigerator", "washer", "dryer", "microwave", "oven", "fridge", "washing", "air conditioner", "ac", "stove"},
	"gaming":         {"playstation", "xbox", "nintendo", "console", "controller", "game", "switch", "gaming", "ps5"},
	"health-beauty":  {"perfume", "skincare", "makeup", "lipstick", "cream", "serum", "fragrance", "cosmetic", "beauty"},
	"home-office":    {"furniture", "chair", "table", "sofa", "desk", "lamp", "decor", "cushion", "rug", "mirror"},
	"supermarket":    {"grocery", "food", "beverage", "snack", "cereal", "milk", "bread", "juice", "water", "canned"},
	"baby-products":  {"baby", "stroller", "diaper", "bottle", "toy", "infant", "toddler", "crib", "pacifier"},
	"electronics":    {"tv", "television", "headphone", "speaker", "camera", "drone", "soundbar", "audio"},
}

var categoryPlaceholders = map[string]string{
	"phones-tablets": "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=400&fit=crop",
	"computing":      "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400&h=400&fit=crop",
	"fashion":        "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=400&h=400&fit=crop",
	"appliances":     "https://images.unsplash.com/photo-1571175443880-49e1d25b2bc5?w=400&h=400&fit=crop",
	"gaming":         "https://images.unsplash.com/photo-1606813907291-d86efa9b94db?w=400&h=400&fit=crop",
	"health-beauty":  "https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=400&h=400&fit=crop",
	"home-office":    "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=400&fit=crop",
	"supermarket":    "https://images.unsplash.com/photo-1556910096-6f5e72db6803?w=400&h=400&fit=crop",
	"baby-products":  "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=400&fit=crop",
	"electronics":    "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400&h=400&fit=crop",
}

// TitleMatchesCategory reports whether the product title contains any of
// its category's keywords. Categories without a keyword list pass.
func TitleMatchesCategory(p domain.Product) bool {
	if p.Title == "" || p.Category == "" {
		return false
	}
	keywords, ok := categoryKeywords[strings.ToLower(p.Category)]
	if !ok || len(keywords) == 0 {
		return true
	}
	title := strings.ToLower(p.Title)
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			return true
		}
	}
	return false
}

// HasImage reports whether the product carries at least one image URL.
func HasImage(p domain.Product) bool {
	return len(p.Images) > 0
}

// CategoryPlaceholder returns the placeholder image for a category,
// defaulting to the electronics placeholder.
func CategoryPlaceholder(category string) string {
	if u, ok := categoryPlaceholders[category]; ok {
		return u
	}
	return categoryPlaceholders[domain.DefaultCategory]
}

// ProductImage resolves the image at index with fallbacks:
// images array, then thumbnail, then category placeholder. Products
// flagged UsePlaceholder go straight to the placeholder.
func ProductImage(p domain.Product, index int) string {
	if p.UsePlaceholder {
		return CategoryPlaceholder(p.Category)
	}
	var url string
	if len(p.Images) > 0 {
		if index >= 0 && index < len(p.Images) && p.Images[index] != "" {
			url = p.Images[index]
		} else {
			url = p.Images[0]
		}
	}
	if url == "" {
		url = p.Thumbnail
	}
	if strings.TrimSpace(url) == "" {
		return CategoryPlaceholder(p.Category)
	}
	return url
}

// ProductImages resolves every product image, substituting the category
// placeholder for missing entries.
func ProductImages(p domain.Product) []string {
	if !HasImage(p) {
		return []string{CategoryPlaceholder(p.Category)}
	}
	out := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img == "" {
			out = append(out, CategoryPlaceholder(p.Category))
			continue
		}
		out = append(out, img)
	}
	return out
}
