package services

import "veltora/internal/domain"

// curatedProducts is the fixed, manually curated set merged into every
// catalog refresh. Ids carry the "veltora-" prefix so they can never
// collide with the namespaced external ids.
var curatedProducts = []domain.Product{
	{
		ID: "veltora-lg-fridge-01", Title: "LG InstaView French Door Refrigerator",
		Brand: "LG", Description: "Smart cooling refrigerator with knock-on InstaView glass panel.",
		Category: "appliances", Subcategory: "refrigerators",
		Price: 1450, OriginalPrice: 1700, Discount: 15,
		Rating: 4.7, ReviewCount: 238,
		Images:    []string{"/images/products/lg-instaview-fridge.jpg"},
		Thumbnail: "/images/products/lg-instaview-fridge.jpg",
		InStock:   true, StockCount: 12, IsFeatured: true,
		Shipping: domain.Shipping{Cost: 0, FreeShipping: true, EstimatedDays: "3-5 days"},
		Seller:   "Veltora Official",
	},
	{
		ID: "veltora-galaxy-s24-01", Title: "Samsung Galaxy S24 Ultra 256GB",
		Brand: "Samsung", Description: "Flagship smartphone with 200MP camera and S Pen.",
		Category: "phones-tablets", Subcategory: "smartphones",
		Price: 1199, OriginalPrice: 1299, Discount: 8,
		Rating: 4.8, ReviewCount: 412,
		Images:    []string{"/images/products/galaxy-s24-ultra.jpg"},
		Thumbnail: "/images/products/galaxy-s24-ultra.jpg",
		InStock:   true, StockCount: 34, IsFeatured: true, IsNewArrival: true,
		Shipping: domain.Shipping{Cost: 0, FreeShipping: true, EstimatedDays: "3-5 days"},
		Seller:   "Veltora Official",
	},
	{
		ID: "veltora-macbook-air-01", Title: "Apple MacBook Air 13\" M3",
		Brand: "Apple", Description: "Thin and light laptop with the M3 chip and all-day battery.",
		Category: "computing", Subcategory: "laptops",
		Price: 1099, OriginalPrice: 1199, Discount: 8,
		Rating: 4.9, ReviewCount: 520,
		Images:    []string{"/images/products/macbook-air-m3.jpg"},
		Thumbnail: "/images/products/macbook-air-m3.jpg",
		InStock:   true, StockCount: 21, IsFeatured: true,
		Shipping: domain.Shipping{Cost: 0, FreeShipping: true, EstimatedDays: "3-5 days"},
		Seller:   "Veltora Official",
	},
	{
		ID: "veltora-ps5-slim-01", Title: "Sony PlayStation 5 Slim Console",
		Brand: "Sony", Description: "Next-gen gaming console, 1TB SSD, DualSense controller.",
		Category: "gaming", Subcategory: "consoles",
		Price: 499, OriginalPrice: 549, Discount: 9,
		Rating: 4.8, ReviewCount: 368,
		Images:    []string{"/images/products/ps5-slim.jpg"},
		Thumbnail: "/images/products/ps5-slim.jpg",
		InStock:   true, StockCount: 18, IsFeatured: true, IsNewArrival: true,
		Shipping: domain.Shipping{Cost: 0, FreeShipping: true, EstimatedDays: "3-5 days"},
		Seller:   "Veltora Official",
	},
	{
		ID: "veltora-sonos-beam-01", Title: "Sonos Beam Gen 2 Soundbar",
		Brand: "Sonos", Description: "Compact smart soundbar with Dolby Atmos.",
		Category: "electronics", Subcategory: "audio",
		Price: 449, OriginalPrice: 499, Discount: 10,
		Rating: 4.6, ReviewCount: 187,
		Images:    []string{"/images/products/sonos-beam.jpg"},
		Thumbnail: "/images/products/sonos-beam.jpg",
		InStock:   true, StockCount: 26, IsNewArrival: true,
		Shipping: domain.Shipping{Cost: 0, FreeShipping: true, EstimatedDays: "3-5 days"},
		Seller:   "Veltora Official",
	},
	{
		ID: "veltora-herman-chair-01", Title: "Ergonomic Mesh Office Chair",
		Brand: "Hygge Living", Description: "Breathable mesh desk chair with lumbar support.",
		Category: "home-office", Subcategory: "furniture",
		Price: 189, OriginalPrice: 229, Discount: 17,
		Rating: 4.4, ReviewCount: 95,
		Images:    []string{"/images/products/mesh-office-chair.jpg"},
		Thumbnail: "/images/products/mesh-office-chair.jpg",
		InStock:   true, StockCount: 40,
		Shipping: domain.Shipping{Cost: 0, FreeShipping: true, EstimatedDays: "3-5 days"},
		Seller:   "Veltora Official",
	},
	{
		ID: "veltora-chrono-watch-01", Title: "Classic Leather Chronograph Watch",
		Brand: "Meridian", Description: "Stainless steel chronograph with a leather strap.",
		Category: "fashion", Subcategory: "mens-fashion",
		Price: 85, OriginalPrice: 110, Discount: 23,
		Rating: 4.3, ReviewCount: 67,
		Images:    []string{"/images/products/leather-chronograph.jpg"},
		Thumbnail: "/images/products/leather-chronograph.jpg",
		InStock:   true, StockCount: 55,
		Shipping: domain.Shipping{Cost: 5.99, FreeShipping: false, EstimatedDays: "3-5 days"},
		Seller:   "Veltora Official",
	},
	{
		ID: "veltora-stroller-01", Title: "Compact Fold Baby Stroller",
		Brand: "TinySteps", Description: "One-hand fold stroller with reclining seat and canopy.",
		Category: "baby-products", Subcategory: "baby-gear",
		Price: 145, OriginalPrice: 180, Discount: 19,
		Rating: 4.5, ReviewCount: 118,
		Images:    []string{"/images/products/compact-stroller.jpg"},
		Thumbnail: "/images/products/compact-stroller.jpg",
		InStock:   true, StockCount: 14, IsNewArrival: true,
		Shipping: domain.Shipping{Cost: 0, FreeShipping: true, EstimatedDays: "3-5 days"},
		Seller:   "Veltora Official",
	},
}

// CuratedProducts returns a copy of the curated set so callers can never
// mutate the backing data.
func CuratedProducts() []domain.Product {
	out := make([]domain.Product, len(curatedProducts))
	copy(out, curatedProducts)
	return out
}
