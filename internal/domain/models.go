package domain

// Shipping describes how a product ships. Cost is zero whenever
// FreeShipping is true.
type Shipping struct {
	Cost          float64 `json:"cost"`
	FreeShipping  bool    `json:"freeShipping"`
	EstimatedDays string  `json:"estimatedDays"`
}

// Product is the canonical catalog record every handler consumes,
// whether it came from the external source or the curated set.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Brand         string   `json:"brand"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice"`
	Discount      int      `json:"discount"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Images        []string `json:"images"`
	Thumbnail     string   `json:"thumbnail"`
	InStock       bool     `json:"inStock"`
	StockCount    int      `json:"stockCount"`
	IsFeatured    bool     `json:"isFeatured"`
	IsNewArrival  bool     `json:"isNewArrival"`
	Shipping      Shipping `json:"shipping"`
	Seller        string   `json:"seller"`

	// UsePlaceholder marks records whose title matches none of their
	// category's keywords; image resolution then falls back to the
	// category placeholder instead of the (likely mismatched) source image.
	UsePlaceholder bool `json:"usePlaceholder,omitempty"`
}

// CartItem is a product plus the quantity in the cart. At most one line
// item exists per product id.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartState is the full persisted cart/wishlist envelope.
type CartState struct {
	Items    []CartItem `json:"items"`
	Wishlist []Product  `json:"wishlist"`
}

// CacheEnvelope wraps the cached catalog with its write time in epoch
// milliseconds.
type CacheEnvelope struct {
	Data      []Product `json:"data"`
	Timestamp int64     `json:"timestamp"`
}

// RawProduct is one record as the external catalog source returns it.
type RawProduct struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Stock       int      `json:"stock"`
	Brand       string   `json:"brand"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
}

// CheckoutForm carries the checkout page fields. Validation runs through
// go-playground/validator before an order is placed.
type CheckoutForm struct {
	Name          string `json:"name" form:"name" validate:"required,max=50"`
	Email         string `json:"email" form:"email" validate:"required,email,max=50"`
	Phone         string `json:"phone" form:"phone" validate:"omitempty,max=20"`
	Address       string `json:"address" form:"address" validate:"required,max=120"`
	City          string `json:"city" form:"city" validate:"required,max=50"`
	PaymentMethod string `json:"paymentMethod" form:"paymentMethod" validate:"required,oneof=card cod bank"`
}
