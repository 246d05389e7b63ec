package domain

// Category is one entry of the fixed storefront taxonomy. Products refer
// to categories by ID; the taxonomy itself never changes at runtime.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultCategory is the fallback for external records whose source
// category has no mapping.
const DefaultCategory = "electronics"

// DefaultSubcategory is the catch-all subcategory.
const DefaultSubcategory = "all"

// MainCategories is the storefront taxonomy, in display order.
var MainCategories = []Category{
	{
		ID:          "appliances",
		Name:        "Appliances",
		Description: "Refrigerators, washers, cooking ranges & smart climate control",
		Subcategories: []Subcategory{
			{ID: "refrigerators", Name: "Refrigerators"},
			{ID: "washing-machines", Name: "Washing Machines"},
			{ID: "kitchen-appliances", Name: "Kitchen Appliances"},
		},
	},
	{
		ID:          "phones-tablets",
		Name:        "Phones & Tablets",
		Description: "Flagship smartphones, tablets, accessories & wearables",
		Subcategories: []Subcategory{
			{ID: "smartphones", Name: "Smartphones"},
			{ID: "tablets", Name: "Tablets"},
			{ID: "wearables", Name: "Accessories & Wearables"},
		},
	},
	{
		ID:          "health-beauty",
		Name:        "Health & Beauty",
		Description: "Skincare routines, fragrances, grooming kits & spa essentials",
		Subcategories: []Subcategory{
			{ID: "skincare", Name: "Skincare"},
			{ID: "makeup", Name: "Makeup"},
			{ID: "personal-care", Name: "Personal Care"},
		},
	},
	{
		ID:          "home-office",
		Name:        "Home & Office",
		Description: "Furniture, decor and everything for the home workspace",
		Subcategories: []Subcategory{
			{ID: "furniture", Name: "Furniture"},
			{ID: "decor", Name: "Decor"},
			{ID: "office-supplies", Name: "Office Supplies"},
		},
	},
	{
		ID:          "electronics",
		Name:        "Electronics",
		Description: "Televisions, audio, cameras and smart gadgets",
		Subcategories: []Subcategory{
			{ID: "televisions", Name: "Televisions"},
			{ID: "audio", Name: "Audio"},
			{ID: "cameras", Name: "Cameras"},
		},
	},
	{
		ID:          "computing",
		Name:        "Computing",
		Description: "Laptops, desktops, monitors and accessories",
		Subcategories: []Subcategory{
			{ID: "laptops", Name: "Laptops"},
			{ID: "desktops", Name: "Desktops"},
			{ID: "computer-accessories", Name: "Accessories"},
		},
	},
	{
		ID:          "fashion",
		Name:        "Fashion",
		Description: "Clothing, shoes, watches and jewellery for everyone",
		Subcategories: []Subcategory{
			{ID: "mens-fashion", Name: "Men's Fashion"},
			{ID: "womens-fashion", Name: "Women's Fashion"},
			{ID: "kids-fashion", Name: "Kids' Fashion"},
		},
	},
	{
		ID:          "gaming",
		Name:        "Gaming",
		Description: "Consoles, controllers and the latest titles",
		Subcategories: []Subcategory{
			{ID: "consoles", Name: "Consoles"},
			{ID: "games", Name: "Games"},
			{ID: "gaming-accessories", Name: "Accessories"},
		},
	},
	{
		ID:          "supermarket",
		Name:        "Supermarket",
		Description: "Groceries, beverages and household staples",
		Subcategories: []Subcategory{
			{ID: "groceries", Name: "Groceries"},
			{ID: "beverages", Name: "Beverages"},
			{ID: "household", Name: "Household"},
		},
	},
	{
		ID:          "baby-products",
		Name:        "Baby Products",
		Description: "Strollers, toys and essentials for little ones",
		Subcategories: []Subcategory{
			{ID: "baby-gear", Name: "Baby Gear"},
			{ID: "toys", Name: "Toys"},
			{ID: "nursery", Name: "Nursery"},
		},
	},
}

// CategoryByID returns the taxonomy entry for id.
func CategoryByID(id string) (Category, bool) {
	for _, c := range MainCategories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// ValidCategory reports whether id is part of the taxonomy.
func ValidCategory(id string) bool {
	_, ok := CategoryByID(id)
	return ok
}
