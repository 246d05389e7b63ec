package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"veltora/internal/config"
	"veltora/internal/http/handlers"
	"veltora/internal/repos"
)

const sourcePayload = `{
  "products": [
    {"id": 1, "title": "iPhone 9 Smartphone", "description": "An apple mobile", "category": "smartphones",
     "price": 549, "rating": 4.69, "stock": 94, "brand": "Apple",
     "thumbnail": "https://cdn.example/1/thumb.jpg", "images": ["https://cdn.example/1/1.jpg"]},
    {"id": 2, "title": "Gaming Laptop", "description": "Fast laptop", "category": "laptops",
     "price": 1499, "rating": 4.2, "stock": 12, "brand": "Acer",
     "thumbnail": "https://cdn.example/2/thumb.jpg", "images": []}
  ],
  "total": 2, "skip": 0, "limit": 100
}`

// newStorefrontApp wires the full handler set against an in-memory DB and
// a stubbed catalog source.
func newStorefrontApp(t *testing.T) *fiber.App {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sourcePayload))
	}))
	t.Cleanup(upstream.Close)

	cfg := config.Config{
		DBDSN:       ":memory:",
		CatalogURL:  upstream.URL,
		FetchLimit:  100,
		CacheTTL:    24 * time.Hour,
		HTTPTimeout: 5 * time.Second,
	}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	deps := handlers.NewDeps(db, cfg)

	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/", deps.CategoryHandler.Home)
	app.Get("/search", deps.SearchHandler.Search)
	app.Get("/category/:id", deps.CategoryHandler.List)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)
	app.Get("/checkout", deps.OrderHandler.Checkout)
	app.Post("/orders", deps.OrderHandler.Place)
	app.Get("/order/:id", deps.OrderHandler.View)
	app.Get("/wishlist", deps.WishlistHandler.List)
	app.Post("/wishlist/toggle", deps.WishlistHandler.Toggle)
	api := app.Group("/api/v1")
	api.Post("/catalog/refresh", deps.CatalogHandler.Refresh)
	api.Post("/catalog/cache/clear", deps.CatalogHandler.ClearCache)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string, want int) map[string]any {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("GET %s: want %d, got %d (%s)", path, want, resp.StatusCode, body)
	}
	return decodeBody(t, resp)
}

func postForm(t *testing.T, app *fiber.App, path, form string, want int) map[string]any {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("POST %s: want %d, got %d (%s)", path, want, resp.StatusCode, body)
	}
	return decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return out
}

func TestHomeServesRailsAndCategories(t *testing.T) {
	app := newStorefrontApp(t)
	body := getJSON(t, app, "/", 200)

	if _, ok := body["categories"].([]any); !ok {
		t.Fatalf("missing categories: %v", body)
	}
	featured, ok := body["featured"].([]any)
	if !ok || len(featured) == 0 {
		t.Fatalf("expected featured products, got %v", body["featured"])
	}
}

func TestCategoryListing(t *testing.T) {
	app := newStorefrontApp(t)

	body := getJSON(t, app, "/category/phones-tablets", 200)
	products := body["products"].([]any)
	if len(products) == 0 {
		t.Fatal("expected phones-tablets products")
	}

	// Unknown categories are navigable 404s.
	getJSON(t, app, "/category/not-a-category", 404)
}

func TestProductDetail(t *testing.T) {
	app := newStorefrontApp(t)

	body := getJSON(t, app, "/product/dummy-1", 200)
	p := body["product"].(map[string]any)
	if p["category"] != "phones-tablets" || p["subcategory"] != "smartphones" {
		t.Fatalf("unexpected mapping: %v", p)
	}
	if body["image"] == "" {
		t.Fatal("expected a resolved image")
	}

	getJSON(t, app, "/product/nonexistent", 404)
}

func TestSearchValidation(t *testing.T) {
	app := newStorefrontApp(t)

	// Empty query: empty results, not an error.
	body := getJSON(t, app, "/search", 200)
	if body["count"].(float64) != 0 {
		t.Fatalf("expected empty results, got %v", body)
	}

	// Disallowed characters are rejected early.
	resp, err := app.Test(httptest.NewRequest("GET", "/search?q=%3Cscript%3E", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("bad search expected 400, got %d", resp.StatusCode)
	}

	body = getJSON(t, app, "/search?q=laptop", 200)
	if body["count"].(float64) < 1 {
		t.Fatalf("expected laptop hit, got %v", body)
	}
}

func TestCartFlow(t *testing.T) {
	app := newStorefrontApp(t)

	postForm(t, app, "/cart", "productId=dummy-1", 200)
	body := postForm(t, app, "/cart", "productId=dummy-1&qty=2", 200)
	if body["count"].(float64) != 3 {
		t.Fatalf("want 3 units, got %v", body["count"])
	}

	body = getJSON(t, app, "/cart", 200)
	items := body["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("want a single line item, got %d", len(items))
	}

	body = postForm(t, app, "/cart/update", "productId=dummy-1&qty=5", 200)
	if body["count"].(float64) != 5 {
		t.Fatalf("want 5 units after update, got %v", body["count"])
	}

	// qty=0 removes the line.
	body = postForm(t, app, "/cart/update", "productId=dummy-1&qty=0", 200)
	if body["count"].(float64) != 0 {
		t.Fatalf("want empty cart, got %v", body["count"])
	}

	postForm(t, app, "/cart", "productId=unknown-id", 404)
	postForm(t, app, "/cart", "", 400)
}

func TestWishlistToggle(t *testing.T) {
	app := newStorefrontApp(t)

	body := postForm(t, app, "/wishlist/toggle", "productId=dummy-2", 200)
	if body["saved"] != true {
		t.Fatalf("expected saved=true, got %v", body)
	}

	body = postForm(t, app, "/wishlist/toggle", "productId=dummy-2", 200)
	if body["saved"] != false || body["count"].(float64) != 0 {
		t.Fatalf("expected toggle to remove, got %v", body)
	}
}

func TestCheckoutFlow(t *testing.T) {
	app := newStorefrontApp(t)
	postForm(t, app, "/cart", "productId=dummy-2", 200)

	body := getJSON(t, app, "/checkout", 200)
	if body["subtotal"].(float64) != 1499 {
		t.Fatalf("unexpected subtotal: %v", body)
	}

	// Missing fields are rejected.
	postForm(t, app, "/orders", "name=Ada", 400)

	form := "name=Ada&email=ada%40example.com&address=1+Storefront+Way&city=Lagos&paymentMethod=card"
	placed := postForm(t, app, "/orders", form, 201)
	orderID, _ := placed["id"].(string)
	if orderID == "" {
		t.Fatalf("expected an order id, got %v", placed)
	}

	// Cart cleared by placement.
	body = getJSON(t, app, "/cart", 200)
	if body["count"].(float64) != 0 {
		t.Fatalf("cart should be empty, got %v", body)
	}

	order := getJSON(t, app, "/order/"+orderID, 200)
	row := order["order"].(map[string]any)
	if row["customerName"] != "Ada" || row["status"] != "PLACED" {
		t.Fatalf("unexpected order row: %v", row)
	}

	getJSON(t, app, "/order/nonexistent", 404)
}

func TestCatalogMaintenance(t *testing.T) {
	app := newStorefrontApp(t)

	body := postForm(t, app, "/api/v1/catalog/refresh", "", 200)
	if body["count"].(float64) == 0 {
		t.Fatalf("expected refreshed catalog, got %v", body)
	}
	postForm(t, app, "/api/v1/catalog/cache/clear", "", 200)
}
