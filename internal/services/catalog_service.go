package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"veltora/internal/domain"
	applog "veltora/internal/log"
	"veltora/internal/repos"
)

// ProductCacheKey is the KV key the catalog service owns. Nothing else
// reads or writes it.
const ProductCacheKey = "veltora_products_cache"

// CatalogService produces the full catalog (external + curated) with a
// transparent time-boxed cache. Business absence is empty slices or a
// false ok, never an error: a failed upstream fetch degrades to the
// curated set, a failed cache read degrades to a refetch.
type CatalogService struct {
	Source ProductSource
	KV     *repos.KVRepo
	TTL    time.Duration
	Limit  int

	group singleflight.Group
	now   func() time.Time
}

func NewCatalogService(source ProductSource, kv *repos.KVRepo, ttl time.Duration, limit int) *CatalogService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if limit <= 0 {
		limit = 100
	}
	return &CatalogService{Source: source, KV: kv, TTL: ttl, Limit: limit, now: time.Now}
}

// AllProducts returns the merged catalog. Unless forceRefresh is set, a
// fresh cache envelope short-circuits the upstream fetch entirely.
// Concurrent cold-cache callers share one in-flight refresh.
func (s *CatalogService) AllProducts(ctx context.Context, forceRefresh bool) []domain.Product {
	if !forceRefresh {
		if cached, ok := s.readCache(); ok {
			return cached
		}
	}
	v, _, _ := s.group.Do("refresh", func() (any, error) {
		return s.refresh(ctx), nil
	})
	return v.([]domain.Product)
}

// refresh fetches, transforms, merges curated products and rewrites the
// cache envelope. It never fails: upstream errors produce an empty
// external list and the curated set still ships.
func (s *CatalogService) refresh(ctx context.Context) []domain.Product {
	var external []domain.Product
	raws, err := s.Source.FetchProducts(ctx, s.Limit)
	if err != nil {
		applog.Error(nil, "catalog.fetch.fail", err, nil)
	} else {
		external = TransformProducts(raws)
	}

	all := append(external, CuratedProducts()...)
	s.writeCache(all)
	applog.Info(nil, "catalog.refresh", map[string]any{
		"external": len(external), "curated": len(all) - len(external),
	})
	return all
}

func (s *CatalogService) readCache() ([]domain.Product, bool) {
	blob, ok, err := s.KV.Get(ProductCacheKey)
	if err != nil {
		applog.Error(nil, "catalog.cache.read.fail", err, nil)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var env domain.CacheEnvelope
	if err := json.Unmarshal([]byte(blob), &env); err != nil {
		applog.Error(nil, "catalog.cache.corrupt", err, nil)
		_ = s.KV.Delete(ProductCacheKey)
		return nil, false
	}
	age := s.now().UnixMilli() - env.Timestamp
	if age >= s.TTL.Milliseconds() {
		_ = s.KV.Delete(ProductCacheKey)
		return nil, false
	}
	return env.Data, true
}

func (s *CatalogService) writeCache(products []domain.Product) {
	env := domain.CacheEnvelope{Data: products, Timestamp: s.now().UnixMilli()}
	blob, err := json.Marshal(env)
	if err != nil {
		applog.Error(nil, "catalog.cache.marshal.fail", err, nil)
		return
	}
	if err := s.KV.Set(ProductCacheKey, string(blob)); err != nil {
		applog.Error(nil, "catalog.cache.write.fail", err, nil)
	}
}

// ClearProductCache drops the persisted envelope; the next AllProducts
// call refetches.
func (s *CatalogService) ClearProductCache() {
	if err := s.KV.Delete(ProductCacheKey); err != nil {
		applog.Error(nil, "catalog.cache.clear.fail", err, nil)
	}
}

// ProductsByCategory filters the catalog by exact category id.
func (s *CatalogService) ProductsByCategory(ctx context.Context, category string) []domain.Product {
	var out []domain.Product
	for _, p := range s.AllProducts(ctx, false) {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ProductByID returns the product with the exact id; ok is false when it
// does not exist. Absence is not an error.
func (s *CatalogService) ProductByID(ctx context.Context, id string) (domain.Product, bool) {
	for _, p := range s.AllProducts(ctx, false) {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// FeaturedProducts returns up to limit featured products in catalog order.
func (s *CatalogService) FeaturedProducts(ctx context.Context, limit int) []domain.Product {
	return filterLimit(s.AllProducts(ctx, false), limit, func(p domain.Product) bool { return p.IsFeatured })
}

// NewArrivals returns up to limit new arrivals in catalog order.
func (s *CatalogService) NewArrivals(ctx context.Context, limit int) []domain.Product {
	return filterLimit(s.AllProducts(ctx, false), limit, func(p domain.Product) bool { return p.IsNewArrival })
}

func filterLimit(products []domain.Product, limit int, keep func(domain.Product) bool) []domain.Product {
	if limit <= 0 {
		limit = 20
	}
	var out []domain.Product
	for _, p := range products {
		if !keep(p) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// SearchQuery narrows and orders an in-memory product list the way the
// search and category pages do.
type SearchQuery struct {
	Q         string
	Category  string
	MinPrice  int
	MaxPrice  int
	MinRating float64
	Sort      string
}

// Search runs the query over the whole catalog: case-insensitive match on
// title, brand and description, then filters, then ordering.
func (s *CatalogService) Search(ctx context.Context, q SearchQuery) []domain.Product {
	products := s.AllProducts(ctx, false)
	if q.Category != "" {
		products = filterLimit(products, len(products), func(p domain.Product) bool { return p.Category == q.Category })
	}
	if term := strings.ToLower(strings.TrimSpace(q.Q)); term != "" {
		var out []domain.Product
		for _, p := range products {
			hay := strings.ToLower(p.Title + " " + p.Brand + " " + p.Description)
			if strings.Contains(hay, term) {
				out = append(out, p)
			}
		}
		products = out
	}
	if q.MinPrice > 0 || q.MaxPrice > 0 {
		var out []domain.Product
		for _, p := range products {
			if q.MinPrice > 0 && p.Price < q.MinPrice {
				continue
			}
			if q.MaxPrice > 0 && p.Price > q.MaxPrice {
				continue
			}
			out = append(out, p)
		}
		products = out
	}
	if q.MinRating > 0 {
		var out []domain.Product
		for _, p := range products {
			if p.Rating >= q.MinRating {
				out = append(out, p)
			}
		}
		products = out
	}
	SortProducts(products, q.Sort)
	return products
}

// Sort orders accepted by SortProducts; anything else keeps catalog order.
const (
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortNameAsc    = "name-asc"
	SortRatingDesc = "rating-desc"
)

// SortProducts orders products in place. Stable, so equal keys keep
// catalog order.
func SortProducts(products []domain.Product, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Title) < strings.ToLower(products[j].Title)
		})
	case SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	}
}
