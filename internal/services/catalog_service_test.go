package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veltora/internal/domain"
	"veltora/internal/repos"
)

type fakeSource struct {
	mu       sync.Mutex
	calls    int
	products []domain.RawProduct
	err      error
	delay    time.Duration
}

func (f *fakeSource) FetchProducts(ctx context.Context, limit int) ([]domain.RawProduct, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func catalogKV(t *testing.T) *repos.KVRepo {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repos.NewKVRepo(db)
}

func testCatalog(t *testing.T, source ProductSource) *CatalogService {
	t.Helper()
	return NewCatalogService(source, catalogKV(t), 24*time.Hour, 100)
}

func TestCatalog_CacheRoundTrip(t *testing.T) {
	source := &fakeSource{products: []domain.RawProduct{rawSmartphone()}}
	svc := testCatalog(t, source)

	base := time.Now()
	svc.now = func() time.Time { return base }

	first := svc.AllProducts(context.Background(), false)
	require.Equal(t, 1, source.callCount())
	assert.Len(t, first, 1+len(curatedProducts))

	// Within the TTL the cache answers without touching the network.
	svc.now = func() time.Time { return base.Add(24*time.Hour - time.Millisecond) }
	second := svc.AllProducts(context.Background(), false)
	assert.Equal(t, 1, source.callCount())
	assert.Equal(t, first, second)

	// One millisecond past the TTL the envelope is stale and discarded.
	svc.now = func() time.Time { return base.Add(24*time.Hour + time.Millisecond) }
	svc.AllProducts(context.Background(), false)
	assert.Equal(t, 2, source.callCount())
}

func TestCatalog_ForceRefreshBypassesCache(t *testing.T) {
	source := &fakeSource{products: []domain.RawProduct{rawSmartphone()}}
	svc := testCatalog(t, source)

	svc.AllProducts(context.Background(), false)
	svc.AllProducts(context.Background(), true)
	assert.Equal(t, 2, source.callCount())
}

func TestCatalog_ClearCacheForcesRefetch(t *testing.T) {
	source := &fakeSource{products: []domain.RawProduct{rawSmartphone()}}
	svc := testCatalog(t, source)

	svc.AllProducts(context.Background(), false)
	svc.ClearProductCache()
	svc.AllProducts(context.Background(), false)
	assert.Equal(t, 2, source.callCount())
}

func TestCatalog_FetchFailureStillServesCurated(t *testing.T) {
	source := &fakeSource{err: errors.New("upstream down")}
	svc := testCatalog(t, source)

	products := svc.AllProducts(context.Background(), false)
	require.Len(t, products, len(curatedProducts))
	for _, p := range products {
		assert.Contains(t, p.ID, "veltora-")
	}
}

func TestCatalog_CorruptCacheTreatedAsMiss(t *testing.T) {
	source := &fakeSource{products: []domain.RawProduct{rawSmartphone()}}
	kv := catalogKV(t)
	svc := NewCatalogService(source, kv, 24*time.Hour, 100)
	require.NoError(t, kv.Set(ProductCacheKey, "{broken"))

	products := svc.AllProducts(context.Background(), false)
	assert.Equal(t, 1, source.callCount())
	assert.NotEmpty(t, products)
}

func TestCatalog_ProductByID(t *testing.T) {
	source := &fakeSource{products: []domain.RawProduct{rawSmartphone()}}
	svc := testCatalog(t, source)

	p, ok := svc.ProductByID(context.Background(), "dummy-7")
	require.True(t, ok)
	assert.Equal(t, "Galaxy S10 Smartphone", p.Title)

	// Unknown ids are absence, not failure.
	_, ok = svc.ProductByID(context.Background(), "nonexistent")
	assert.False(t, ok)
}

func TestCatalog_ProductsByCategory(t *testing.T) {
	source := &fakeSource{products: []domain.RawProduct{rawSmartphone()}}
	svc := testCatalog(t, source)

	phones := svc.ProductsByCategory(context.Background(), "phones-tablets")
	ids := make([]string, 0, len(phones))
	for _, p := range phones {
		assert.Equal(t, "phones-tablets", p.Category)
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "dummy-7")
}

func TestCatalog_FeaturedAndNewArrivalLimits(t *testing.T) {
	source := &fakeSource{}
	svc := testCatalog(t, source)

	featured := svc.FeaturedProducts(context.Background(), 2)
	assert.LessOrEqual(t, len(featured), 2)
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
	}

	arrivals := svc.NewArrivals(context.Background(), 1)
	assert.LessOrEqual(t, len(arrivals), 1)
	for _, p := range arrivals {
		assert.True(t, p.IsNewArrival)
	}
}

func TestCatalog_UniqueIDsAcrossSources(t *testing.T) {
	source := &fakeSource{products: []domain.RawProduct{rawSmartphone(), {ID: 8, Title: "Phone 8", Category: "smartphones", Price: 100, Rating: 4, Stock: 5}}}
	svc := testCatalog(t, source)

	seen := map[string]bool{}
	for _, p := range svc.AllProducts(context.Background(), false) {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

// Concurrent cold-cache callers share a single upstream fetch.
func TestCatalog_SingleFlightOnColdCache(t *testing.T) {
	source := &fakeSource{products: []domain.RawProduct{rawSmartphone()}, delay: 50 * time.Millisecond}
	svc := testCatalog(t, source)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.AllProducts(context.Background(), false)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, source.callCount())
}

func TestCatalog_Search(t *testing.T) {
	source := &fakeSource{products: []domain.RawProduct{
		rawSmartphone(),
		{ID: 8, Title: "Budget Phone", Category: "smartphones", Price: 60, Rating: 3.9, Stock: 4},
	}}
	svc := testCatalog(t, source)

	byTerm := svc.Search(context.Background(), SearchQuery{Q: "galaxy"})
	require.Len(t, byTerm, 1)
	assert.Equal(t, "dummy-7", byTerm[0].ID)

	cheapPhones := svc.Search(context.Background(), SearchQuery{Category: "phones-tablets", MaxPrice: 100})
	require.Len(t, cheapPhones, 1)
	assert.Equal(t, "dummy-8", cheapPhones[0].ID)

	sorted := svc.Search(context.Background(), SearchQuery{Category: "phones-tablets", Sort: SortPriceAsc})
	require.Len(t, sorted, 2)
	assert.LessOrEqual(t, sorted[0].Price, sorted[1].Price)
}

func TestSortProducts(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Title: "Zeta", Price: 30, Rating: 3},
		{ID: "b", Title: "alpha", Price: 10, Rating: 5},
		{ID: "c", Title: "Beta", Price: 20, Rating: 4},
	}

	SortProducts(products, SortPriceDesc)
	assert.Equal(t, []int{30, 20, 10}, []int{products[0].Price, products[1].Price, products[2].Price})

	SortProducts(products, SortNameAsc)
	assert.Equal(t, "alpha", products[0].Title)

	SortProducts(products, SortRatingDesc)
	assert.Equal(t, 5.0, products[0].Rating)
}
