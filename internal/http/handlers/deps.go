package handlers

import (
	"github.com/jmoiron/sqlx"

	"veltora/internal/config"
	"veltora/internal/repos"
	"veltora/internal/services"
)

type Deps struct {
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	SearchHandler   *SearchHandler
	CartHandler     *CartHandler
	WishlistHandler *WishlistHandler
	OrderHandler    *OrderHandler
	CatalogHandler  *CatalogHandler

	Store   *services.CartStore
	Catalog *services.CatalogService
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	kv := repos.NewKVRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	source := services.NewDummyJSONSource(cfg.CatalogURL, cfg.HTTPTimeout)
	catalogSvc := services.NewCatalogService(source, kv, cfg.CacheTTL, cfg.FetchLimit)
	store := services.NewCartStore(kv)
	orderSvc := services.NewOrderService(store, orderRepo)

	return &Deps{
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc, Store: store},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc},
		CartHandler:     &CartHandler{Store: store, Catalog: catalogSvc},
		WishlistHandler: &WishlistHandler{Store: store, Catalog: catalogSvc},
		OrderHandler:    &OrderHandler{Order: orderSvc, Store: store},
		CatalogHandler:  &CatalogHandler{Catalog: catalogSvc},

		Store:   store,
		Catalog: catalogSvc,
	}
}
