// Package app provides service initialization.
package app

import (
	"github.com/walterflo/pizzeria-service/config"
	"github.com/walterflo/pizzeria-service/internal/catalog"
	"github.com/walterflo/pizzeria-service/internal/service"
)

// ServiceComponents holds the business components of the storefront.
type ServiceComponents struct {
	Catalog   *catalog.Catalog
	Carts     *service.CartStore
	Formatter *service.OrderFormatter
	Links     *service.LinkBuilder
}

// InitializeServices builds the catalog, the cart session store, the order
// formatter, and the delivery link builder. The catalog is validated here;
// a broken menu stops the service before it binds a port.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	cat, err := catalog.New(catalog.Default())
	if err != nil {
		return nil, err
	}

	return &ServiceComponents{
		Catalog:   cat,
		Carts:     service.NewCartStore(cfg.Cart.Capacity, cfg.Cart.SessionTTL),
		Formatter: service.NewOrderFormatter(),
		Links:     service.NewLinkBuilder(cfg.Store.CountryCode, cfg.Store.Phone),
	}, nil
}
