// Package storefront implements the catalog and cart core of a fragrance
// storefront: an immutable in-memory product catalog loaded once from a
// database, pure query functions over it, and per-session cart ledgers with
// derived order totals. A thin HTTP surface exposes both to whatever
// presentation layer consumes them.
package storefront

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"gorm.io/gorm"

	"github.com/mabkhara/storefront/internal/cart"
	"github.com/mabkhara/storefront/internal/catalog"
	"github.com/mabkhara/storefront/internal/handlers"
	"github.com/mabkhara/storefront/internal/observability"
)

// Config controls optional service behaviours. The zero value selects the
// storefront defaults for everything.
type Config struct {
	// Pricing overrides the monetary policy used for cart totals.
	Pricing *cart.Pricing

	// AddLimits bound the add/increment quantity path. Default: floor of
	// one, no ceiling.
	AddLimits *cart.Limits

	// SetLimits bound the absolute set-quantity path. Default: one to ten,
	// the detail-page stepper range.
	SetLimits *cart.Limits

	// Logger receives structured logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Observability configures tracing, metrics, and Server-Timing.
	// Nil disables all three at zero cost.
	Observability *observability.Config
}

// Service is the storefront facade: it owns the loaded catalog, the live
// session carts, and the HTTP handlers over both.
type Service struct {
	// db holds the GORM database connection the catalog was loaded from
	db *gorm.DB
	// store is the immutable in-memory catalog
	store *catalog.Store
	// carts owns the live session ledgers
	carts *cart.Manager
	// pricing is the monetary policy for cart totals
	pricing cart.Pricing
	// catalogHandler serves the read-only catalog endpoints
	catalogHandler *handlers.CatalogHandler
	// cartHandler serves the session cart endpoints
	cartHandler *handlers.CartHandler
	// logger is used for structured logging throughout the service
	logger *slog.Logger
	// obs bundles the tracer and metric instruments
	obs *observability.Provider
	// httpServer is set by ListenAndServe so Shutdown can reach it
	httpServer *http.Server
	httpMu     sync.Mutex
}

// New creates a storefront service, loading the catalog from db.
func New(db *gorm.DB) *Service {
	service, err := NewWithConfig(db, Config{})
	if err != nil {
		panic(err)
	}
	return service
}

// NewWithConfig creates a storefront service with additional configuration.
func NewWithConfig(db *gorm.DB, cfg Config) (*Service, error) {
	if db == nil {
		return nil, fmt.Errorf("storefront: database handle is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store, err := catalog.Load(db)
	if err != nil {
		return nil, fmt.Errorf("storefront: loading catalog: %w", err)
	}

	pricing := cart.DefaultPricing()
	if cfg.Pricing != nil {
		pricing = *cfg.Pricing
	}

	addLimits := cart.DefaultAddLimits()
	if cfg.AddLimits != nil {
		addLimits = *cfg.AddLimits
	}

	setLimits := cart.DefaultSetLimits()
	if cfg.SetLimits != nil {
		setLimits = *cfg.SetLimits
	}

	obs := observability.NewProvider(cfg.Observability)
	carts := cart.NewManager(addLimits, setLimits)

	s := &Service{
		db:             db,
		store:          store,
		carts:          carts,
		pricing:        pricing,
		catalogHandler: handlers.NewCatalogHandler(store, logger, obs),
		cartHandler:    handlers.NewCartHandler(carts, store, pricing, logger, obs),
		logger:         logger,
		obs:            obs,
	}

	logger.Info("storefront service initialized",
		"products", store.Len(),
		"categories", len(store.Categories()))

	return s, nil
}

// Catalog returns the immutable catalog store.
func (s *Service) Catalog() *catalog.Store {
	return s.store
}

// Carts returns the session cart manager.
func (s *Service) Carts() *cart.Manager {
	return s.carts
}

// Pricing returns the monetary policy in effect.
func (s *Service) Pricing() cart.Pricing {
	return s.pricing
}
