// Package handlers implements the storefront's HTTP endpoints on top of the
// catalog store and cart manager.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mabkhara/storefront/internal/catalog"
	"github.com/mabkhara/storefront/internal/etag"
	"github.com/mabkhara/storefront/internal/observability"
	"github.com/mabkhara/storefront/internal/query"
	"github.com/mabkhara/storefront/internal/response"
)

// Error codes carried in error response bodies.
const (
	CodeNotFound   = "NotFound"
	CodeBadRequest = "BadRequest"
)

// CatalogHandler serves the read-only catalog endpoints.
type CatalogHandler struct {
	store  *catalog.Store
	logger *slog.Logger
	obs    *observability.Provider
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(store *catalog.Store, logger *slog.Logger, obs *observability.Provider) *CatalogHandler {
	return &CatalogHandler{store: store, logger: logger, obs: obs}
}

// HandleProducts serves GET /products: the full catalog narrowed by the
// category / minPrice / maxPrice / orderby query options and guarded by a
// weak collection ETag.
func (h *CatalogHandler) HandleProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.obs.Tracer().StartCatalogQuery(r.Context(), observability.OpListProducts)
	defer span.End()

	opts, err := query.ParseOptions(r.URL.Query())
	if err != nil {
		h.obs.Tracer().RecordError(ctx, CodeBadRequest, err.Error())
		h.obs.Metrics().RecordError(ctx, observability.OpListProducts, CodeBadRequest)
		h.writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	timing := observability.StartServerTiming(ctx, "catalog-query")
	products := query.Apply(h.store.Products(), opts)
	timing.Stop()

	h.obs.Metrics().RecordResultCount(ctx, observability.OpListProducts, len(products))

	tag := etag.Collection(products)
	if etag.Match(r.Header.Get("If-None-Match"), tag) {
		w.Header().Set("ETag", tag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", tag)
	h.writeCollection(w, len(products), products)
}

// HandleProduct serves GET /products/{id}.
func (h *CatalogHandler) HandleProduct(w http.ResponseWriter, r *http.Request, id string) {
	ctx, span := h.obs.Tracer().StartCatalogQuery(r.Context(), observability.OpReadProduct,
		observability.ProductIDAttr(id))
	defer span.End()

	product, err := h.store.LookupProduct(id)
	if err != nil {
		h.obs.Metrics().RecordError(ctx, observability.OpReadProduct, CodeNotFound)
		h.writeError(w, http.StatusNotFound, CodeNotFound, err.Error())
		return
	}

	tag := etag.Product(product)
	if etag.Match(r.Header.Get("If-None-Match"), tag) {
		w.Header().Set("ETag", tag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", tag)
	h.writeJSON(w, http.StatusOK, product)
}

// HandleCategories serves GET /categories.
func (h *CatalogHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	_, span := h.obs.Tracer().StartCatalogQuery(r.Context(), observability.OpListCategories)
	defer span.End()

	categories := h.store.Categories()
	h.writeCollection(w, len(categories), categories)
}

// HandleCategory serves GET /categories/{id}.
func (h *CatalogHandler) HandleCategory(w http.ResponseWriter, r *http.Request, id string) {
	ctx, span := h.obs.Tracer().StartCatalogQuery(r.Context(), observability.OpReadCategory,
		observability.CategoryAttr(id))
	defer span.End()

	category, err := h.store.LookupCategory(id)
	if err != nil {
		h.obs.Metrics().RecordError(ctx, observability.OpReadCategory, CodeNotFound)
		h.writeError(w, http.StatusNotFound, CodeNotFound, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, category)
}

// HandleCategoryProducts serves GET /categories/{id}/products. The category
// must exist before any filtering runs; an unknown id is a 404, never an
// empty listing.
func (h *CatalogHandler) HandleCategoryProducts(w http.ResponseWriter, r *http.Request, id string) {
	ctx, span := h.obs.Tracer().StartCatalogQuery(r.Context(), observability.OpCategoryProducts,
		observability.CategoryAttr(id))
	defer span.End()

	products, err := h.store.CategoryProducts(id)
	if err != nil {
		h.obs.Metrics().RecordError(ctx, observability.OpCategoryProducts, CodeNotFound)
		h.writeError(w, http.StatusNotFound, CodeNotFound, err.Error())
		return
	}

	// Price range and ordering apply within the category too; the category
	// option itself is already consumed by the route.
	opts, err := query.ParseOptions(r.URL.Query())
	if err != nil {
		h.obs.Tracer().RecordError(ctx, CodeBadRequest, err.Error())
		h.writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}
	opts.Category = ""

	timing := observability.StartServerTiming(ctx, "catalog-query")
	products = query.Apply(products, opts)
	timing.Stop()

	h.obs.Metrics().RecordResultCount(ctx, observability.OpCategoryProducts, len(products))

	tag := etag.Collection(products)
	if etag.Match(r.Header.Get("If-None-Match"), tag) {
		w.Header().Set("ETag", tag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", tag)
	h.writeCollection(w, len(products), products)
}

func (h *CatalogHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := response.WriteJSON(w, status, v); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *CatalogHandler) writeCollection(w http.ResponseWriter, count int, v any) {
	if err := response.WriteCollection(w, http.StatusOK, count, v); err != nil {
		h.logger.Error("failed to write collection response", "error", err)
	}
}

func (h *CatalogHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := response.WriteError(w, status, code, message); err != nil {
		h.logger.Error("failed to write error response", "error", err)
	}
}
