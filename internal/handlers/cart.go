package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mabkhara/storefront/internal/cart"
	"github.com/mabkhara/storefront/internal/catalog"
	"github.com/mabkhara/storefront/internal/observability"
	"github.com/mabkhara/storefront/internal/response"
)

// CartHandler serves the session cart endpoints.
type CartHandler struct {
	carts   *cart.Manager
	store   *catalog.Store
	pricing cart.Pricing
	logger  *slog.Logger
	obs     *observability.Provider
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(carts *cart.Manager, store *catalog.Store, pricing cart.Pricing, logger *slog.Logger, obs *observability.Provider) *CartHandler {
	return &CartHandler{carts: carts, store: store, pricing: pricing, logger: logger, obs: obs}
}

// addItemRequest is the body of POST /carts/{id}/items.
type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// setQuantityRequest is the body of PUT /carts/{id}/items/{productId}.
type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartView is the response shape for every cart endpoint: the entries plus
// totals derived fresh from them.
type cartView struct {
	ID     string       `json:"id"`
	Items  []cart.Entry `json:"items"`
	Totals cart.Totals  `json:"totals"`
}

func (h *CartHandler) view(ledger *cart.Ledger) cartView {
	return cartView{
		ID:     ledger.ID(),
		Items:  ledger.Entries(),
		Totals: ledger.Totals(h.pricing),
	}
}

// HandleCreate serves POST /carts.
func (h *CartHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.obs.Tracer().StartCartOperation(r.Context(), observability.OpCreateCart, "")
	defer span.End()

	ledger := h.carts.Create()
	h.obs.Metrics().RecordCartOperation(ctx, observability.OpCreateCart)

	w.Header().Set("Location", "/carts/"+ledger.ID())
	h.writeJSON(w, http.StatusCreated, h.view(ledger))
}

// HandleGet serves GET /carts/{id}: the entries and their derived totals.
func (h *CartHandler) HandleGet(w http.ResponseWriter, r *http.Request, id string) {
	_, span := h.obs.Tracer().StartCartOperation(r.Context(), observability.OpReadCart, id)
	defer span.End()

	ledger, err := h.carts.Get(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, CodeNotFound, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, h.view(ledger))
}

// HandleAddItem serves POST /carts/{id}/items. The quantity is a delta:
// adding to a product already in the cart increments it, floored at the
// minimum. The product must exist in the catalog.
func (h *CartHandler) HandleAddItem(w http.ResponseWriter, r *http.Request, id string) {
	ctx, span := h.obs.Tracer().StartCartOperation(r.Context(), observability.OpAddItem, id)
	defer span.End()

	ledger, err := h.carts.Get(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, CodeNotFound, err.Error())
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.ProductID == "" {
		h.writeError(w, http.StatusBadRequest, CodeBadRequest, "productId is required")
		return
	}

	product, err := h.store.LookupProduct(req.ProductID)
	if err != nil {
		h.writeError(w, http.StatusNotFound, CodeNotFound, err.Error())
		return
	}

	ledger.AddOrIncrement(product, req.Quantity)
	h.obs.Metrics().RecordCartOperation(ctx, observability.OpAddItem)

	h.writeJSON(w, http.StatusOK, h.view(ledger))
}

// HandleSetQuantity serves PUT /carts/{id}/items/{productId}. The quantity
// is absolute and clamped to the stepper bounds; the product must already be
// in the cart.
func (h *CartHandler) HandleSetQuantity(w http.ResponseWriter, r *http.Request, id, productID string) {
	ctx, span := h.obs.Tracer().StartCartOperation(r.Context(), observability.OpSetQuantity, id)
	defer span.End()

	ledger, err := h.carts.Get(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, CodeNotFound, err.Error())
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}

	if _, err := ledger.SetQuantity(productID, req.Quantity); err != nil {
		if errors.Is(err, cart.ErrEntryNotFound) {
			h.writeError(w, http.StatusNotFound, CodeNotFound, err.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, "Internal", err.Error())
		return
	}
	h.obs.Metrics().RecordCartOperation(ctx, observability.OpSetQuantity)

	h.writeJSON(w, http.StatusOK, h.view(ledger))
}

// HandleRemoveItem serves DELETE /carts/{id}/items/{productId}. Removing a
// product that is not in the cart succeeds and leaves the cart unchanged.
func (h *CartHandler) HandleRemoveItem(w http.ResponseWriter, r *http.Request, id, productID string) {
	ctx, span := h.obs.Tracer().StartCartOperation(r.Context(), observability.OpRemoveItem, id)
	defer span.End()

	ledger, err := h.carts.Get(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, CodeNotFound, err.Error())
		return
	}

	ledger.Remove(productID)
	h.obs.Metrics().RecordCartOperation(ctx, observability.OpRemoveItem)

	h.writeJSON(w, http.StatusOK, h.view(ledger))
}

// HandleDelete serves DELETE /carts/{id}.
func (h *CartHandler) HandleDelete(w http.ResponseWriter, r *http.Request, id string) {
	ctx, span := h.obs.Tracer().StartCartOperation(r.Context(), observability.OpDeleteCart, id)
	defer span.End()

	h.carts.Delete(id)
	h.obs.Metrics().RecordCartOperation(ctx, observability.OpDeleteCart)

	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := response.WriteJSON(w, status, v); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *CartHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := response.WriteError(w, status, code, message); err != nil {
		h.logger.Error("failed to write error response", "error", err)
	}
}
