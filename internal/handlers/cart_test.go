package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabkhara/storefront/internal/cart"
	"github.com/mabkhara/storefront/internal/observability"
)

func testCartHandler(t *testing.T) *CartHandler {
	t.Helper()

	carts := cart.NewManager(cart.DefaultAddLimits(), cart.DefaultSetLimits())
	return NewCartHandler(carts, testStore(t), cart.DefaultPricing(),
		slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewProvider(nil))
}

type cartBody struct {
	ID    string `json:"id"`
	Items []struct {
		Product struct {
			ID string `json:"id"`
		} `json:"product"`
		Quantity int `json:"quantity"`
	} `json:"items"`
	Totals struct {
		Subtotal decimal.Decimal `json:"subtotal"`
		Shipping decimal.Decimal `json:"shipping"`
		Tax      decimal.Decimal `json:"tax"`
		Total    decimal.Decimal `json:"total"`
	} `json:"totals"`
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, label string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s: expected %s, got %s", label, want, got)
	}
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartBody {
	t.Helper()
	var body cartBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func createCart(t *testing.T, h *CartHandler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, httptest.NewRequest(http.MethodPost, "/carts", nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeCart(t, rec).ID
}

func addItem(t *testing.T, h *CartHandler, cartID, productID string, qty int) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"productId": "` + productID + `", "quantity": ` + strconv.Itoa(qty) + `}`
	rec := httptest.NewRecorder()
	h.HandleAddItem(rec, httptest.NewRequest(http.MethodPost, "/carts/"+cartID+"/items",
		strings.NewReader(body)), cartID)
	return rec
}

func TestCreateCartSetsLocation(t *testing.T) {
	h := testCartHandler(t)

	rec := httptest.NewRecorder()
	h.HandleCreate(rec, httptest.NewRequest(http.MethodPost, "/carts", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeCart(t, rec)
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "/carts/"+body.ID, rec.Header().Get("Location"))
	assert.Empty(t, body.Items)
}

func TestAddItemAndDerivedTotals(t *testing.T) {
	h := testCartHandler(t)
	id := createCart(t, h)

	// 250 × 2 = 500: above the free-shipping threshold.
	rec := addItem(t, h, id, "oud-cambodi", 2)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeCart(t, rec)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assertDecimal(t, "500", body.Totals.Subtotal, "subtotal")
	assertDecimal(t, "0", body.Totals.Shipping, "shipping")
	assertDecimal(t, "75", body.Totals.Tax, "tax")
	assertDecimal(t, "575", body.Totals.Total, "total")
}

func TestAddItemBelowThresholdPaysShipping(t *testing.T) {
	h := testCartHandler(t)
	id := createCart(t, h)

	rec := addItem(t, h, id, "musk-tahara", 1)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeCart(t, rec)
	assertDecimal(t, "45", body.Totals.Subtotal, "subtotal")
	assertDecimal(t, "25", body.Totals.Shipping, "shipping")
	assertDecimal(t, "6.75", body.Totals.Tax, "tax")
	assertDecimal(t, "76.75", body.Totals.Total, "total")
}

func TestAddItemUnknownProductIs404(t *testing.T) {
	h := testCartHandler(t)
	id := createCart(t, h)

	rec := addItem(t, h, id, "missing", 1)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddItemUnknownCartIs404(t *testing.T) {
	h := testCartHandler(t)

	rec := addItem(t, h, "no-such-cart", "oud-cambodi", 1)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddItemNegativeDeltaFloorsAtOne(t *testing.T) {
	h := testCartHandler(t)
	id := createCart(t, h)

	rec := addItem(t, h, id, "oud-cambodi", -5)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeCart(t, rec)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 1, body.Items[0].Quantity)
}

func TestAddItemRequiresProductID(t *testing.T) {
	h := testCartHandler(t)
	id := createCart(t, h)

	rec := httptest.NewRecorder()
	h.HandleAddItem(rec, httptest.NewRequest(http.MethodPost, "/carts/"+id+"/items",
		strings.NewReader(`{"quantity": 1}`)), id)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetQuantityClamped(t *testing.T) {
	h := testCartHandler(t)
	id := createCart(t, h)
	addItem(t, h, id, "oud-cambodi", 1)

	rec := httptest.NewRecorder()
	h.HandleSetQuantity(rec, httptest.NewRequest(http.MethodPut, "/carts/"+id+"/items/oud-cambodi",
		strings.NewReader(`{"quantity": 99}`)), id, "oud-cambodi")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeCart(t, rec)
	assert.Equal(t, 10, body.Items[0].Quantity, "set path caps at the stepper maximum")
}

func TestSetQuantityForAbsentItemIs404(t *testing.T) {
	h := testCartHandler(t)
	id := createCart(t, h)

	rec := httptest.NewRecorder()
	h.HandleSetQuantity(rec, httptest.NewRequest(http.MethodPut, "/carts/"+id+"/items/oud-cambodi",
		strings.NewReader(`{"quantity": 2}`)), id, "oud-cambodi")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveItemAbsentProductSucceeds(t *testing.T) {
	h := testCartHandler(t)
	id := createCart(t, h)
	addItem(t, h, id, "oud-cambodi", 2)

	rec := httptest.NewRecorder()
	h.HandleRemoveItem(rec, httptest.NewRequest(http.MethodDelete, "/carts/"+id+"/items/missing", nil), id, "missing")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeCart(t, rec)
	assert.Len(t, body.Items, 1, "removing an absent product leaves the cart unchanged")
}

func TestRemoveItemDeletesEntry(t *testing.T) {
	h := testCartHandler(t)
	id := createCart(t, h)
	addItem(t, h, id, "oud-cambodi", 2)
	addItem(t, h, id, "musk-tahara", 1)

	rec := httptest.NewRecorder()
	h.HandleRemoveItem(rec, httptest.NewRequest(http.MethodDelete, "/carts/"+id+"/items/oud-cambodi", nil), id, "oud-cambodi")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeCart(t, rec)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "musk-tahara", body.Items[0].Product.ID)
}

func TestDeleteCart(t *testing.T) {
	h := testCartHandler(t)
	id := createCart(t, h)

	rec := httptest.NewRecorder()
	h.HandleDelete(rec, httptest.NewRequest(http.MethodDelete, "/carts/"+id, nil), id)
	require.Equal(t, http.StatusNoContent, rec.Code)

	get := httptest.NewRecorder()
	h.HandleGet(get, httptest.NewRequest(http.MethodGet, "/carts/"+id, nil), id)
	assert.Equal(t, http.StatusNotFound, get.Code)
}
