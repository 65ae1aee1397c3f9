package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	dom "Taller/internal/domain"
	"Taller/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeShopStore keeps invoices and their items in one place so deleting
// an invoice can cascade to its items, like the foreign key does.
type fakeShopStore struct {
	invoices   map[int64]dom.Invoice
	items      map[int64]dom.InvoiceItem
	nextInvID  int64
	nextItemID int64
	failList   bool
}

func newFakeShopStore() *fakeShopStore {
	return &fakeShopStore{
		invoices: make(map[int64]dom.Invoice),
		items:    make(map[int64]dom.InvoiceItem),
	}
}

type invoiceStore struct{ *fakeShopStore }

func (s invoiceStore) List(ctx context.Context) ([]dom.Invoice, error) {
	if s.failList {
		return nil, errors.New("connection refused")
	}
	var list []dom.Invoice
	for id := int64(1); id <= s.nextInvID; id++ {
		if inv, ok := s.invoices[id]; ok {
			list = append(list, inv)
		}
	}
	return list, nil
}

func (s invoiceStore) GetByID(ctx context.Context, id int64) (dom.Invoice, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return dom.Invoice{}, pgx.ErrNoRows
	}
	return inv, nil
}

func (s invoiceStore) Create(ctx context.Context, in dom.Invoice) (dom.Invoice, error) {
	s.nextInvID++
	in.ID = s.nextInvID
	s.invoices[in.ID] = in
	return in, nil
}

func (s invoiceStore) Update(ctx context.Context, id int64, in dom.Invoice) (dom.Invoice, error) {
	if _, ok := s.invoices[id]; !ok {
		return dom.Invoice{}, pgx.ErrNoRows
	}
	in.ID = id
	s.invoices[id] = in
	return in, nil
}

func (s invoiceStore) Delete(ctx context.Context, id int64) (dom.Invoice, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return dom.Invoice{}, pgx.ErrNoRows
	}
	delete(s.invoices, id)
	for itemID, it := range s.items {
		if it.InvoiceID == id {
			delete(s.items, itemID)
		}
	}
	return inv, nil
}

type itemStore struct{ *fakeShopStore }

func (s itemStore) List(ctx context.Context) ([]dom.InvoiceItem, error) {
	var list []dom.InvoiceItem
	for id := int64(1); id <= s.nextItemID; id++ {
		if it, ok := s.items[id]; ok {
			list = append(list, it)
		}
	}
	return list, nil
}

func (s itemStore) GetByID(ctx context.Context, id int64) (dom.InvoiceItem, error) {
	it, ok := s.items[id]
	if !ok {
		return dom.InvoiceItem{}, pgx.ErrNoRows
	}
	return it, nil
}

func (s itemStore) Create(ctx context.Context, it dom.InvoiceItem) (dom.InvoiceItem, error) {
	s.nextItemID++
	it.ID = s.nextItemID
	s.items[it.ID] = it
	return it, nil
}

func (s itemStore) Update(ctx context.Context, id int64, it dom.InvoiceItem) (dom.InvoiceItem, error) {
	if _, ok := s.items[id]; !ok {
		return dom.InvoiceItem{}, pgx.ErrNoRows
	}
	it.ID = id
	s.items[id] = it
	return it, nil
}

func (s itemStore) Delete(ctx context.Context, id int64) (dom.InvoiceItem, error) {
	it, ok := s.items[id]
	if !ok {
		return dom.InvoiceItem{}, pgx.ErrNoRows
	}
	delete(s.items, id)
	return it, nil
}

func newInvoiceTestRouter(store *fakeShopStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	invH := NewInvoiceHandler(service.NewInvoiceService(invoiceStore{store}))
	g := r.Group("/invoice")
	g.GET("/", invH.List)
	g.POST("/", invH.Create)
	g.GET("/:id", invH.GetByID)
	g.PUT("/:id", invH.Update)
	g.DELETE("/:id", invH.Delete)

	itemH := NewInvoiceItemHandler(service.NewInvoiceItemService(itemStore{store}))
	ig := r.Group("/invoice_item")
	ig.GET("/", itemH.List)
	ig.POST("/", itemH.Create)
	ig.GET("/:id", itemH.GetByID)
	ig.PUT("/:id", itemH.Update)
	ig.DELETE("/:id", itemH.Delete)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInvoiceLifecycle(t *testing.T) {
	r := newInvoiceTestRouter(newFakeShopStore())

	body := `{"client_id":1,"issued_at":"2024-01-01 10:00:00","total":100.0,"iva":21.0,"total_with_iva":121.0}`
	w := doJSON(t, r, http.MethodPost, "/invoice/", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, float64(1), created["client_id"])
	assert.Equal(t, "2024-01-01 10:00:00", created["issued_at"])
	assert.Equal(t, 121.0, created["total_with_iva"])

	id := int64(created["invoice_id"].(float64))
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/invoice/%d", id), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, string(mustJSON(t, created)), w.Body.String())

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/invoice/%d", id), "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/invoice/%d", id), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestInvoiceCreateBadDate(t *testing.T) {
	r := newInvoiceTestRouter(newFakeShopStore())

	body := `{"client_id":1,"issued_at":"2024-01-01","total":100.0,"iva":21.0,"total_with_iva":121.0}`
	w := doJSON(t, r, http.MethodPost, "/invoice/", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceCreateMissingField(t *testing.T) {
	r := newInvoiceTestRouter(newFakeShopStore())

	body := `{"client_id":1,"issued_at":"2024-01-01 10:00:00","iva":21.0,"total_with_iva":121.0}`
	w := doJSON(t, r, http.MethodPost, "/invoice/", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceCreateZeroTotalAllowed(t *testing.T) {
	r := newInvoiceTestRouter(newFakeShopStore())

	body := `{"client_id":1,"issued_at":"2024-01-01 10:00:00","total":0.0,"iva":0.0,"total_with_iva":0.0}`
	w := doJSON(t, r, http.MethodPost, "/invoice/", body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestInvoiceInvalidID(t *testing.T) {
	r := newInvoiceTestRouter(newFakeShopStore())

	for _, path := range []string{"/invoice/abc", "/invoice/0", "/invoice/-1"} {
		w := doJSON(t, r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())
	}
}

func TestInvoiceListEmptyAndFault(t *testing.T) {
	store := newFakeShopStore()
	r := newInvoiceTestRouter(store)

	w := doJSON(t, r, http.MethodGet, "/invoice/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	store.failList = true
	w = doJSON(t, r, http.MethodGet, "/invoice/", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestInvoiceUpdateNotFound(t *testing.T) {
	r := newInvoiceTestRouter(newFakeShopStore())

	body := `{"client_id":1,"issued_at":"2024-01-01 10:00:00","total":100.0,"iva":21.0,"total_with_iva":121.0}`
	w := doJSON(t, r, http.MethodPut, "/invoice/42", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceDeleteCascadesToItems(t *testing.T) {
	r := newInvoiceTestRouter(newFakeShopStore())

	w := doJSON(t, r, http.MethodPost, "/invoice/",
		`{"client_id":1,"issued_at":"2024-01-01 10:00:00","total":100.0,"iva":21.0,"total_with_iva":121.0}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var inv map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inv))
	invID := int64(inv["invoice_id"].(float64))

	w = doJSON(t, r, http.MethodPost, "/invoice_item/",
		fmt.Sprintf(`{"description":"oil filter","cost":15.5,"invoice_id":%d}`, invID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var item map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	itemID := int64(item["item_id"].(float64))
	assert.Nil(t, item["task_id"])

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/invoice/%d", invID), "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/invoice_item/%d", itemID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
