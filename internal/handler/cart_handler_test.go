package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"tunitest/internal/cart"
	"tunitest/internal/domain/model"
	"tunitest/internal/handler"
	repo "tunitest/internal/repository"
	"tunitest/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type bookRepoStub struct {
	books map[string]model.Book
}

func (s *bookRepoStub) List(context.Context, repo.BookListQuery) ([]model.Book, error) {
	return nil, nil
}
func (s *bookRepoStub) FindByID(_ context.Context, id string) (model.Book, error) {
	b, ok := s.books[id]
	if !ok {
		return model.Book{}, repo.ErrNotFound
	}
	return b, nil
}
func (s *bookRepoStub) Create(_ context.Context, b model.Book) (model.Book, error) { return b, nil }
func (s *bookRepoStub) Update(context.Context, model.Book) error                   { return nil }
func (s *bookRepoStub) Delete(context.Context, string) error                       { return nil }

type cartViewOut struct {
	Items []struct {
		BookID    string  `json:"bookId"`
		Title     string  `json:"title"`
		UnitPrice float64 `json:"unitPrice"`
		Quantity  int64   `json:"quantity"`
		LineTotal float64 `json:"lineTotal"`
	} `json:"items"`
	ItemCount   int     `json:"itemCount"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	TotalPrice  float64 `json:"totalPrice"`
}

func newCartAPI() *echo.Echo {
	books := &bookRepoStub{books: map[string]model.Book{
		"book-a": {ID: "book-a", Title: "A", Price: 20},
		"book-b": {ID: "book-b", Title: "B", Price: 15},
	}}

	carts := cart.NewManager(cart.NewMemoryBackend(), cart.FeePolicy{})

	e := echo.New()
	handler.NewCartHandler(carts, usecase.NewBookUsecase(books), newTestMetrics()).RegisterRoutes(e)
	return e
}

func cartOf(t *testing.T, env envelope) cartViewOut {
	t.Helper()
	var v cartViewOut
	assert.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

var profileHeader = map[string]string{"X-Cart-Session": "p1"}

func TestCartHandler_AddAndGet(t *testing.T) {
	e := newCartAPI()

	rec, env := doJSON(e, http.MethodPost, "/cart/items", `{"bookId":"book-a","quantity":2}`, profileHeader)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	v := cartOf(t, env)
	assert.Equal(t, 1, v.ItemCount)
	assert.Equal(t, 40.0, v.Subtotal)

	// the snapshot carries title and price from the catalog
	assert.Equal(t, "A", v.Items[0].Title)
	assert.Equal(t, 20.0, v.Items[0].UnitPrice)

	_, env = doJSON(e, http.MethodGet, "/cart", "", profileHeader)
	v = cartOf(t, env)
	assert.Equal(t, 1, v.ItemCount)
	assert.Equal(t, int64(2), v.Items[0].Quantity)
}

func TestCartHandler_AddMergesSameBook(t *testing.T) {
	e := newCartAPI()

	doJSON(e, http.MethodPost, "/cart/items", `{"bookId":"book-a","quantity":1}`, profileHeader)
	_, env := doJSON(e, http.MethodPost, "/cart/items", `{"bookId":"book-a","quantity":2}`, profileHeader)

	v := cartOf(t, env)
	assert.Equal(t, 1, v.ItemCount)
	assert.Equal(t, int64(3), v.Items[0].Quantity)
}

func TestCartHandler_AddDefaultsQuantityToOne(t *testing.T) {
	e := newCartAPI()

	_, env := doJSON(e, http.MethodPost, "/cart/items", `{"bookId":"book-b"}`, profileHeader)

	v := cartOf(t, env)
	assert.Equal(t, int64(1), v.Items[0].Quantity)
}

func TestCartHandler_AddUnknownBook(t *testing.T) {
	e := newCartAPI()

	rec, env := doJSON(e, http.MethodPost, "/cart/items", `{"bookId":"ghost"}`, profileHeader)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Livre non trouvé", env.Error)
}

func TestCartHandler_SetQuantityZeroRemoves(t *testing.T) {
	e := newCartAPI()

	doJSON(e, http.MethodPost, "/cart/items", `{"bookId":"book-a","quantity":2}`, profileHeader)
	_, env := doJSON(e, http.MethodPatch, "/cart/items/book-a", `{"quantity":0}`, profileHeader)

	v := cartOf(t, env)
	assert.Equal(t, 0, v.ItemCount)
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	e := newCartAPI()

	doJSON(e, http.MethodPost, "/cart/items", `{"bookId":"book-a","quantity":2}`, profileHeader)
	doJSON(e, http.MethodPost, "/cart/items", `{"bookId":"book-b","quantity":1}`, profileHeader)

	_, env := doJSON(e, http.MethodDelete, "/cart/items/book-a", "", profileHeader)
	v := cartOf(t, env)
	assert.Equal(t, 1, v.ItemCount)
	assert.Equal(t, "book-b", v.Items[0].BookID)

	_, env = doJSON(e, http.MethodDelete, "/cart", "", profileHeader)
	v = cartOf(t, env)
	assert.Equal(t, 0, v.ItemCount)
	assert.Equal(t, 0.0, v.TotalPrice)
}

func TestCartHandler_ProfilesAreIsolated(t *testing.T) {
	e := newCartAPI()

	doJSON(e, http.MethodPost, "/cart/items", `{"bookId":"book-a"}`, profileHeader)

	_, env := doJSON(e, http.MethodGet, "/cart", "", map[string]string{"X-Cart-Session": "p2"})
	v := cartOf(t, env)
	assert.Equal(t, 0, v.ItemCount)
}

func TestCartHandler_MintsCookieWithoutSession(t *testing.T) {
	e := newCartAPI()

	rec, _ := doJSON(e, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name == "cart_session" && ck.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected cart_session cookie to be set")
}
