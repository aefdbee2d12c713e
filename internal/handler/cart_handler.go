package handler

import (
	"net/http"

	"tunitest/internal/cart"
	"tunitest/internal/metrics"
	"tunitest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CartHandler exposes the per-profile cart. The profile comes from the
// X-Cart-Session header or the cart_session cookie; every view sharing
// a profile sees the same state.
type CartHandler struct {
	carts   *cart.Manager
	books   *usecase.BookUsecase
	metrics *metrics.Metrics
}

// DI
func NewCartHandler(carts *cart.Manager, books *usecase.BookUsecase, m *metrics.Metrics) *CartHandler {
	return &CartHandler{carts: carts, books: books, metrics: m}
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.get)
	e.POST("/cart/items", h.addItem)
	e.PATCH("/cart/items/:bookId", h.setQuantity)
	e.DELETE("/cart/items/:bookId", h.removeItem)
	e.DELETE("/cart", h.clear)
}

type cartLineView struct {
	BookID    string  `json:"bookId"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int64   `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

type cartView struct {
	Items       []cartLineView `json:"items"`
	ItemCount   int            `json:"itemCount"`
	Subtotal    float64        `json:"subtotal"`
	DeliveryFee float64        `json:"deliveryFee"`
	TotalPrice  float64        `json:"totalPrice"`
}

func viewOf(s *cart.Store) cartView {
	lines := s.Lines()
	items := make([]cartLineView, len(lines))
	for i, ln := range lines {
		items[i] = cartLineView{
			BookID:    ln.Item.BookID,
			Title:     ln.Item.Title,
			UnitPrice: ln.Item.UnitPrice,
			Quantity:  ln.Quantity,
			LineTotal: ln.Item.UnitPrice * float64(ln.Quantity),
		}
	}
	return cartView{
		Items:       items,
		ItemCount:   len(items),
		Subtotal:    s.Subtotal(),
		DeliveryFee: s.DeliveryFee(),
		TotalPrice:  s.Total(),
	}
}

func (h *CartHandler) get(c echo.Context) error {
	s := h.carts.Get(c.Request().Context(), cartProfile(c))
	return ok(c, http.StatusOK, viewOf(s))
}

type addItemRequest struct {
	BookID   string `json:"bookId"`
	Quantity int64  `json:"quantity"`
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if req.BookID == "" {
		return badRequest(c, "bookId is required")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 1 {
		return badRequest(c, "invalid quantity")
	}

	ctx := c.Request().Context()

	// The snapshot carries title and price so totals stay computable
	// without a catalog round trip.
	b, err := h.books.GetBook(ctx, req.BookID)
	if err != nil {
		return writeError(c, err)
	}

	s := h.carts.Get(ctx, cartProfile(c))
	s.Add(ctx, cart.Item{BookID: b.ID, Title: b.Title, UnitPrice: b.Price}, req.Quantity)
	h.metrics.CartMutation("add")

	return ok(c, http.StatusOK, viewOf(s))
}

type setQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

func (h *CartHandler) setQuantity(c echo.Context) error {
	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	ctx := c.Request().Context()
	s := h.carts.Get(ctx, cartProfile(c))
	s.SetQuantity(ctx, c.Param("bookId"), req.Quantity)
	h.metrics.CartMutation("set_quantity")

	return ok(c, http.StatusOK, viewOf(s))
}

func (h *CartHandler) removeItem(c echo.Context) error {
	ctx := c.Request().Context()
	s := h.carts.Get(ctx, cartProfile(c))
	s.Remove(ctx, c.Param("bookId"))
	h.metrics.CartMutation("remove")

	return ok(c, http.StatusOK, viewOf(s))
}

func (h *CartHandler) clear(c echo.Context) error {
	ctx := c.Request().Context()
	s := h.carts.Get(ctx, cartProfile(c))
	s.Clear(ctx)
	h.metrics.CartMutation("clear")

	return ok(c, http.StatusOK, viewOf(s))
}
