package handler

import (
	"net/http"

	"tunitest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// POST /orders is the storefront submission endpoint; the rest of the
// order lifecycle lives behind the admin group.
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", h.create)
}

func (h *OrderHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/orders", h.list)
	g.GET("/orders/:id", h.detail)
	g.PATCH("/orders/:id", h.updateStatus)
	g.DELETE("/orders/:id", h.remove)
}

type createOrderRequest struct {
	BookIDs       []string `json:"bookIds"`
	Quantities    []int64  `json:"quantities"`
	TotalPrice    float64  `json:"totalPrice"`
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	CustomerPhone string   `json:"customerPhone"`
	Address       string   `json:"address"`
	PaymentMethod string   `json:"paymentMethod"`
}

func (h *OrderHandler) create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	o, err := h.uc.Create(c.Request().Context(), usecase.CreateOrderInput{
		BookIDs:       req.BookIDs,
		Quantities:    req.Quantities,
		TotalPrice:    req.TotalPrice,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}

	return okMessage(c, http.StatusCreated, o, "Commande créée avec succès")
}

func (h *OrderHandler) list(c echo.Context) error {
	orders, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return okList(c, orders, len(orders))
}

func (h *OrderHandler) detail(c echo.Context) error {
	o, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return ok(c, http.StatusOK, o)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	o, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return writeError(c, err)
	}

	return ok(c, http.StatusOK, o)
}

func (h *OrderHandler) remove(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return okMessage(c, http.StatusOK, nil, "Commande supprimée")
}
