package handler

import (
	"net/http"

	"tunitest/internal/cart"
	"tunitest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// POST /checkout submits the profile's current cart with the contact
// form. On success the cart is cleared; on failure it is preserved so
// the customer can resubmit.
type CheckoutHandler struct {
	carts *cart.Manager
	uc    *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(carts *cart.Manager, uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, uc: uc}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/checkout", h.submit)
}

type checkoutRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
}

func (h *CheckoutHandler) submit(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}

	ctx := c.Request().Context()
	s := h.carts.Get(ctx, cartProfile(c))

	o, err := h.uc.Submit(ctx, s, usecase.CheckoutInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}

	return okMessage(c, http.StatusCreated, o, "Commande créée avec succès")
}
