package handler

import (
	"net/http"

	"tunitest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Homepage hero sliders. Reading is public, writing is admin only.
type SliderHandler struct {
	uc *usecase.SliderUsecase
}

// DI
func NewSliderHandler(uc *usecase.SliderUsecase) *SliderHandler {
	return &SliderHandler{uc: uc}
}

func (h *SliderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/sliders", h.list)
}

func (h *SliderHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/sliders", h.create)
	g.PUT("/sliders/:id", h.update)
	g.DELETE("/sliders/:id", h.remove)
}

func (h *SliderHandler) list(c echo.Context) error {
	sliders, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return okList(c, sliders, len(sliders))
}

func (h *SliderHandler) create(c echo.Context) error {
	var in usecase.SliderInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	s, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return ok(c, http.StatusCreated, s)
}

func (h *SliderHandler) update(c echo.Context) error {
	var in usecase.SliderInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	s, err := h.uc.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}

	return ok(c, http.StatusOK, s)
}

func (h *SliderHandler) remove(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return okMessage(c, http.StatusOK, nil, "Slider supprimé")
}
