package handler

import (
	"net/http"

	"tunitest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Partner onboarding requests. Anyone can submit; admins review.
type PartnerHandler struct {
	uc *usecase.PartnerUsecase
}

// DI
func NewPartnerHandler(uc *usecase.PartnerUsecase) *PartnerHandler {
	return &PartnerHandler{uc: uc}
}

func (h *PartnerHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/partners", h.create)
}

func (h *PartnerHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/partners", h.list)
	g.DELETE("/partners/:id", h.remove)
}

func (h *PartnerHandler) create(c echo.Context) error {
	var in usecase.PartnerInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	p, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return okMessage(c, http.StatusCreated, p, "Demande envoyée avec succès")
}

func (h *PartnerHandler) list(c echo.Context) error {
	partners, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return okList(c, partners, len(partners))
}

func (h *PartnerHandler) remove(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return okMessage(c, http.StatusOK, nil, "Partenaire supprimé")
}
