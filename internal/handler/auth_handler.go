package handler

import (
	"net/http"

	"tunitest/internal/middleware"
	"tunitest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Admin login for the back office.
type AuthHandler struct {
	uc *usecase.AuthUsecase
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/admin/login", h.login)
}

func (h *AuthHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/me", h.me)
}

func (h *AuthHandler) login(c echo.Context) error {
	var in usecase.LoginInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	out, err := h.uc.Login(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return ok(c, http.StatusOK, out)
}

type meResponse struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

func (h *AuthHandler) me(c echo.Context) error {
	userID, _ := c.Get(middleware.CtxUserIDKey).(string)
	role, _ := c.Get(middleware.CtxUserRoleKey).(string)

	return ok(c, http.StatusOK, meResponse{UserID: userID, Role: role})
}
