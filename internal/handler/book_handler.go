package handler

import (
	"net/http"

	"tunitest/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /books is the public catalog; the admin routes manage it.
type BookHandler struct {
	uc *usecase.BookUsecase
}

// DI
func NewBookHandler(uc *usecase.BookUsecase) *BookHandler {
	return &BookHandler{uc: uc}
}

func (h *BookHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/books", h.list)
	e.GET("/books/:id", h.detail)
}

func (h *BookHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/books", h.create)
	g.PUT("/books/:id", h.update)
	g.DELETE("/books/:id", h.remove)
}

func (h *BookHandler) list(c echo.Context) error {
	books, err := h.uc.ListBooks(c.Request().Context(), usecase.ListBooksInput{
		Category: c.QueryParam("category"),
		Level:    c.QueryParam("level"),
		Language: c.QueryParam("language"),
		Q:        c.QueryParam("q"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return okList(c, books, len(books))
}

func (h *BookHandler) detail(c echo.Context) error {
	b, err := h.uc.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return ok(c, http.StatusOK, b)
}

func (h *BookHandler) create(c echo.Context) error {
	var in usecase.BookInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	b, err := h.uc.CreateBook(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return ok(c, http.StatusCreated, b)
}

func (h *BookHandler) update(c echo.Context) error {
	var in usecase.BookInput
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "invalid body")
	}

	b, err := h.uc.UpdateBook(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}

	return ok(c, http.StatusOK, b)
}

func (h *BookHandler) remove(c echo.Context) error {
	if err := h.uc.DeleteBook(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}

	return okMessage(c, http.StatusOK, nil, "Livre supprimé")
}
