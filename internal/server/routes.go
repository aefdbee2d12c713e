package server

import (
	"tunitest/internal/config"
	"tunitest/internal/handler"
	"tunitest/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything RegisterRoutes needs to wire.
type Handlers struct {
	Book     *handler.BookHandler
	Slider   *handler.SliderHandler
	Partner  *handler.PartnerHandler
	Order    *handler.OrderHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Auth     *handler.AuthHandler
	Health   *handler.HealthHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	// public
	h.Book.RegisterRoutes(e)
	h.Slider.RegisterRoutes(e)
	h.Partner.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Checkout.RegisterRoutes(e)
	h.Auth.RegisterRoutes(e)
	h.Health.RegisterRoutes(e)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// back office
	admin := e.Group("/admin", middleware.AuthJWT(cfg), middleware.AdminRoleGuard())
	h.Auth.RegisterAdminRoutes(admin)
	h.Book.RegisterAdminRoutes(admin)
	h.Slider.RegisterAdminRoutes(admin)
	h.Partner.RegisterAdminRoutes(admin)
	h.Order.RegisterAdminRoutes(admin)
}
