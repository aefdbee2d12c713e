package server

import (
	"time"

	"tunitest/internal/config"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

// New builds the echo instance with the shared middleware stack.
func New(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())

	cors := echomw.CORSConfig{
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.PATCH, echo.DELETE},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Cart-Session"},
	}
	if cfg.FEURL != "" {
		cors.AllowOrigins = []string{cfg.FEURL}
		cors.AllowCredentials = true
	}
	e.Use(echomw.CORSWithConfig(cors))
	e.Use(requestLogger())

	return e
}

func requestLogger() echo.MiddlewareFunc {
	logger := log.WithField("component", "http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			started := time.Now()
			err := next(c)

			logger.WithFields(log.Fields{
				"method":  c.Request().Method,
				"path":    c.Request().URL.Path,
				"status":  c.Response().Status,
				"elapsed": time.Since(started).String(),
			}).Info("request")

			return err
		}
	}
}

func Start(e *echo.Echo, cfg config.Config) error {
	return e.Start(":" + cfg.Port)
}
