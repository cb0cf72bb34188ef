package http

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewEcho builds the echo instance with recovery and request logging.
func NewEcho(logger *slog.Logger, logLevel log.Lvl) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(logLevel)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))

	return e
}

// RegisterHandlers mounts the API, health, metrics and docs routes.
func RegisterHandlers(e *echo.Echo, s *Server, doc *openapi3.T) error {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	registerDocs(e)

	validator, err := RequestValidator(doc)
	if err != nil {
		return err
	}

	api := e.Group("/api/v1", validator)

	api.GET("/zones", s.GetZones)
	api.GET("/zones/locate", s.LocateZone)

	api.POST("/checkout/sessions", s.StartCheckout)
	api.GET("/checkout/sessions/:sessionId", s.GetCheckoutSession)
	api.POST("/checkout/sessions/:sessionId/lines", s.AddCartLine)
	api.PATCH("/checkout/sessions/:sessionId/lines/:lineId", s.ChangeCartLine)
	api.DELETE("/checkout/sessions/:sessionId/lines/:lineId", s.RemoveCartLine)
	api.POST("/checkout/sessions/:sessionId/proceed", s.Proceed)
	api.POST("/checkout/sessions/:sessionId/back", s.Back)
	api.PUT("/checkout/sessions/:sessionId/customer", s.UpdateCustomer)
	api.PUT("/checkout/sessions/:sessionId/location", s.SelectLocation)
	api.POST("/checkout/sessions/:sessionId/confirm", s.ConfirmCheckout)

	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId/status", s.ChangeOrderStatus)

	return nil
}
