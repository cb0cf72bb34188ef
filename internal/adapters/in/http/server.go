package http

import (
	"log/slog"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Handlers are the use cases the API exposes.
type Handlers struct {
	StartCheckout      commands.StartCheckoutCommandHandler
	AddCartLine        commands.AddCartLineCommandHandler
	ChangeCartLine     commands.ChangeCartLineCommandHandler
	RemoveCartLine     commands.RemoveCartLineCommandHandler
	ChangeCheckoutStep commands.ChangeCheckoutStepCommandHandler
	UpdateCustomer     commands.UpdateCustomerCommandHandler
	SelectLocation     commands.SelectLocationCommandHandler
	ConfirmCheckout    commands.ConfirmCheckoutCommandHandler
	ChangeOrderStatus  commands.ChangeOrderStatusCommandHandler

	GetCheckoutSession queries.GetCheckoutSessionQueryHandler
	GetDeliveryZones   queries.GetDeliveryZonesQueryHandler
	LocateZone         queries.LocateZoneQueryHandler
	GetPendingOrders   queries.GetPendingOrdersQueryHandler
	GetOrder           queries.GetOrderQueryHandler
}

// Server adapts HTTP requests to commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http"),
	}
}

// GetZones handles GET /api/v1/zones.
func (s *Server) GetZones(c echo.Context) error {
	zones, err := s.h.GetDeliveryZones.Handle(c.Request().Context(), queries.NewGetDeliveryZonesQuery())
	if err != nil {
		return writeError(c, s.logger, err)
	}
	return c.JSON(http.StatusOK, toZones(zones))
}

// LocateZone handles GET /api/v1/zones/locate?lat=&lng=.
func (s *Server) LocateZone(c echo.Context) error {
	var point LatLng
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &point.Lat).
		MustFloat64("lng", &point.Lng).
		BindError(); err != nil {
		return jsonError(c, http.StatusBadRequest, "lat and lng are required numbers")
	}

	query, err := queries.NewLocateZoneQuery(point.Lat, point.Lng)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	match, err := s.h.LocateZone.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}
	return c.JSON(http.StatusOK, toZoneMatch(match))
}

// StartCheckout handles POST /api/v1/checkout/sessions.
func (s *Server) StartCheckout(c echo.Context) error {
	cmd, err := commands.NewStartCheckoutCommand(kernel.NewUUID())
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.h.StartCheckout.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}
	return s.renderSession(c, http.StatusCreated, cmd.SessionID())
}

// GetCheckoutSession handles GET /api/v1/checkout/sessions/:sessionId.
func (s *Server) GetCheckoutSession(c echo.Context) error {
	sessionID, err := pathUUID(c, "sessionId")
	if err != nil {
		return writeError(c, s.logger, err)
	}
	return s.renderSession(c, http.StatusOK, sessionID)
}

// AddCartLine handles POST /api/v1/checkout/sessions/:sessionId/lines.
func (s *Server) AddCartLine(c echo.Context) error {
	sessionID, err := pathUUID(c, "sessionId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	var body NewCartLine
	if err = c.Bind(&body); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}

	productID, err := kernel.UUIDFromBytes(body.ProductID[:])
	if err != nil {
		return writeError(c, s.logger, wrapParam("productId", err))
	}

	cmd, err := commands.NewAddCartLineCommand(sessionID, productID, body.Quantity, body.Size)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	line, err := s.h.AddCartLine.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err)
	}
	return c.JSON(http.StatusCreated, toCartLine(line))
}

// ChangeCartLine handles PATCH /api/v1/checkout/sessions/:sessionId/lines/:lineId.
func (s *Server) ChangeCartLine(c echo.Context) error {
	sessionID, lineID, err := sessionAndLine(c)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	var body CartLinePatch
	if err = c.Bind(&body); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewChangeCartLineCommand(sessionID, lineID, body.Quantity, body.Size)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.h.ChangeCartLine.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}
	return s.renderSession(c, http.StatusOK, sessionID)
}

// RemoveCartLine handles DELETE /api/v1/checkout/sessions/:sessionId/lines/:lineId.
func (s *Server) RemoveCartLine(c echo.Context) error {
	sessionID, lineID, err := sessionAndLine(c)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	cmd, err := commands.NewRemoveCartLineCommand(sessionID, lineID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.h.RemoveCartLine.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}
	return s.renderSession(c, http.StatusOK, sessionID)
}

// Proceed handles POST /api/v1/checkout/sessions/:sessionId/proceed.
func (s *Server) Proceed(c echo.Context) error {
	return s.changeStep(c, checkout.StepConfirming)
}

// Back handles POST /api/v1/checkout/sessions/:sessionId/back.
func (s *Server) Back(c echo.Context) error {
	return s.changeStep(c, checkout.StepReviewing)
}

// UpdateCustomer handles PUT /api/v1/checkout/sessions/:sessionId/customer.
func (s *Server) UpdateCustomer(c echo.Context) error {
	sessionID, err := pathUUID(c, "sessionId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	var body Customer
	if err = c.Bind(&body); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(sessionID, body.FirstName, body.LastName)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.h.UpdateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}
	return s.renderSession(c, http.StatusOK, sessionID)
}

// SelectLocation handles PUT /api/v1/checkout/sessions/:sessionId/location.
func (s *Server) SelectLocation(c echo.Context) error {
	sessionID, err := pathUUID(c, "sessionId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	var body LatLng
	if err = c.Bind(&body); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSelectLocationCommand(sessionID, body.Lat, body.Lng)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	quote, err := s.h.SelectLocation.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err)
	}
	return c.JSON(http.StatusOK, toShippingQuote(quote))
}

// ConfirmCheckout handles POST /api/v1/checkout/sessions/:sessionId/confirm.
func (s *Server) ConfirmCheckout(c echo.Context) error {
	sessionID, err := pathUUID(c, "sessionId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	cmd, err := commands.NewConfirmCheckoutCommand(sessionID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	result, err := s.h.ConfirmCheckout.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, err)
	}
	return c.JSON(http.StatusCreated, toConfirmation(result))
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(c echo.Context) error {
	orders, err := s.h.GetPendingOrders.Handle(c.Request().Context(), queries.NewGetPendingOrdersQuery())
	if err != nil {
		return writeError(c, s.logger, err)
	}
	return c.JSON(http.StatusOK, toOrderSummaries(orders))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}
	return c.JSON(http.StatusOK, toOrder(o))
}

// ChangeOrderStatus handles PUT /api/v1/orders/:orderId/status.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "orderId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	var body StatusChange
	if err = c.Bind(&body); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) changeStep(c echo.Context, target checkout.Step) error {
	sessionID, err := pathUUID(c, "sessionId")
	if err != nil {
		return writeError(c, s.logger, err)
	}

	cmd, err := commands.NewChangeCheckoutStepCommand(sessionID, target)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	if err = s.h.ChangeCheckoutStep.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, err)
	}
	return s.renderSession(c, http.StatusOK, sessionID)
}

func (s *Server) renderSession(c echo.Context, status int, sessionID kernel.UUID) error {
	query, err := queries.NewGetCheckoutSessionQuery(sessionID)
	if err != nil {
		return writeError(c, s.logger, err)
	}

	session, err := s.h.GetCheckoutSession.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, err)
	}
	return c.JSON(status, toCheckoutSession(session))
}
