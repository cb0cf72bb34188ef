package http

import (
	"errors"
	"log/slog"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	messagePersistenceFailed = "Your order could not be placed. Please try again."
	messageInternal          = "Something went wrong."
)

// writeError maps an application error to a status code and JSON body.
// Unclassified errors are logged and reported as 500 without details.
func writeError(c echo.Context, logger *slog.Logger, err error) error {
	var (
		validation *checkout.ValidationError
		httpErr    *echo.HTTPError
	)

	switch {
	case errors.As(err, &validation):
		fields := make([]string, len(validation.Fields))
		for i, f := range validation.Fields {
			fields[i] = string(f)
		}
		return c.JSON(http.StatusUnprocessableEntity, Error{
			Code:          http.StatusUnprocessableEntity,
			Message:       validation.Error(),
			Fields:        fields,
			NeedsLocation: validation.NeedsLocation(),
		})
	case errors.Is(err, commands.ErrOrderPersistenceFailed):
		logger.ErrorContext(c.Request().Context(), "order persistence failed", "error", err)
		return jsonError(c, http.StatusBadGateway, messagePersistenceFailed)
	case errors.Is(err, checkout.ErrCartIsEmpty):
		return jsonError(c, http.StatusUnprocessableEntity, "Your cart is empty.")
	case errors.Is(err, checkout.ErrNotConfirming),
		errors.Is(err, product.ErrProductIsInactive),
		errors.Is(err, order.ErrIllegalTransition):
		return jsonError(c, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return jsonError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &httpErr):
		return jsonError(c, httpErr.Code, http.StatusText(httpErr.Code))
	default:
		logger.ErrorContext(c.Request().Context(), "request failed", "error", err)
		return jsonError(c, http.StatusInternalServerError, messageInternal)
	}
}

func jsonError(c echo.Context, code int, message string) error {
	return c.JSON(code, Error{Code: code, Message: message})
}
