package http

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, wrapParam(name, err)
	}
	return id, nil
}

func sessionAndLine(c echo.Context) (kernel.UUID, kernel.UUID, error) {
	sessionID, sErr := pathUUID(c, "sessionId")
	lineID, lErr := pathUUID(c, "lineId")
	if err := errors.Join(sErr, lErr); err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return sessionID, lineID, nil
}

func wrapParam(name string, err error) error {
	return errs.NewValueIsInvalidErrorWithCause(name, err)
}
