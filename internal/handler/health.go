// Package handler implements the HTTP dispatcher: it decodes requests,
// drives the seat inventory manager and the stores, and maps their
// sentinel errors onto HTTP responses.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is the liveness endpoint used by load balancers and monitoring.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
