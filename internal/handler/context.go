package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contacthub/internal/auth"
)

// sessionClaims extracts the verified session claims placed by the JWT
// middleware. Requests without valid claims never reach the handlers, so a
// miss here means a wiring bug rather than a client error.
func sessionClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}
