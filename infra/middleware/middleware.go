package middleware

import (
	"net/http"
	"strings"

	"logistics/infra/token"

	"github.com/labstack/echo/v4"
)

// CheckAuthorization verifies the bearer token with the maker built once
// at container setup and exposes the payload on the request context.
func CheckAuthorization(maker token.Maker) echo.MiddlewareFunc {
	return func(handlerFunc echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {

			bearerToken := c.Request().Header.Get("Authorization")
			tokenStr := strings.Replace(bearerToken, "Bearer ", "", 1)

			tokenPayload, err := maker.VerifyToken(tokenStr)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, err.Error())
			}
			c.Set("token_id", tokenPayload.ID)
			c.Set("token_username", tokenPayload.Username)
			c.Set("token_expired_at", tokenPayload.ExpiredAt)
			// raw token kept so services can forward the credential explicitly
			c.Set("token_raw", tokenStr)

			return handlerFunc(c)
		}
	}
}
