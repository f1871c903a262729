package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// APIKeyHeader carries the key on protected requests
const APIKeyHeader = "x-api-key"

// APIKeyAuth guards mutations with a shared key in the x-api-key header. An
// empty apiKey disables the check. Every rejection is a 401.
func APIKeyAuth(apiKey string) echo.MiddlewareFunc {
	return echoMiddleware.KeyAuthWithConfig(echoMiddleware.KeyAuthConfig{
		Skipper:   func(echo.Context) bool { return apiKey == "" },
		KeyLookup: "header:" + APIKeyHeader,
		Validator: func(key string, _ echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			msg := "invalid API key"
			var missing *echoMiddleware.ErrKeyAuthMissing
			if errors.As(err, &missing) {
				msg = "missing " + APIKeyHeader + " header"
			}
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg})
		},
	})
}
