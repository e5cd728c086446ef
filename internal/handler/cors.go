package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	allowHeaders = []string{echo.HeaderContentType, echo.HeaderAuthorization}
	allowMethods = []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
)

// CORS allows every origin and adds the allowed headers and methods to
// every response, not only to preflight responses.
func CORS() []echo.MiddlewareFunc {
	headers := strings.Join(allowHeaders, ", ")
	methods := strings.Join(allowMethods, ", ")

	return []echo.MiddlewareFunc{
		func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				h := c.Response().Header()
				h.Set(echo.HeaderAccessControlAllowHeaders, headers)
				h.Set(echo.HeaderAccessControlAllowMethods, methods)
				return next(c)
			}
		},
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{"*"},
			AllowHeaders: allowHeaders,
			AllowMethods: allowMethods,
		}),
	}
}
