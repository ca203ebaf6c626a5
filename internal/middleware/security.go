package middleware

import (
	"github.com/labstack/echo/v4"
)

type header struct{ name, value string }

var baseSecurityHeaders = []header{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"X-XSS-Protection", "1; mode=block"},
	{"Content-Security-Policy", "default-src 'self'"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"Permissions-Policy", "geolocation=(), microphone=(), camera=()"},
	// takings, contacts and PINs must not sit in shared caches
	{"Cache-Control", "no-store, no-cache, must-revalidate, private"},
	{"Pragma", "no-cache"},
	{"Expires", "0"},
}

// SecurityHeaders sets the hardening headers on every response.
// Strict-Transport-Security is only sent when hsts is true, so local
// development over plain http is not pinned to https.
func SecurityHeaders(hsts bool) echo.MiddlewareFunc {
	headers := baseSecurityHeaders
	if hsts {
		headers = append(append([]header{}, baseSecurityHeaders...),
			header{"Strict-Transport-Security", "max-age=31536000; includeSubDomains"})
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for _, kv := range headers {
				h.Set(kv.name, kv.value)
			}
			return next(c)
		}
	}
}
