package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-system/internal/api/metrics"
	"github.com/staffdesk/employee-system/internal/core/domain"
	"github.com/staffdesk/employee-system/internal/core/ports"
)

// TokenCookie is the cookie the session token travels in.
const TokenCookie = "token"

// Context keys set by Auth for downstream handlers.
const (
	ContextRole      = "role"
	ContextSubjectID = "subject_id"
)

// Auth reads the session token from the cookie, verifies it and injects
// {role, subject id} into the request context. Missing, malformed, badly
// signed and expired tokens are all rejected as 401 with the same shape of
// response.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(TokenCookie)
			if err != nil || cookie.Value == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				result := "invalid"
				if errors.Is(err, domain.ErrTokenExpired) {
					result = "expired"
				}
				metrics.TokenVerificationsTotal.WithLabelValues(result).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(ContextRole, claims.Role)
			c.Set(ContextSubjectID, claims.SubjectID)

			return next(c)
		}
	}
}
