package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-system/internal/api/middleware"
	"github.com/staffdesk/employee-system/internal/core/domain"
)

// ctxClaims extracts the claims injected by the Auth middleware and performs
// a fast-fail check before any service call: both role and subject id must
// be present, their presence proves the middleware ran.
func ctxClaims(c echo.Context) (domain.TokenClaims, error) {
	role, _ := c.Get(middleware.ContextRole).(string)
	subjectID, _ := c.Get(middleware.ContextSubjectID).(string)
	if role == "" || subjectID == "" {
		return domain.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.TokenClaims{Role: role, SubjectID: subjectID}, nil
}
