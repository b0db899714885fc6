package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-system/internal/core/domain"
	"github.com/staffdesk/employee-system/internal/core/ports"
)

// ProfileHandler serves the authenticated endpoints: own profile and token
// verification. Unlike the record routes, failures here use real HTTP
// status codes.
type ProfileHandler struct {
	authService ports.AuthService
}

func NewProfileHandler(authService ports.AuthService) *ProfileHandler {
	return &ProfileHandler{authService: authService}
}

// Profile returns the record behind the caller's token, admin or employee.
//
// @Summary      Own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  profileResponse
// @Failure      404  {object}  profileResponse
// @Router       /profile/ [get]
func (h *ProfileHandler) Profile(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	profile, err := h.authService.Profile(c.Request().Context(), claims)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) || errors.Is(err, domain.ErrEmployeeNotFound) {
			return c.JSON(http.StatusNotFound, profileResponse{Message: "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, profileResponse{Message: "internal error"})
	}

	return c.JSON(http.StatusOK, profileResponse{Success: true, User: profile})
}

// Verify confirms the caller's token is valid and echoes back its claims.
//
// @Summary      Verify session token
// @Tags         profile
// @Produce      json
// @Success      200  {object}  verifyResponse
// @Failure      401  {object}  verifyResponse
// @Router       /verify [get]
func (h *ProfileHandler) Verify(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, verifyResponse{Status: true, Role: claims.Role, ID: claims.SubjectID})
}
