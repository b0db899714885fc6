package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-system/internal/api/metrics"
	"github.com/staffdesk/employee-system/internal/core/domain"
	"github.com/staffdesk/employee-system/internal/core/ports"
)

// AuthHandler serves the admin area: login, signup, logout and the
// dashboard counts.
type AuthHandler struct {
	authService ports.AuthService
	employees   ports.EmployeeService
}

func NewAuthHandler(authService ports.AuthService, employees ports.EmployeeService) *AuthHandler {
	return &AuthHandler{authService: authService, employees: employees}
}

// AdminLogin authenticates an admin and sets the session cookie.
//
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  loginResponse
// @Router       /auth/adminlogin [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, loginResponse{Error: "invalid payload"})
	}

	token, _, err := h.authService.LoginAdmin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(domain.RoleAdmin, "failure").Inc()
		msg := "wrong email or password"
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			msg = "login failed"
		}
		return c.JSON(http.StatusOK, loginResponse{Error: msg})
	}

	metrics.LoginsTotal.WithLabelValues(domain.RoleAdmin, "success").Inc()
	setTokenCookie(c, token)
	return c.JSON(http.StatusOK, loginResponse{LoginStatus: true})
}

// AdminSignup registers a new admin credential.
//
// @Summary      Admin signup
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      adminSignupRequest  true  "Admin credentials"
// @Success      200   {object}  statusResponse
// @Router       /auth/adminsignup [post]
func (h *AuthHandler) AdminSignup(c echo.Context) error {
	var req adminSignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}

	if _, err := h.authService.RegisterAdmin(c.Request().Context(), req.Email, req.Password); err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}

	metrics.SignupsTotal.WithLabelValues(domain.RoleAdmin).Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: true, Message: "admin registered successfully"})
}

// Logout clears the session cookie. The token itself remains valid until it
// expires; there is no server-side revocation.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearTokenCookie(c)
	return c.JSON(http.StatusOK, statusResponse{Status: true})
}

// AdminCount returns the number of admin records.
//
// @Summary      Count admins
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /auth/admin_count [get]
func (h *AuthHandler) AdminCount(c echo.Context) error {
	n, err := h.authService.AdminCount(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: true, Result: []map[string]int64{{"admin": n}}})
}

// EmployeeCount returns the number of employee records.
//
// @Summary      Count employees
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /auth/employee_count [get]
func (h *AuthHandler) EmployeeCount(c echo.Context) error {
	n, err := h.employees.Count(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: true, Result: []map[string]int64{{"employee": n}}})
}

// SalaryTotal returns the sum of all employee salaries.
//
// @Summary      Total salary across employees
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /auth/salary_count [get]
func (h *AuthHandler) SalaryTotal(c echo.Context) error {
	total, err := h.employees.SalaryTotal(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: true, Result: []map[string]float64{{"salaryOFEmp": total}}})
}

// AdminRecords lists all admins, password hashes omitted.
//
// @Summary      List admin records
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /auth/admin_records [get]
func (h *AuthHandler) AdminRecords(c echo.Context) error {
	admins, err := h.authService.AdminRecords(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: true, Result: admins})
}
