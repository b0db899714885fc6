package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-system/internal/api/metrics"
	"github.com/staffdesk/employee-system/internal/core/domain"
	"github.com/staffdesk/employee-system/internal/core/ports"
	"github.com/staffdesk/employee-system/internal/infrastructure/storage"
)

// EmployeeHandler serves employee CRUD for both the admin area and the
// employee self-service routes.
type EmployeeHandler struct {
	service ports.EmployeeService
	images  *storage.ImageStore
}

func NewEmployeeHandler(service ports.EmployeeService, images *storage.ImageStore) *EmployeeHandler {
	return &EmployeeHandler{service: service, images: images}
}

// SignUp registers an employee and logs the new account in by setting the
// session cookie.
//
// @Summary      Employee self-registration with auto-login
// @Tags         employee
// @Accept       json
// @Produce      json
// @Param        body  body      employeeSignupRequest  true  "Employee details"
// @Success      200   {object}  signupResponse
// @Router       /employee/signup [post]
func (h *EmployeeHandler) SignUp(c echo.Context) error {
	var req employeeSignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, signupResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, signupResponse{Error: err.Error()})
	}

	token, emp, err := h.service.SignUp(c.Request().Context(), ports.CreateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Salary:     req.Salary,
		Address:    req.Address,
		CategoryID: req.Category,
		Image:      req.Image,
	})
	if err != nil {
		return c.JSON(http.StatusOK, signupResponse{Error: err.Error()})
	}

	metrics.SignupsTotal.WithLabelValues(domain.RoleEmployee).Inc()
	setTokenCookie(c, token)
	return c.JSON(http.StatusOK, signupResponse{
		Status:  true,
		Message: "employee registered and logged in",
		ID:      emp.ID,
		Role:    domain.RoleEmployee,
	})
}

// Logout clears the session cookie.
//
// @Summary      Employee logout
// @Tags         employee
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /employee/logout [get]
func (h *EmployeeHandler) Logout(c echo.Context) error {
	clearTokenCookie(c)
	return c.JSON(http.StatusOK, statusResponse{Status: true})
}

// Create adds an employee from a multipart form, storing the optional image
// on disk.
//
// @Summary      Create an employee
// @Tags         employee
// @Accept       mpfd
// @Produce      json
// @Param        name      formData  string  true   "Name"
// @Param        email     formData  string  true   "Email"
// @Param        password  formData  string  true   "Password"
// @Param        salary    formData  number  false  "Salary"
// @Param        address   formData  string  false  "Address"
// @Param        category  formData  string  false  "Category id"
// @Param        image     formData  file    false  "Profile image"
// @Success      200       {object}  statusResponse
// @Router       /auth/add_employee [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	input, err := h.createInputFromForm(c)
	if err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}

	metrics.RecordMutationsTotal.WithLabelValues("employee", "create").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: true, Result: created})
}

// List returns employees matching the optional name/email/category filters,
// paginated.
//
// @Summary      List employees
// @Tags         employee
// @Produce      json
// @Param        name      query     string  false  "Substring filter on name"
// @Param        email     query     string  false  "Substring filter on email"
// @Param        category  query     string  false  "Category id"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  listResponse
// @Router       /employee/ [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListEmployeesFilter{
		Name:       c.QueryParam("name"),
		Email:      c.QueryParam("email"),
		CategoryID: c.QueryParam("category"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return c.JSON(http.StatusOK, listResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, listResponse{
		Status:     true,
		Result:     result.Employees,
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
	})
}

// GetByID returns a single employee with its category name populated.
//
// @Summary      Get an employee by id
// @Tags         employee
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  statusResponse
// @Router       /employee/{id} [get]
func (h *EmployeeHandler) GetByID(c echo.Context) error {
	emp, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: true, Result: emp})
}

// Update overwrites an employee's editable fields; the password is rehashed
// only when a new one is provided.
//
// @Summary      Edit an employee
// @Tags         employee
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Employee id"
// @Param        body  body      editEmployeeRequest  true  "New field values"
// @Success      200   {object}  statusResponse
// @Router       /employee/edit_employee/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req editEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateEmployeeInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Salary:     req.Salary,
		Address:    req.Address,
		CategoryID: req.Category,
	})
	if err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}

	metrics.RecordMutationsTotal.WithLabelValues("employee", "update").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: true, Result: updated})
}

// Delete removes an employee. A second delete of the same id reports
// "employee not found" in the envelope.
//
// @Summary      Delete an employee
// @Tags         employee
// @Produce      json
// @Param        id   path      string  true  "Employee id"
// @Success      200  {object}  statusResponse
// @Router       /employee/delete_employee/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}

	metrics.RecordMutationsTotal.WithLabelValues("employee", "delete").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: true, Message: "employee deleted successfully"})
}

// createInputFromForm reads the multipart create form and stores the
// optional image upload.
func (h *EmployeeHandler) createInputFromForm(c echo.Context) (ports.CreateEmployeeInput, error) {
	salary, _ := strconv.ParseFloat(c.FormValue("salary"), 64)

	input := ports.CreateEmployeeInput{
		Name:       c.FormValue("name"),
		Email:      c.FormValue("email"),
		Password:   c.FormValue("password"),
		Salary:     salary,
		Address:    c.FormValue("address"),
		CategoryID: c.FormValue("category"),
	}

	if file, err := c.FormFile("image"); err == nil && file != nil {
		name, err := h.images.Save(file)
		if err != nil {
			return input, err
		}
		input.Image = name
	}
	return input, nil
}
