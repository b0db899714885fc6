package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-system/internal/api/metrics"
	"github.com/staffdesk/employee-system/internal/core/ports"
)

type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List returns all categories.
//
// @Summary      List categories
// @Tags         category
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /auth/category [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, statusResponse{Status: true, Result: categories})
}

// Create adds a new category. Names are not required to be unique.
//
// @Summary      Add a category
// @Tags         category
// @Accept       json
// @Produce      json
// @Param        body  body      addCategoryRequest  true  "Category name"
// @Success      200   {object}  statusResponse
// @Router       /auth/add_category [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req addCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), req.Category)
	if err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}

	metrics.RecordMutationsTotal.WithLabelValues("category", "create").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: true, Result: created})
}

// Update renames a category.
//
// @Summary      Edit a category
// @Tags         category
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Category id"
// @Param        body  body      editCategoryRequest true  "New name"
// @Success      200   {object}  statusResponse
// @Router       /auth/edit_category/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req editCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Category)
	if err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}

	metrics.RecordMutationsTotal.WithLabelValues("category", "update").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: true, Result: updated})
}

// Delete removes a category. Employees referencing it keep the dangling id;
// the reference is weak, so no cascade happens.
//
// @Summary      Delete a category
// @Tags         category
// @Produce      json
// @Param        id   path      string  true  "Category id"
// @Success      200  {object}  statusResponse
// @Router       /auth/delete_category/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return c.JSON(http.StatusOK, statusResponse{Error: err.Error()})
	}

	metrics.RecordMutationsTotal.WithLabelValues("category", "delete").Inc()
	return c.JSON(http.StatusOK, statusResponse{Status: true})
}
