package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/locvowork/companyset/internal/domain"
	"github.com/locvowork/companyset/internal/errors"
	"github.com/locvowork/companyset/internal/service"
	"github.com/locvowork/companyset/internal/service/serviceutils"
)

type EmployeeHandler struct {
	svc            *service.CompanyService
	exportTemplate string
}

// NewEmployeeHandler creates the handler. exportTemplate is the path of the
// YAML roster template; empty uses the built-in layout.
func NewEmployeeHandler(svc *service.CompanyService, exportTemplate string) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, exportTemplate: exportTemplate}
}

func (h *EmployeeHandler) CreateHandler(c echo.Context) error {
	var req EmployeeRequest
	if err := c.Bind(&req); err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	emp, err := req.ToEmployee()
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid employee", err)
	}

	if err := h.svc.Add(c.Request().Context(), emp); err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to add employee", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusCreated, "Employee added successfully", domain.NewEmployeeRecord(emp))
}

func (h *EmployeeHandler) GetHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid employee ID", err)
	}

	emp, err := h.svc.Find(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to get employee", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employee retrieved successfully", domain.NewEmployeeRecord(emp))
}

func (h *EmployeeHandler) DeleteHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid employee ID", err)
	}

	emp, err := h.svc.Remove(c.Request().Context(), id)
	if err != nil {
		return serviceutils.ResponseError(c, statusFor(err), "Failed to remove employee", err)
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employee removed successfully", domain.NewEmployeeRecord(emp))
}

// ListHandler lists employees. min_hours filters by hours worked;
// min_salary and max_salary (both required) filter by salary.
func (h *EmployeeHandler) ListHandler(c echo.Context) error {
	ctx := c.Request().Context()

	if v := c.QueryParam("min_hours"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid min_hours", err)
		}
		return serviceutils.ResponseSuccess(c, http.StatusOK, "Employees listed successfully", toResponses(h.svc.HoursAtLeast(ctx, hours)))
	}

	minRaw, maxRaw := c.QueryParam("min_salary"), c.QueryParam("max_salary")
	if minRaw != "" || maxRaw != "" {
		min, err := strconv.ParseFloat(minRaw, 64)
		if err != nil {
			return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid min_salary", err)
		}
		max, err := strconv.ParseFloat(maxRaw, 64)
		if err != nil {
			return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid max_salary", err)
		}
		return serviceutils.ResponseSuccess(c, http.StatusOK, "Employees listed successfully", toResponses(h.svc.SalaryRange(ctx, min, max)))
	}

	return serviceutils.ResponseSuccess(c, http.StatusOK, "Employees listed successfully", toResponses(h.svc.List(ctx)))
}

func (h *EmployeeHandler) StatsHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Company stats retrieved successfully", h.svc.Stats(c.Request().Context()))
}

func (h *EmployeeHandler) ExportHandler(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.svc.ExportRoster(c.Request().Context(), &buf, h.exportTemplate); err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate Excel file", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="roster.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(buf.Len()))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCapacityExceeded):
		return http.StatusInsufficientStorage
	case errors.IsAny(err, domain.ErrNilEmployee, domain.ErrUnknownKind, domain.ErrInvalidEmployee):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
