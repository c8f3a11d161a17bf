package admission

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/admissions", h.ListAdmissions)
	api.POST("/admissions", h.Admit)
	api.GET("/admissions/:id", h.GetAdmission)
	api.POST("/admissions/:id/discharge", h.Discharge)
	api.GET("/patients/:id/admissions", h.ListByPatient)
}

func (h *Handler) Admit(c echo.Context) error {
	var req AdmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	adm, err := h.svc.Admit(c.Request().Context(), req)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, adm)
}

func (h *Handler) Discharge(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	adm, err := h.svc.Discharge(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, adm)
}

func (h *Handler) GetAdmission(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	adm, err := h.svc.GetAdmission(c.Request().Context(), id)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, adm)
}

func (h *Handler) ListAdmissions(c echo.Context) error {
	p := pagination.FromContext(c)
	status := c.QueryParam("status")
	if status != "" && status != StatusActive && status != StatusDischarged {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
	}
	admissions, total, err := h.svc.ListAdmissions(c.Request().Context(), status, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list admissions")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(admissions, total, p.Limit, p.Offset))
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p := pagination.FromContext(c)
	admissions, total, err := h.svc.ListByPatient(c.Request().Context(), patientID, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list admissions")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(admissions, total, p.Limit, p.Offset))
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrMissingPatientID),
		errors.Is(err, ErrMissingRoomID),
		errors.Is(err, ErrPatientAlreadyAdmitted):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrPatientNotFound),
		errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrDoctorNotFound),
		errors.Is(err, ErrAdmissionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrRoomUnavailable),
		errors.Is(err, ErrAlreadyDischarged):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case db.IsStorageError(err):
		return echo.NewHTTPError(http.StatusInternalServerError, "storage failure")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
