package treatment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/treatments", h.ListTreatments)
	api.POST("/treatments", h.CreateTreatment)
	api.GET("/treatments/:id", h.GetTreatment)
	api.DELETE("/treatments/:id", h.DeleteTreatment)
	api.GET("/patients/:id/treatments", h.ListByPatient)
}

func (h *Handler) CreateTreatment(c echo.Context) error {
	var t Treatment
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateTreatment(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) GetTreatment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	t, err := h.svc.GetTreatment(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "treatment not found")
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTreatment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteTreatment(c.Request().Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "treatment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete treatment")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListTreatments(c echo.Context) error {
	p := pagination.FromContext(c)
	treatments, total, err := h.svc.ListTreatments(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list treatments")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(treatments, total, p.Limit, p.Offset))
}

func (h *Handler) ListByPatient(c echo.Context) error {
	patientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	p := pagination.FromContext(c)
	treatments, total, err := h.svc.ListByPatient(c.Request().Context(), patientID, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list treatments")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(treatments, total, p.Limit, p.Offset))
}
