package facility

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
	api.GET("/room-types", h.ListRoomTypes)
	api.POST("/room-types", h.CreateRoomType)
	api.GET("/room-types/:id", h.GetRoomType)
	api.PUT("/room-types/:id", h.UpdateRoomType)
	api.DELETE("/room-types/:id", h.DeleteRoomType)

	api.GET("/rooms", h.ListRooms)
	api.POST("/rooms", h.CreateRoom)
	api.GET("/rooms/:id", h.GetRoom)
	api.PUT("/rooms/:id", h.UpdateRoom)
	api.PATCH("/rooms/:id/status", h.ChangeRoomStatus)
	api.DELETE("/rooms/:id", h.DeleteRoom)
}

func (h *Handler) CreateRoomType(c echo.Context) error {
	var rt RoomType
	if err := c.Bind(&rt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateRoomType(c.Request().Context(), &rt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, rt)
}

func (h *Handler) GetRoomType(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	rt, err := h.svc.GetRoomType(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "room type not found")
	}
	return c.JSON(http.StatusOK, rt)
}

func (h *Handler) UpdateRoomType(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var rt RoomType
	if err := c.Bind(&rt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rt.ID = id
	if err := h.svc.UpdateRoomType(c.Request().Context(), &rt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "room type not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteRoomType(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteRoomType(c.Request().Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "room type not found")
		}
		return echo.NewHTTPError(http.StatusConflict, "room type is in use")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListRoomTypes(c echo.Context) error {
	p := pagination.FromContext(c)
	types, total, err := h.svc.ListRoomTypes(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list room types")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(types, total, p.Limit, p.Offset))
}

func (h *Handler) CreateRoom(c echo.Context) error {
	var rm Room
	if err := c.Bind(&rm); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateRoom(c.Request().Context(), &rm); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, rm)
}

func (h *Handler) GetRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	rm, err := h.svc.GetRoom(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "room not found")
	}
	return c.JSON(http.StatusOK, rm)
}

func (h *Handler) UpdateRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var rm Room
	if err := c.Bind(&rm); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rm.ID = id
	if err := h.svc.UpdateRoom(c.Request().Context(), &rm); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "room not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ChangeRoomStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.ChangeRoomStatus(c.Request().Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, ErrRoomOccupied):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, ErrStatusReserved):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, pgx.ErrNoRows):
			return echo.NewHTTPError(http.StatusNotFound, "room not found")
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteRoom(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteRoom(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrRoomOccupied):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, pgx.ErrNoRows):
			return echo.NewHTTPError(http.StatusNotFound, "room not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete room")
		}
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListRooms(c echo.Context) error {
	p := pagination.FromContext(c)
	status := c.QueryParam("status")
	rooms, total, err := h.svc.ListRooms(c.Request().Context(), status, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(rooms, total, p.Limit, p.Offset))
}
