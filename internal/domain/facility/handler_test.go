package facility

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo, *Service, *mockRoomRepo) {
	svc, rooms := newTestService()
	return NewHandler(svc), echo.New(), svc, rooms
}

func TestHandler_CreateRoom_ForcesAvailable(t *testing.T) {
	h, e, _, _ := newTestHandler()

	body := `{"room_number":"101","type_id":"` + uuid.New().String() + `","department_id":"` + uuid.New().String() + `","status":"occupied"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rooms", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateRoom(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"available"`) {
		t.Errorf("expected status available in response, got %s", rec.Body.String())
	}
}

func TestHandler_ChangeRoomStatus_Conflict(t *testing.T) {
	h, e, svc, repo := newTestHandler()

	rm := createRoom(t, svc)
	repo.rooms[rm.ID].Status = RoomStatusOccupied

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"maintenance"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(rm.ID.String())

	err := h.ChangeRoomStatus(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", httpErr.Code)
	}
}

func TestHandler_ChangeRoomStatus_OccupiedRejected(t *testing.T) {
	h, e, svc, _ := newTestHandler()

	rm := createRoom(t, svc)

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"occupied"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(rm.ID.String())

	err := h.ChangeRoomStatus(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestHandler_ChangeRoomStatus_NotFound(t *testing.T) {
	h, e, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"maintenance"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.ChangeRoomStatus(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Code)
	}
}

func TestHandler_DeleteRoom_Occupied(t *testing.T) {
	h, e, svc, repo := newTestHandler()

	rm := createRoom(t, svc)
	repo.rooms[rm.ID].Status = RoomStatusOccupied

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(rm.ID.String())

	err := h.DeleteRoom(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", httpErr.Code)
	}
}
