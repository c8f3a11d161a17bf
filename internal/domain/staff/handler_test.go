package staff

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo, *Service) {
	svc, _, _ := newTestService()
	return NewHandler(svc), echo.New(), svc
}

func TestHandler_CreateDepartment(t *testing.T) {
	h, e, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/departments", strings.NewReader(`{"name":"Cardiology"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateDepartment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var d Department
	json.Unmarshal(rec.Body.Bytes(), &d)
	if d.Name != "Cardiology" {
		t.Errorf("expected Cardiology, got %s", d.Name)
	}
}

func TestHandler_CreateDoctor_UnknownDepartment(t *testing.T) {
	h, e, _ := newTestHandler()

	body := `{"name":"Dr. Mehta","department_id":"` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/doctors", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.CreateDoctor(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestHandler_GetDoctor_NotFound(t *testing.T) {
	h, e, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.GetDoctor(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Code)
	}
}

func TestHandler_ListDoctors(t *testing.T) {
	h, e, svc := newTestHandler()

	dept := &Department{Name: "Cardiology"}
	svc.CreateDepartment(nil, dept)
	svc.CreateDoctor(nil, &Doctor{Name: "Dr. Mehta", DepartmentID: dept.ID})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListDoctors(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Total int `json:"total"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Total != 1 {
		t.Errorf("expected total 1, got %d", resp.Total)
	}
}
