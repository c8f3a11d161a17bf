package patient

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type mockRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return p, nil
}

func (m *mockRepo) Update(_ context.Context, id uuid.UUID, req UpdateRequest) error {
	p, ok := m.patients[id]
	if !ok {
		return pgx.ErrNoRows
	}
	p.Name = req.Name
	p.ContactNumber = req.ContactNumber
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.patients[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.patients, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	all := make([]*Patient, 0, len(m.patients))
	for _, p := range m.patients {
		all = append(all, p)
	}
	return all, len(all), nil
}

func TestCreatePatient_DefaultsStatus(t *testing.T) {
	svc := NewService(newMockRepo())
	p := &Patient{Name: "Asha Rao"}

	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != StatusUnregistered {
		t.Errorf("expected status %s, got %s", StatusUnregistered, p.Status)
	}
	if p.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
}

func TestCreatePatient_RequiresName(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.CreatePatient(context.Background(), &Patient{}); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestCreatePatient_RejectsPreAdmittedStatus(t *testing.T) {
	svc := NewService(newMockRepo())
	p := &Patient{Name: "Asha Rao", Status: StatusAdmitted}
	if err := svc.CreatePatient(context.Background(), p); err == nil {
		t.Fatal("expected error for non-unregistered initial status")
	}
}

func TestUpdatePatient_DoesNotTouchStatus(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p := &Patient{Name: "Asha Rao"}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}
	repo.patients[p.ID].Status = StatusAdmitted

	contact := "555-0101"
	if err := svc.UpdatePatient(context.Background(), p.ID, UpdateRequest{Name: "Asha R.", ContactNumber: &contact}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got := repo.patients[p.ID]
	if got.Name != "Asha R." {
		t.Errorf("expected name updated, got %s", got.Name)
	}
	if got.Status != StatusAdmitted {
		t.Errorf("expected status untouched, got %s", got.Status)
	}
}

func TestDeletePatient_RefusesAdmitted(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p := &Patient{Name: "Asha Rao"}
	if err := svc.CreatePatient(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}
	repo.patients[p.ID].Status = StatusAdmitted

	err := svc.DeletePatient(context.Background(), p.ID)
	if err != ErrAdmitted {
		t.Fatalf("expected ErrAdmitted, got %v", err)
	}
	if _, ok := repo.patients[p.ID]; !ok {
		t.Error("patient should not have been deleted")
	}
}

func TestDeletePatient_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.DeletePatient(context.Background(), uuid.New()); err != pgx.ErrNoRows {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
}
