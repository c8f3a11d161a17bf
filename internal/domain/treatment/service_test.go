package treatment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type mockRepo struct {
	treatments map[uuid.UUID]*Treatment
}

func newMockRepo() *mockRepo {
	return &mockRepo{treatments: make(map[uuid.UUID]*Treatment)}
}

func (m *mockRepo) Create(_ context.Context, t *Treatment) error {
	t.ID = uuid.New()
	m.treatments[t.ID] = t
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Treatment, error) {
	t, ok := m.treatments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return t, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.treatments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.treatments, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*TreatmentDetail, int, error) {
	all := make([]*TreatmentDetail, 0, len(m.treatments))
	for _, t := range m.treatments {
		all = append(all, &TreatmentDetail{Treatment: *t})
	}
	return all, len(all), nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit, offset int) ([]*TreatmentDetail, int, error) {
	out := make([]*TreatmentDetail, 0)
	for _, t := range m.treatments {
		if t.PatientID == patientID {
			out = append(out, &TreatmentDetail{Treatment: *t})
		}
	}
	return out, len(out), nil
}

func TestCreateTreatment_DefaultsDate(t *testing.T) {
	svc := NewService(newMockRepo())
	tr := &Treatment{PatientID: uuid.New(), DoctorID: uuid.New()}

	if err := svc.CreateTreatment(context.Background(), tr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.TreatmentDate.IsZero() {
		t.Error("expected treatment_date to default")
	}
	if time.Since(tr.TreatmentDate) > time.Minute {
		t.Errorf("expected recent default date, got %v", tr.TreatmentDate)
	}
}

func TestCreateTreatment_RequiresPatient(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.CreateTreatment(context.Background(), &Treatment{DoctorID: uuid.New()}); err == nil {
		t.Fatal("expected error for missing patient_id")
	}
}

func TestCreateTreatment_RequiresDoctor(t *testing.T) {
	svc := NewService(newMockRepo())
	if err := svc.CreateTreatment(context.Background(), &Treatment{PatientID: uuid.New()}); err == nil {
		t.Fatal("expected error for missing doctor_id")
	}
}

func TestListByPatient_FiltersOthers(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	patientID := uuid.New()
	svc.CreateTreatment(context.Background(), &Treatment{PatientID: patientID, DoctorID: uuid.New()})
	svc.CreateTreatment(context.Background(), &Treatment{PatientID: uuid.New(), DoctorID: uuid.New()})

	out, total, err := svc.ListByPatient(context.Background(), patientID, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(out) != 1 {
		t.Fatalf("expected 1 treatment, got total=%d len=%d", total, len(out))
	}
	if out[0].PatientID != patientID {
		t.Error("wrong patient's treatment returned")
	}
}
