package treatment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateTreatment(ctx context.Context, t *Treatment) error {
	if t.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if t.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if t.TreatmentDate.IsZero() {
		t.TreatmentDate = time.Now().UTC()
	}
	return s.repo.Create(ctx, t)
}

func (s *Service) GetTreatment(ctx context.Context, id uuid.UUID) (*Treatment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) DeleteTreatment(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListTreatments(ctx context.Context, limit, offset int) ([]*TreatmentDetail, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*TreatmentDetail, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}
