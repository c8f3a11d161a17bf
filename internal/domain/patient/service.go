package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrAdmitted is returned when a destructive operation targets a patient who
// is currently admitted.
var ErrAdmitted = errors.New("patient is currently admitted")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Status == "" {
		p.Status = StatusUnregistered
	}
	if p.Status != StatusUnregistered {
		return fmt.Errorf("new patients must start as %s", StatusUnregistered)
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdatePatient changes demographic fields only. Status transitions are owned
// by the admission lifecycle and cannot be made here.
func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, req UpdateRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.repo.Update(ctx, id, req)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Status == StatusAdmitted {
		return ErrAdmitted
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, limit, offset)
}
