package staff

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	departments DepartmentRepository
	doctors     DoctorRepository
}

func NewService(departments DepartmentRepository, doctors DoctorRepository) *Service {
	return &Service{departments: departments, doctors: doctors}
}

func (s *Service) CreateDepartment(ctx context.Context, d *Department) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.departments.Create(ctx, d)
}

func (s *Service) GetDepartment(ctx context.Context, id uuid.UUID) (*Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *Service) UpdateDepartment(ctx context.Context, d *Department) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.departments.Update(ctx, d)
}

func (s *Service) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	return s.departments.Delete(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context, limit, offset int) ([]*Department, int, error) {
	return s.departments.List(ctx, limit, offset)
}

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.DepartmentID == uuid.Nil {
		return fmt.Errorf("department_id is required")
	}
	if _, err := s.departments.GetByID(ctx, d.DepartmentID); err != nil {
		return fmt.Errorf("department %s not found", d.DepartmentID)
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) UpdateDoctor(ctx context.Context, d *Doctor) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if d.DepartmentID == uuid.Nil {
		return fmt.Errorf("department_id is required")
	}
	return s.doctors.Update(ctx, d)
}

func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	return s.doctors.Delete(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context, limit, offset int) ([]*DoctorDetail, int, error) {
	return s.doctors.List(ctx, limit, offset)
}
