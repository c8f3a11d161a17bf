package staff

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type mockDeptRepo struct {
	depts map[uuid.UUID]*Department
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{depts: make(map[uuid.UUID]*Department)}
}

func (m *mockDeptRepo) Create(_ context.Context, d *Department) error {
	d.ID = uuid.New()
	m.depts[d.ID] = d
	return nil
}

func (m *mockDeptRepo) GetByID(_ context.Context, id uuid.UUID) (*Department, error) {
	d, ok := m.depts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return d, nil
}

func (m *mockDeptRepo) Update(_ context.Context, d *Department) error {
	if _, ok := m.depts[d.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.depts[d.ID] = d
	return nil
}

func (m *mockDeptRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.depts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.depts, id)
	return nil
}

func (m *mockDeptRepo) List(_ context.Context, limit, offset int) ([]*Department, int, error) {
	all := make([]*Department, 0, len(m.depts))
	for _, d := range m.depts {
		all = append(all, d)
	}
	return all, len(all), nil
}

type mockDoctorRepo struct {
	doctors map[uuid.UUID]*Doctor
}

func newMockDoctorRepo() *mockDoctorRepo {
	return &mockDoctorRepo{doctors: make(map[uuid.UUID]*Doctor)}
}

func (m *mockDoctorRepo) Create(_ context.Context, d *Doctor) error {
	d.ID = uuid.New()
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) GetByID(_ context.Context, id uuid.UUID) (*Doctor, error) {
	d, ok := m.doctors[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return d, nil
}

func (m *mockDoctorRepo) Update(_ context.Context, d *Doctor) error {
	if _, ok := m.doctors[d.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.doctors[d.ID] = d
	return nil
}

func (m *mockDoctorRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.doctors[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.doctors, id)
	return nil
}

func (m *mockDoctorRepo) List(_ context.Context, limit, offset int) ([]*DoctorDetail, int, error) {
	all := make([]*DoctorDetail, 0, len(m.doctors))
	for _, d := range m.doctors {
		all = append(all, &DoctorDetail{Doctor: *d})
	}
	return all, len(all), nil
}

func newTestService() (*Service, *mockDeptRepo, *mockDoctorRepo) {
	depts := newMockDeptRepo()
	doctors := newMockDoctorRepo()
	return NewService(depts, doctors), depts, doctors
}

func TestCreateDepartment(t *testing.T) {
	svc, _, _ := newTestService()
	d := &Department{Name: "Cardiology"}
	if err := svc.CreateDepartment(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
}

func TestCreateDepartment_RequiresName(t *testing.T) {
	svc, _, _ := newTestService()
	if err := svc.CreateDepartment(context.Background(), &Department{}); err == nil {
		t.Fatal("expected error for missing name")
	}
}

func TestCreateDoctor(t *testing.T) {
	svc, _, _ := newTestService()
	dept := &Department{Name: "Cardiology"}
	if err := svc.CreateDepartment(context.Background(), dept); err != nil {
		t.Fatalf("create department: %v", err)
	}

	doc := &Doctor{Name: "Dr. Mehta", DepartmentID: dept.ID}
	if err := svc.CreateDoctor(context.Background(), doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID == uuid.Nil {
		t.Error("expected id to be assigned")
	}
}

func TestCreateDoctor_UnknownDepartment(t *testing.T) {
	svc, _, _ := newTestService()
	doc := &Doctor{Name: "Dr. Mehta", DepartmentID: uuid.New()}
	if err := svc.CreateDoctor(context.Background(), doc); err == nil {
		t.Fatal("expected error for unknown department")
	}
}

func TestCreateDoctor_RequiresDepartment(t *testing.T) {
	svc, _, _ := newTestService()
	if err := svc.CreateDoctor(context.Background(), &Doctor{Name: "Dr. Mehta"}); err == nil {
		t.Fatal("expected error for missing department_id")
	}
}
