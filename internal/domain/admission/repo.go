package admission

import (
	"context"

	"github.com/google/uuid"
)

// PatientState is the slice of a patient row the lifecycle engine needs.
type PatientState struct {
	ID     uuid.UUID
	Status string
}

// RoomState is the slice of a room row the lifecycle engine needs.
type RoomState struct {
	ID     uuid.UUID
	Status string
}

// Repository covers admission rows plus the patient and room state the
// lifecycle transitions touch. The ForUpdate methods lock their row for the
// duration of the surrounding transaction.
type Repository interface {
	Create(ctx context.Context, a *Admission) error
	GetByID(ctx context.Context, id uuid.UUID) (*Admission, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*Admission, error)
	MarkDischarged(ctx context.Context, id uuid.UUID) (*Admission, error)
	List(ctx context.Context, status string, limit, offset int) ([]*AdmissionDetail, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*AdmissionDetail, int, error)

	GetRoomForUpdate(ctx context.Context, id uuid.UUID) (*RoomState, error)
	SetRoomStatus(ctx context.Context, id uuid.UUID, status string) error
	GetPatientForUpdate(ctx context.Context, id uuid.UUID) (*PatientState, error)
	SetPatientStatus(ctx context.Context, id uuid.UUID, status string) error
	DoctorExists(ctx context.Context, id uuid.UUID) (bool, error)
}
