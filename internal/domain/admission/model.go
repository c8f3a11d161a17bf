package admission

import (
	"time"

	"github.com/google/uuid"
)

// Admission statuses.
const (
	StatusActive     = "active"
	StatusDischarged = "discharged"
)

// Admission maps to the admission table. DischargeDate is set exactly when
// the admission leaves the active state.
type Admission struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	PatientID       uuid.UUID  `db:"patient_id" json:"patient_id"`
	RoomID          uuid.UUID  `db:"room_id" json:"room_id"`
	PrimaryDoctorID *uuid.UUID `db:"primary_doctor_id" json:"primary_doctor_id,omitempty"`
	AdmissionDate   time.Time  `db:"admission_date" json:"admission_date"`
	DischargeDate   *time.Time `db:"discharge_date" json:"discharge_date,omitempty"`
	Status          string     `db:"status" json:"status"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// AdmissionDetail is an admission joined with patient, room and doctor
// information for listings.
type AdmissionDetail struct {
	Admission
	PatientName string  `db:"patient_name" json:"patient_name"`
	RoomNumber  string  `db:"room_number" json:"room_number"`
	DoctorName  *string `db:"doctor_name" json:"doctor_name,omitempty"`
}

// AdmitRequest is the body of an admit call.
type AdmitRequest struct {
	PatientID       uuid.UUID  `json:"patient_id"`
	RoomID          uuid.UUID  `json:"room_id"`
	PrimaryDoctorID *uuid.UUID `json:"primary_doctor_id,omitempty"`
}
