package treatment

import (
	"time"

	"github.com/google/uuid"
)

// Treatment maps to the treatment table.
type Treatment struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorID      uuid.UUID `db:"doctor_id" json:"doctor_id"`
	Description   *string   `db:"description" json:"description,omitempty"`
	TreatmentDate time.Time `db:"treatment_date" json:"treatment_date"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// TreatmentDetail is a treatment joined with patient and doctor names.
type TreatmentDetail struct {
	Treatment
	PatientName string `db:"patient_name" json:"patient_name"`
	DoctorName  string `db:"doctor_name" json:"doctor_name"`
}
