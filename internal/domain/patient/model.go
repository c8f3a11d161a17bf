package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient statuses. A patient starts out unregistered and is moved through
// admitted/discharged exclusively by the admission lifecycle.
const (
	StatusUnregistered = "unregistered"
	StatusAdmitted     = "admitted"
	StatusDischarged   = "discharged"
)

// Patient maps to the patient table.
type Patient struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	ContactNumber *string   `db:"contact_number" json:"contact_number,omitempty"`
	Status        string    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// UpdateRequest carries the caller-editable fields of a patient. Status is
// deliberately absent: it is owned by the admission lifecycle.
type UpdateRequest struct {
	Name          string  `json:"name"`
	ContactNumber *string `json:"contact_number,omitempty"`
}
