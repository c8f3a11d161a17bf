package staff

import (
	"time"

	"github.com/google/uuid"
)

// Department maps to the department table.
type Department struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Doctor maps to the doctor table.
type Doctor struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	DepartmentID uuid.UUID `db:"department_id" json:"department_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// DoctorDetail is a doctor joined with its department name for listings.
type DoctorDetail struct {
	Doctor
	DepartmentName string `db:"department_name" json:"department_name"`
}
