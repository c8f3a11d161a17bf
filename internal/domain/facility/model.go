package facility

import (
	"time"

	"github.com/google/uuid"
)

// Room statuses. Occupied is entered and left only through the admission
// lifecycle; operators may toggle between available and maintenance.
const (
	RoomStatusAvailable   = "available"
	RoomStatusOccupied    = "occupied"
	RoomStatusMaintenance = "maintenance"
)

// RoomType maps to the room_type table.
type RoomType struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	DailyRate float64   `db:"daily_rate" json:"daily_rate"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Room maps to the room table.
type Room struct {
	ID           uuid.UUID `db:"id" json:"id"`
	RoomNumber   string    `db:"room_number" json:"room_number"`
	TypeID       uuid.UUID `db:"type_id" json:"type_id"`
	DepartmentID uuid.UUID `db:"department_id" json:"department_id"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// RoomDetail is a room joined with its type and department for listings.
type RoomDetail struct {
	Room
	TypeName       string  `db:"type_name" json:"type_name"`
	DailyRate      float64 `db:"daily_rate" json:"daily_rate"`
	DepartmentName string  `db:"department_name" json:"department_name"`
}

// StatusRequest is the body of a room status change.
type StatusRequest struct {
	Status string `json:"status"`
}
