package facility

import (
	"context"

	"github.com/google/uuid"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, rt *RoomType) error
	GetByID(ctx context.Context, id uuid.UUID) (*RoomType, error)
	Update(ctx context.Context, rt *RoomType) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*RoomType, int, error)
}

type RoomRepository interface {
	Create(ctx context.Context, r *Room) error
	GetByID(ctx context.Context, id uuid.UUID) (*Room, error)
	// GetByIDForUpdate locks the room row for the duration of the
	// surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*Room, error)
	Update(ctx context.Context, r *Room) error
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status string, limit, offset int) ([]*RoomDetail, int, error)
}
