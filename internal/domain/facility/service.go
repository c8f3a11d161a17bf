package facility

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrRoomOccupied is returned when an operator tries to change or delete
	// a room that currently holds an active admission.
	ErrRoomOccupied = errors.New("room is occupied")
	// ErrStatusReserved is returned when a status change targets a state the
	// admission lifecycle owns.
	ErrStatusReserved = errors.New("occupied status is managed by admissions")
)

// TxRunner executes fn as a single atomic unit of work.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	roomTypes RoomTypeRepository
	rooms     RoomRepository
	tx        TxRunner
}

func NewService(roomTypes RoomTypeRepository, rooms RoomRepository, tx TxRunner) *Service {
	return &Service{roomTypes: roomTypes, rooms: rooms, tx: tx}
}

func (s *Service) CreateRoomType(ctx context.Context, rt *RoomType) error {
	if rt.Name == "" {
		return fmt.Errorf("name is required")
	}
	if rt.DailyRate < 0 {
		return fmt.Errorf("daily_rate must not be negative")
	}
	return s.roomTypes.Create(ctx, rt)
}

func (s *Service) GetRoomType(ctx context.Context, id uuid.UUID) (*RoomType, error) {
	return s.roomTypes.GetByID(ctx, id)
}

func (s *Service) UpdateRoomType(ctx context.Context, rt *RoomType) error {
	if rt.Name == "" {
		return fmt.Errorf("name is required")
	}
	if rt.DailyRate < 0 {
		return fmt.Errorf("daily_rate must not be negative")
	}
	return s.roomTypes.Update(ctx, rt)
}

func (s *Service) DeleteRoomType(ctx context.Context, id uuid.UUID) error {
	return s.roomTypes.Delete(ctx, id)
}

func (s *Service) ListRoomTypes(ctx context.Context, limit, offset int) ([]*RoomType, int, error) {
	return s.roomTypes.List(ctx, limit, offset)
}

// CreateRoom registers a room. New rooms always start available; occupancy
// comes only from admissions.
func (s *Service) CreateRoom(ctx context.Context, rm *Room) error {
	if rm.RoomNumber == "" {
		return fmt.Errorf("room_number is required")
	}
	if rm.TypeID == uuid.Nil {
		return fmt.Errorf("type_id is required")
	}
	if rm.DepartmentID == uuid.Nil {
		return fmt.Errorf("department_id is required")
	}
	rm.Status = RoomStatusAvailable
	return s.rooms.Create(ctx, rm)
}

func (s *Service) GetRoom(ctx context.Context, id uuid.UUID) (*Room, error) {
	return s.rooms.GetByID(ctx, id)
}

// UpdateRoom changes descriptive fields only; status has its own guarded
// transition.
func (s *Service) UpdateRoom(ctx context.Context, rm *Room) error {
	if rm.RoomNumber == "" {
		return fmt.Errorf("room_number is required")
	}
	if rm.TypeID == uuid.Nil {
		return fmt.Errorf("type_id is required")
	}
	if rm.DepartmentID == uuid.Nil {
		return fmt.Errorf("department_id is required")
	}
	return s.rooms.Update(ctx, rm)
}

// ChangeRoomStatus toggles a room between available and maintenance. Rooms
// holding an active admission cannot be touched, and occupied can never be
// set by hand. The check and the write share one transaction and a row
// lock, so an admit committing concurrently cannot be overwritten.
func (s *Service) ChangeRoomStatus(ctx context.Context, id uuid.UUID, status string) error {
	switch status {
	case RoomStatusAvailable, RoomStatusMaintenance:
	case RoomStatusOccupied:
		return ErrStatusReserved
	default:
		return fmt.Errorf("invalid status: %s", status)
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rm, err := s.rooms.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if rm.Status == RoomStatusOccupied {
			return ErrRoomOccupied
		}
		return s.rooms.SetStatus(ctx, id, status)
	})
}

func (s *Service) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		rm, err := s.rooms.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if rm.Status == RoomStatusOccupied {
			return ErrRoomOccupied
		}
		return s.rooms.Delete(ctx, id)
	})
}

func (s *Service) ListRooms(ctx context.Context, status string, limit, offset int) ([]*RoomDetail, int, error) {
	if status != "" && status != RoomStatusAvailable && status != RoomStatusOccupied && status != RoomStatusMaintenance {
		return nil, 0, fmt.Errorf("invalid status filter: %s", status)
	}
	return s.rooms.List(ctx, status, limit, offset)
}
