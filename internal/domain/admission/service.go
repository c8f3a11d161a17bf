package admission

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/domain/facility"
	"github.com/hms/hms/internal/domain/patient"
)

var (
	ErrMissingPatientID       = errors.New("patient_id is required")
	ErrMissingRoomID          = errors.New("room_id is required")
	ErrPatientNotFound        = errors.New("patient not found")
	ErrRoomNotFound           = errors.New("room not found")
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrRoomUnavailable        = errors.New("room is not available")
	ErrPatientAlreadyAdmitted = errors.New("patient already has an active admission")
	ErrAdmissionNotFound      = errors.New("admission not found")
	ErrAlreadyDischarged      = errors.New("admission is already discharged")
)

// TxRunner executes fn as a single atomic unit of work.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service owns every patient and room status transition tied to an
// admission. Both Admit and Discharge run inside one transaction and lock
// the rows they read, so two concurrent calls against the same room or
// patient serialize and the loser sees the winner's state.
type Service struct {
	repo Repository
	tx   TxRunner
}

func NewService(repo Repository, tx TxRunner) *Service {
	return &Service{repo: repo, tx: tx}
}

// Admit places a patient in a room. The room must be available and the
// patient must not already be admitted; on success the room becomes
// occupied and the patient becomes admitted, atomically with the new
// admission row.
func (s *Service) Admit(ctx context.Context, req AdmitRequest) (*Admission, error) {
	if req.PatientID == uuid.Nil {
		return nil, ErrMissingPatientID
	}
	if req.RoomID == uuid.Nil {
		return nil, ErrMissingRoomID
	}

	var adm *Admission
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Lock order is room then patient everywhere in this package.
		room, err := s.repo.GetRoomForUpdate(ctx, req.RoomID)
		if err != nil {
			return err
		}
		pat, err := s.repo.GetPatientForUpdate(ctx, req.PatientID)
		if err != nil {
			return err
		}
		if req.PrimaryDoctorID != nil {
			ok, err := s.repo.DoctorExists(ctx, *req.PrimaryDoctorID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrDoctorNotFound
			}
		}
		if room.Status != facility.RoomStatusAvailable {
			return ErrRoomUnavailable
		}
		if pat.Status == patient.StatusAdmitted {
			return ErrPatientAlreadyAdmitted
		}

		a := &Admission{
			PatientID:       req.PatientID,
			RoomID:          req.RoomID,
			PrimaryDoctorID: req.PrimaryDoctorID,
			AdmissionDate:   time.Now().UTC(),
			Status:          StatusActive,
		}
		if err := s.repo.Create(ctx, a); err != nil {
			return err
		}
		if err := s.repo.SetRoomStatus(ctx, req.RoomID, facility.RoomStatusOccupied); err != nil {
			return err
		}
		if err := s.repo.SetPatientStatus(ctx, req.PatientID, patient.StatusAdmitted); err != nil {
			return err
		}
		adm = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return adm, nil
}

// Discharge closes an active admission, frees its room and marks the
// patient discharged. Discharging twice returns ErrAlreadyDischarged.
func (s *Service) Discharge(ctx context.Context, id uuid.UUID) (*Admission, error) {
	var adm *Admission
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		a, err := s.repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if a.Status == StatusDischarged {
			return ErrAlreadyDischarged
		}

		if _, err := s.repo.GetRoomForUpdate(ctx, a.RoomID); err != nil {
			return err
		}
		if _, err := s.repo.GetPatientForUpdate(ctx, a.PatientID); err != nil {
			return err
		}

		closed, err := s.repo.MarkDischarged(ctx, a.ID)
		if err != nil {
			return err
		}
		if err := s.repo.SetRoomStatus(ctx, a.RoomID, facility.RoomStatusAvailable); err != nil {
			return err
		}
		if err := s.repo.SetPatientStatus(ctx, a.PatientID, patient.StatusDischarged); err != nil {
			return err
		}
		adm = closed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return adm, nil
}

func (s *Service) GetAdmission(ctx context.Context, id uuid.UUID) (*Admission, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAdmissions(ctx context.Context, status string, limit, offset int) ([]*AdmissionDetail, int, error) {
	return s.repo.List(ctx, status, limit, offset)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*AdmissionDetail, int, error) {
	return s.repo.ListByPatient(ctx, patientID, limit, offset)
}
