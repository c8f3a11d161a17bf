package admission

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const admissionCols = `id, patient_id, room_id, primary_doctor_id,
	admission_date, discharge_date, status, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, a *Admission) error {
	a.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO admission (id, patient_id, room_id, primary_doctor_id, admission_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		a.ID, a.PatientID, a.RoomID, a.PrimaryDoctorID, a.AdmissionDate, a.Status,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Admission, error) {
	return r.get(ctx, id, false)
}

func (r *repoPG) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*Admission, error) {
	return r.get(ctx, id, true)
}

func (r *repoPG) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*Admission, error) {
	q := `SELECT ` + admissionCols + ` FROM admission WHERE id = $1`
	if forUpdate {
		q += ` FOR UPDATE`
	}
	var a Admission
	err := r.conn(ctx).QueryRow(ctx, q, id).Scan(
		&a.ID, &a.PatientID, &a.RoomID, &a.PrimaryDoctorID,
		&a.AdmissionDate, &a.DischargeDate, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAdmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// MarkDischarged closes the admission. The discharge timestamp and the
// status flip happen in one statement so they can never diverge.
func (r *repoPG) MarkDischarged(ctx context.Context, id uuid.UUID) (*Admission, error) {
	var a Admission
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE admission
		SET status = $2, discharge_date = now(), updated_at = now()
		WHERE id = $1
		RETURNING `+admissionCols,
		id, StatusDischarged,
	).Scan(
		&a.ID, &a.PatientID, &a.RoomID, &a.PrimaryDoctorID,
		&a.AdmissionDate, &a.DischargeDate, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAdmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

const detailQuery = `
	SELECT a.id, a.patient_id, a.room_id, a.primary_doctor_id,
		a.admission_date, a.discharge_date, a.status, a.created_at, a.updated_at,
		p.name AS patient_name, r.room_number, d.name AS doctor_name
	FROM admission a
	JOIN patient p ON p.id = a.patient_id
	JOIN room r ON r.id = a.room_id
	LEFT JOIN doctor d ON d.id = a.primary_doctor_id`

func (r *repoPG) List(ctx context.Context, status string, limit, offset int) ([]*AdmissionDetail, int, error) {
	q := r.conn(ctx)

	countQ := `SELECT count(*) FROM admission`
	where := ``
	args := []interface{}{limit, offset}
	countArgs := []interface{}{}
	if status != "" {
		countQ += ` WHERE status = $1`
		where = ` WHERE a.status = $3`
		args = append(args, status)
		countArgs = append(countArgs, status)
	}

	var total int
	if err := q.QueryRow(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx, detailQuery+where+`
		ORDER BY a.admission_date DESC
		LIMIT $1 OFFSET $2`,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return scanDetails(rows, total, limit)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*AdmissionDetail, int, error) {
	q := r.conn(ctx)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM admission WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx, detailQuery+`
		WHERE a.patient_id = $3
		ORDER BY a.admission_date DESC
		LIMIT $1 OFFSET $2`,
		limit, offset, patientID,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return scanDetails(rows, total, limit)
}

func scanDetails(rows pgx.Rows, total, limit int) ([]*AdmissionDetail, int, error) {
	out := make([]*AdmissionDetail, 0, limit)
	for rows.Next() {
		var ad AdmissionDetail
		if err := rows.Scan(
			&ad.ID, &ad.PatientID, &ad.RoomID, &ad.PrimaryDoctorID,
			&ad.AdmissionDate, &ad.DischargeDate, &ad.Status, &ad.CreatedAt, &ad.UpdatedAt,
			&ad.PatientName, &ad.RoomNumber, &ad.DoctorName,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, &ad)
	}
	return out, total, rows.Err()
}

func (r *repoPG) GetRoomForUpdate(ctx context.Context, id uuid.UUID) (*RoomState, error) {
	var rs RoomState
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, status FROM room WHERE id = $1 FOR UPDATE`, id,
	).Scan(&rs.ID, &rs.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rs, nil
}

func (r *repoPG) SetRoomStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE room SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (r *repoPG) GetPatientForUpdate(ctx context.Context, id uuid.UUID) (*PatientState, error) {
	var ps PatientState
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, status FROM patient WHERE id = $1 FOR UPDATE`, id,
	).Scan(&ps.ID, &ps.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

func (r *repoPG) SetPatientStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE patient SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPatientNotFound
	}
	return nil
}

func (r *repoPG) DoctorExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM doctor WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
