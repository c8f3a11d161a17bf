package treatment

import (
	"context"

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

func (r *repoPG) Create(ctx context.Context, t *Treatment) error {
	t.ID = uuid.New()
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO treatment (id, patient_id, doctor_id, description, treatment_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		t.ID, t.PatientID, t.DoctorID, t.Description, t.TreatmentDate,
	).Scan(&t.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Treatment, error) {
	var t Treatment
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT id, patient_id, doctor_id, description, treatment_date, created_at
		FROM treatment
		WHERE id = $1`, id,
	).Scan(&t.ID, &t.PatientID, &t.DoctorID, &t.Description, &t.TreatmentDate, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM treatment WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const detailQuery = `
	SELECT t.id, t.patient_id, t.doctor_id, t.description, t.treatment_date, t.created_at,
		p.name AS patient_name, d.name AS doctor_name
	FROM treatment t
	JOIN patient p ON p.id = t.patient_id
	JOIN doctor d ON d.id = t.doctor_id`

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*TreatmentDetail, int, error) {
	q := r.conn(ctx)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM treatment`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx, detailQuery+`
		ORDER BY t.treatment_date DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return scanDetails(rows, total, limit)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*TreatmentDetail, int, error) {
	q := r.conn(ctx)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM treatment WHERE patient_id = $1`, patientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx, detailQuery+`
		WHERE t.patient_id = $3
		ORDER BY t.treatment_date DESC
		LIMIT $1 OFFSET $2`,
		limit, offset, patientID,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return scanDetails(rows, total, limit)
}

func scanDetails(rows pgx.Rows, total, limit int) ([]*TreatmentDetail, int, error) {
	out := make([]*TreatmentDetail, 0, limit)
	for rows.Next() {
		var td TreatmentDetail
		if err := rows.Scan(
			&td.ID, &td.PatientID, &td.DoctorID, &td.Description, &td.TreatmentDate, &td.CreatedAt,
			&td.PatientName, &td.DoctorName,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, &td)
	}
	return out, total, rows.Err()
}
