package staff

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/internal/platform/db"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func conn(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return pool
}

type departmentRepoPG struct {
	pool *pgxpool.Pool
}

func NewDepartmentRepo(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepoPG{pool: pool}
}

func (r *departmentRepoPG) Create(ctx context.Context, d *Department) error {
	d.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO department (id, name)
		VALUES ($1, $2)
		RETURNING created_at`,
		d.ID, d.Name,
	).Scan(&d.CreatedAt)
}

func (r *departmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Department, error) {
	var d Department
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, created_at FROM department WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *departmentRepoPG) Update(ctx context.Context, d *Department) error {
	tag, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE department SET name = $2 WHERE id = $1`, d.ID, d.Name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *departmentRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM department WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *departmentRepoPG) List(ctx context.Context, limit, offset int) ([]*Department, int, error) {
	q := conn(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM department`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx, `
		SELECT id, name, created_at
		FROM department
		ORDER BY name
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	depts := make([]*Department, 0, limit)
	for rows.Next() {
		var d Department
		if err := rows.Scan(&d.ID, &d.Name, &d.CreatedAt); err != nil {
			return nil, 0, err
		}
		depts = append(depts, &d)
	}
	return depts, total, rows.Err()
}

type doctorRepoPG struct {
	pool *pgxpool.Pool
}

func NewDoctorRepo(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{pool: pool}
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO doctor (id, name, department_id)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		d.ID, d.Name, d.DepartmentID,
	).Scan(&d.CreatedAt)
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	var d Doctor
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, department_id, created_at FROM doctor WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.DepartmentID, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *doctorRepoPG) Update(ctx context.Context, d *Doctor) error {
	tag, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE doctor SET name = $2, department_id = $3 WHERE id = $1`,
		d.ID, d.Name, d.DepartmentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *doctorRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM doctor WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *doctorRepoPG) List(ctx context.Context, limit, offset int) ([]*DoctorDetail, int, error) {
	q := conn(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM doctor`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx, `
		SELECT d.id, d.name, d.department_id, d.created_at, dept.name AS department_name
		FROM doctor d
		JOIN department dept ON dept.id = d.department_id
		ORDER BY d.name
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	doctors := make([]*DoctorDetail, 0, limit)
	for rows.Next() {
		var d DoctorDetail
		if err := rows.Scan(&d.ID, &d.Name, &d.DepartmentID, &d.CreatedAt, &d.DepartmentName); err != nil {
			return nil, 0, err
		}
		doctors = append(doctors, &d)
	}
	return doctors, total, rows.Err()
}
