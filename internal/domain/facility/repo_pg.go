package facility

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

type roomTypeRepoPG struct {
	pool *pgxpool.Pool
}

func NewRoomTypeRepo(pool *pgxpool.Pool) RoomTypeRepository {
	return &roomTypeRepoPG{pool: pool}
}

func (r *roomTypeRepoPG) Create(ctx context.Context, rt *RoomType) error {
	rt.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO room_type (id, name, daily_rate)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		rt.ID, rt.Name, rt.DailyRate,
	).Scan(&rt.CreatedAt)
}

func (r *roomTypeRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*RoomType, error) {
	var rt RoomType
	err := conn(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, daily_rate, created_at FROM room_type WHERE id = $1`, id,
	).Scan(&rt.ID, &rt.Name, &rt.DailyRate, &rt.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *roomTypeRepoPG) Update(ctx context.Context, rt *RoomType) error {
	tag, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE room_type SET name = $2, daily_rate = $3 WHERE id = $1`,
		rt.ID, rt.Name, rt.DailyRate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *roomTypeRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM room_type WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *roomTypeRepoPG) List(ctx context.Context, limit, offset int) ([]*RoomType, int, error) {
	q := conn(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM room_type`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx, `
		SELECT id, name, daily_rate, created_at
		FROM room_type
		ORDER BY name
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	types := make([]*RoomType, 0, limit)
	for rows.Next() {
		var rt RoomType
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.DailyRate, &rt.CreatedAt); err != nil {
			return nil, 0, err
		}
		types = append(types, &rt)
	}
	return types, total, rows.Err()
}

type roomRepoPG struct {
	pool *pgxpool.Pool
}

func NewRoomRepo(pool *pgxpool.Pool) RoomRepository {
	return &roomRepoPG{pool: pool}
}

const roomCols = `id, room_number, type_id, department_id, status, created_at, updated_at`

func (r *roomRepoPG) Create(ctx context.Context, rm *Room) error {
	rm.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO room (id, room_number, type_id, department_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		rm.ID, rm.RoomNumber, rm.TypeID, rm.DepartmentID, rm.Status,
	).Scan(&rm.CreatedAt, &rm.UpdatedAt)
}

func (r *roomRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	return r.get(ctx, id, false)
}

func (r *roomRepoPG) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*Room, error) {
	return r.get(ctx, id, true)
}

func (r *roomRepoPG) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*Room, error) {
	q := `SELECT ` + roomCols + ` FROM room WHERE id = $1`
	if forUpdate {
		q += ` FOR UPDATE`
	}
	var rm Room
	err := conn(ctx, r.pool).QueryRow(ctx, q, id).Scan(
		&rm.ID, &rm.RoomNumber, &rm.TypeID, &rm.DepartmentID, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *roomRepoPG) Update(ctx context.Context, rm *Room) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE room
		SET room_number = $2, type_id = $3, department_id = $4, updated_at = now()
		WHERE id = $1`,
		rm.ID, rm.RoomNumber, rm.TypeID, rm.DepartmentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *roomRepoPG) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := conn(ctx, r.pool).Exec(ctx,
		`UPDATE room SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *roomRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM room WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *roomRepoPG) List(ctx context.Context, status string, limit, offset int) ([]*RoomDetail, int, error) {
	q := conn(ctx, r.pool)

	where := ``
	args := []interface{}{limit, offset}
	countArgs := []interface{}{}
	if status != "" {
		where = ` WHERE r.status = $3`
		args = append(args, status)
		countArgs = append(countArgs, status)
	}

	countQ := `SELECT count(*) FROM room r`
	if status != "" {
		countQ += ` WHERE r.status = $1`
	}
	var total int
	if err := q.QueryRow(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx, `
		SELECT r.id, r.room_number, r.type_id, r.department_id, r.status,
			r.created_at, r.updated_at,
			rt.name AS type_name, rt.daily_rate, d.name AS department_name
		FROM room r
		JOIN room_type rt ON rt.id = r.type_id
		JOIN department d ON d.id = r.department_id`+where+`
		ORDER BY r.room_number
		LIMIT $1 OFFSET $2`,
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	roomsOut := make([]*RoomDetail, 0, limit)
	for rows.Next() {
		var rd RoomDetail
		if err := rows.Scan(
			&rd.ID, &rd.RoomNumber, &rd.TypeID, &rd.DepartmentID, &rd.Status,
			&rd.CreatedAt, &rd.UpdatedAt,
			&rd.TypeName, &rd.DailyRate, &rd.DepartmentName,
		); err != nil {
			return nil, 0, err
		}
		roomsOut = append(roomsOut, &rd)
	}
	return roomsOut, total, rows.Err()
}
