package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mealtrack/mealtrack-server/internal/model"
	"github.com/mealtrack/mealtrack-server/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and
// verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS meals (
    id           BIGSERIAL PRIMARY KEY,
    owner_id     TEXT NOT NULL,
    meal_date    DATE NOT NULL,
    meal_time    TEXT NOT NULL,
    meal_content TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_meals_owner ON meals (owner_id);
`

// EnsureSchema creates the meals table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

// NewWithDB constructs a Postgres-backed store over an open database/sql handle.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Meals() store.Meals             { return &meals{db: s.db} }
func (s *pgStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

type meals struct{ db *sql.DB }

func (m *meals) ListByOwner(ctx context.Context, ownerID string) ([]model.Meal, error) {
	rows, err := m.db.QueryContext(ctx, `
        SELECT id, owner_id, meal_date, meal_time, meal_content
        FROM meals WHERE owner_id=$1
    `, ownerID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var res []model.Meal
	for rows.Next() {
		rec, err := scanMeal(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *rec)
	}
	return res, rows.Err()
}

func (m *meals) GetByIDAndOwner(ctx context.Context, id int64, ownerID string) (*model.Meal, error) {
	row := m.db.QueryRowContext(ctx, `
        SELECT id, owner_id, meal_date, meal_time, meal_content
        FROM meals WHERE id=$1 AND owner_id=$2
    `, id, ownerID)
	rec, err := scanMeal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	return rec, err
}

func (m *meals) ExistsByIDAndOwner(ctx context.Context, id int64, ownerID string) (bool, error) {
	var exists bool
	err := m.db.QueryRowContext(ctx, `
        SELECT EXISTS (SELECT 1 FROM meals WHERE id=$1 AND owner_id=$2)
    `, id, ownerID).Scan(&exists)
	return exists, err
}

func (m *meals) Save(ctx context.Context, rec *model.Meal) (*model.Meal, error) {
	out := *rec
	mealDate, err := time.Parse("2006-01-02", rec.MealDate.String())
	if err != nil {
		return nil, err
	}
	if rec.ID == 0 {
		err := m.db.QueryRowContext(ctx, `
            INSERT INTO meals (owner_id, meal_date, meal_time, meal_content)
            VALUES ($1,$2,$3,$4)
            RETURNING id
        `, rec.OwnerID, mealDate, string(rec.MealTime), string(rec.MealContent)).Scan(&out.ID)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
	_, err = m.db.ExecContext(ctx, `
        INSERT INTO meals (id, owner_id, meal_date, meal_time, meal_content)
        VALUES ($1,$2,$3,$4,$5)
        ON CONFLICT (id) DO UPDATE
        SET owner_id=EXCLUDED.owner_id,
            meal_date=EXCLUDED.meal_date,
            meal_time=EXCLUDED.meal_time,
            meal_content=EXCLUDED.meal_content
    `, rec.ID, rec.OwnerID, mealDate, string(rec.MealTime), string(rec.MealContent))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *meals) Delete(ctx context.Context, rec *model.Meal) error {
	res, err := m.db.ExecContext(ctx, `
        DELETE FROM meals WHERE id=$1 AND owner_id=$2
    `, rec.ID, rec.OwnerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeal(row rowScanner) (*model.Meal, error) {
	var rec model.Meal
	var mealDate time.Time
	var mealTime, mealContent string
	if err := row.Scan(&rec.ID, &rec.OwnerID, &mealDate, &mealTime, &mealContent); err != nil {
		return nil, err
	}
	rec.MealDate = model.NewDate(mealDate)
	mt, err := model.ParseMealTime(mealTime)
	if err != nil {
		return nil, fmt.Errorf("stored meal %d: %w", rec.ID, err)
	}
	mc, err := model.ParseMealContent(mealContent)
	if err != nil {
		return nil, fmt.Errorf("stored meal %d: %w", rec.ID, err)
	}
	rec.MealTime = mt
	rec.MealContent = mc
	return &rec, nil
}
