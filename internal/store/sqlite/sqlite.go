package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mealtrack/mealtrack-server/internal/model"
	"github.com/mealtrack/mealtrack-server/internal/store"
)

// Open opens (or creates) a SQLite database at the given path and enables
// WAL journal mode. Used for the local build target and in-process tests.
func Open(path string) (*sql.DB, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
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
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    owner_id     TEXT NOT NULL,
    meal_date    TEXT NOT NULL,
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

// NewWithDB constructs a SQLite-backed store over an open database/sql handle.
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Meals() store.Meals             { return &meals{db: s.db} }
func (s *sqliteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

type meals struct{ db *sql.DB }

func (m *meals) ListByOwner(ctx context.Context, ownerID string) ([]model.Meal, error) {
	rows, err := m.db.QueryContext(ctx, `
        SELECT id, owner_id, meal_date, meal_time, meal_content
        FROM meals WHERE owner_id=?
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
        FROM meals WHERE id=? AND owner_id=?
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
        SELECT EXISTS (SELECT 1 FROM meals WHERE id=? AND owner_id=?)
    `, id, ownerID).Scan(&exists)
	return exists, err
}

func (m *meals) Save(ctx context.Context, rec *model.Meal) (*model.Meal, error) {
	out := *rec
	if rec.ID == 0 {
		res, err := m.db.ExecContext(ctx, `
            INSERT INTO meals (owner_id, meal_date, meal_time, meal_content)
            VALUES (?,?,?,?)
        `, rec.OwnerID, rec.MealDate.String(), string(rec.MealTime), string(rec.MealContent))
		if err != nil {
			return nil, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, err
		}
		out.ID = id
		return &out, nil
	}
	_, err := m.db.ExecContext(ctx, `
        INSERT INTO meals (id, owner_id, meal_date, meal_time, meal_content)
        VALUES (?,?,?,?,?)
        ON CONFLICT (id) DO UPDATE
        SET owner_id=excluded.owner_id,
            meal_date=excluded.meal_date,
            meal_time=excluded.meal_time,
            meal_content=excluded.meal_content
    `, rec.ID, rec.OwnerID, rec.MealDate.String(), string(rec.MealTime), string(rec.MealContent))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *meals) Delete(ctx context.Context, rec *model.Meal) error {
	res, err := m.db.ExecContext(ctx, `
        DELETE FROM meals WHERE id=? AND owner_id=?
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
	var mealDate, mealTime, mealContent string
	if err := row.Scan(&rec.ID, &rec.OwnerID, &mealDate, &mealTime, &mealContent); err != nil {
		return nil, err
	}
	d, err := model.ParseDate(mealDate)
	if err != nil {
		return nil, fmt.Errorf("stored meal %d: %w", rec.ID, err)
	}
	mt, err := model.ParseMealTime(mealTime)
	if err != nil {
		return nil, fmt.Errorf("stored meal %d: %w", rec.ID, err)
	}
	mc, err := model.ParseMealContent(mealContent)
	if err != nil {
		return nil, fmt.Errorf("stored meal %d: %w", rec.ID, err)
	}
	rec.MealDate = d
	rec.MealTime = mt
	rec.MealContent = mc
	return &rec, nil
}
