package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/mealtrack/mealtrack-server/internal/model"
	"github.com/mealtrack/mealtrack-server/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "meals.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return NewWithDB(db)
}

func newMeal(t *testing.T, owner, date string, mt model.MealTime, mc model.MealContent) *model.Meal {
	t.Helper()
	d, err := model.ParseDate(date)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return &model.Meal{OwnerID: owner, MealDate: d, MealTime: mt, MealContent: mc}
}

func TestSaveAssignsFreshID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := "u-" + uuid.New().String()

	m1, err := s.Meals().Save(ctx, newMeal(t, owner, "2020-11-29", model.Dinner, model.Beef))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if m1.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	m2, err := s.Meals().Save(ctx, newMeal(t, owner, "2020-11-30", model.Lunch, model.Fish))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if m2.ID == m1.ID {
		t.Fatalf("id collision: %d", m1.ID)
	}
}

func TestGetByIDAndOwnerScopesToOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved, err := s.Meals().Save(ctx, newMeal(t, "U1", "2020-11-29", model.Dinner, model.Beef))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Meals().GetByIDAndOwner(ctx, saved.ID, "U1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.MealDate.String() != "2020-11-29" || got.MealTime != model.Dinner || got.MealContent != model.Beef {
		t.Fatalf("unexpected meal: %+v", got)
	}

	// same id, different owner: indistinguishable from absence
	if _, err := s.Meals().GetByIDAndOwner(ctx, saved.ID, "U2"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExistsByIDAndOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved, err := s.Meals().Save(ctx, newMeal(t, "U1", "2020-11-29", model.Breakfast, model.Vegan))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	ok, err := s.Meals().ExistsByIDAndOwner(ctx, saved.ID, "U1")
	if err != nil || !ok {
		t.Fatalf("exists: ok=%v err=%v", ok, err)
	}
	ok, err = s.Meals().ExistsByIDAndOwner(ctx, saved.ID, "U2")
	if err != nil || ok {
		t.Fatalf("cross-owner exists: ok=%v err=%v", ok, err)
	}
}

func TestListByOwnerReturnsOnlyOwnedRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, owner := range []string{"U1", "U1", "U2"} {
		if _, err := s.Meals().Save(ctx, newMeal(t, owner, "2020-11-29", model.Lunch, model.Chicken)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	lst, err := s.Meals().ListByOwner(ctx, "U1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lst) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(lst))
	}
	for _, m := range lst {
		if m.OwnerID != "U1" {
			t.Fatalf("foreign row in listing: %+v", m)
		}
	}

	empty, err := s.Meals().ListByOwner(ctx, "nobody")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty listing, got n=%d err=%v", len(empty), err)
	}
}

func TestSaveWithIDReplacesRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved, err := s.Meals().Save(ctx, newMeal(t, "U1", "2020-11-29", model.Dinner, model.Beef))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	repl := newMeal(t, "U1", "2021-01-01", model.Breakfast, model.Vegan)
	repl.ID = saved.ID
	if _, err := s.Meals().Save(ctx, repl); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := s.Meals().GetByIDAndOwner(ctx, saved.ID, "U1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.MealDate.String() != "2021-01-01" || got.MealTime != model.Breakfast || got.MealContent != model.Vegan {
		t.Fatalf("row not fully replaced: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved, err := s.Meals().Save(ctx, newMeal(t, "U1", "2020-11-29", model.Dinner, model.Pork))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Meals().Delete(ctx, saved); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Meals().GetByIDAndOwner(ctx, saved.ID, "U1"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Meals().Delete(ctx, saved); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}
