package services

import (
	"context"
	"testing"

	"github.com/mealtrack/mealtrack-server/internal/model"
	"github.com/mealtrack/mealtrack-server/internal/store"
)

// --- Fakes ---

type fakeStore struct {
	meals  map[int64]model.Meal
	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{meals: map[int64]model.Meal{}, nextID: 1}
}

func (f *fakeStore) Meals() store.Meals             { return &fakeMeals{f} }
func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func (f *fakeStore) seed(owner, date string, mt model.MealTime, mc model.MealContent) model.Meal {
	d, _ := model.ParseDate(date)
	m := model.Meal{ID: f.nextID, OwnerID: owner, MealDate: d, MealTime: mt, MealContent: mc}
	f.meals[m.ID] = m
	f.nextID++
	return m
}

type fakeMeals struct{ p *fakeStore }

func (fm *fakeMeals) ListByOwner(_ context.Context, ownerID string) ([]model.Meal, error) {
	var res []model.Meal
	for id := int64(1); id < fm.p.nextID; id++ {
		if m, ok := fm.p.meals[id]; ok && m.OwnerID == ownerID {
			res = append(res, m)
		}
	}
	return res, nil
}

func (fm *fakeMeals) GetByIDAndOwner(_ context.Context, id int64, ownerID string) (*model.Meal, error) {
	m, ok := fm.p.meals[id]
	if !ok || m.OwnerID != ownerID {
		return nil, model.ErrNotFound
	}
	out := m
	return &out, nil
}

func (fm *fakeMeals) ExistsByIDAndOwner(_ context.Context, id int64, ownerID string) (bool, error) {
	m, ok := fm.p.meals[id]
	return ok && m.OwnerID == ownerID, nil
}

func (fm *fakeMeals) Save(_ context.Context, m *model.Meal) (*model.Meal, error) {
	out := *m
	if out.ID == 0 {
		out.ID = fm.p.nextID
		fm.p.nextID++
	}
	fm.p.meals[out.ID] = out
	return &out, nil
}

func (fm *fakeMeals) Delete(_ context.Context, m *model.Meal) error {
	existing, ok := fm.p.meals[m.ID]
	if !ok || existing.OwnerID != m.OwnerID {
		return model.ErrNotFound
	}
	delete(fm.p.meals, m.ID)
	return nil
}

func input(date, mealTime, content string) model.MealInput {
	return model.MealInput{MealDate: &date, MealTime: &mealTime, MealContent: &content}
}

// --- Tests ---

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := NewMealService(newFakeStore())
	ctx := context.Background()

	created, err := svc.Create(ctx, "U1", input("2020-11-29", "DINNER", "BEEF"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 || created.OwnerID != "U1" {
		t.Fatalf("unexpected created meal: %+v", created)
	}

	got, err := svc.Get(ctx, "U1", created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.MealDate.String() != "2020-11-29" || got.MealTime != model.Dinner || got.MealContent != model.Beef {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	st := newFakeStore()
	svc := NewMealService(st)

	_, err := svc.Create(context.Background(), "U1", model.MealInput{})
	if !model.IsValidationError(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(st.meals) != 0 {
		t.Fatalf("invalid input must not be persisted")
	}
}

func TestGetScopedToOwner(t *testing.T) {
	st := newFakeStore()
	other := st.seed("U2", "2020-11-29", model.Lunch, model.Fish)
	svc := NewMealService(st)

	_, err := svc.Get(context.Background(), "U1", other.ID)
	if !model.IsNotFoundError(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err.Error() != "Meal with id=1 not found for userId=U1" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestListScopedToOwner(t *testing.T) {
	st := newFakeStore()
	st.seed("U1", "2020-11-29", model.Lunch, model.Fish)
	st.seed("U2", "2020-11-29", model.Dinner, model.Beef)
	st.seed("U1", "2020-11-30", model.Breakfast, model.Vegan)
	svc := NewMealService(st)

	lst, err := svc.List(context.Background(), "U1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lst) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(lst))
	}
	for _, m := range lst {
		if m.OwnerID != "U1" {
			t.Fatalf("foreign meal in listing: %+v", m)
		}
	}

	empty, err := svc.List(context.Background(), "U3")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty list, got n=%d err=%v", len(empty), err)
	}
}

func TestDeleteThenGetNotFound(t *testing.T) {
	st := newFakeStore()
	m := st.seed("U1", "2020-11-29", model.Dinner, model.Beef)
	svc := NewMealService(st)
	ctx := context.Background()

	if err := svc.Delete(ctx, "U1", m.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, "U1", m.ID); !model.IsNotFoundError(err) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}

func TestDeleteScopedToOwner(t *testing.T) {
	st := newFakeStore()
	m := st.seed("U2", "2020-11-29", model.Dinner, model.Beef)
	svc := NewMealService(st)

	err := svc.Delete(context.Background(), "U1", m.ID)
	if !model.IsNotFoundError(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if _, ok := st.meals[m.ID]; !ok {
		t.Fatalf("foreign meal must not be deleted")
	}
}

func TestReplaceKeepsIDAndFullyReplaces(t *testing.T) {
	st := newFakeStore()
	m := st.seed("U1", "2020-11-29", model.Dinner, model.Beef)
	svc := NewMealService(st)
	ctx := context.Background()

	replaced, err := svc.Replace(ctx, "U1", m.ID, input("2021-01-01", "BREAKFAST", "VEGAN"))
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if replaced.ID != m.ID {
		t.Fatalf("replace changed the id: %d", replaced.ID)
	}

	got, err := svc.Get(ctx, "U1", m.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.MealDate.String() != "2021-01-01" || got.MealTime != model.Breakfast || got.MealContent != model.Vegan {
		t.Fatalf("not fully replaced: %+v", got)
	}
}

func TestReplaceMissingIDNotFound(t *testing.T) {
	st := newFakeStore()
	svc := NewMealService(st)

	_, err := svc.Replace(context.Background(), "U1", 42, input("2021-01-01", "BREAKFAST", "VEGAN"))
	if !model.IsNotFoundError(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if len(st.meals) != 0 {
		t.Fatalf("replace of a missing id must not insert")
	}
}

func TestReplaceScopedToOwnerLeavesRowUntouched(t *testing.T) {
	st := newFakeStore()
	m := st.seed("U2", "2020-11-29", model.Dinner, model.Beef)
	svc := NewMealService(st)

	_, err := svc.Replace(context.Background(), "U1", m.ID, input("2021-01-01", "BREAKFAST", "VEGAN"))
	if !model.IsNotFoundError(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	stored := st.meals[m.ID]
	if stored.OwnerID != "U2" || stored.MealContent != model.Beef || stored.MealTime != model.Dinner {
		t.Fatalf("foreign meal mutated: %+v", stored)
	}
}
