package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mealtrack/mealtrack-server/internal/model"
	"github.com/mealtrack/mealtrack-server/internal/store"
)

// MealService implements the ownership-scoped resource-access contract for
// meal records. Every operation is scoped to an effective owner resolved
// upstream by the authorization policy; the service never widens that
// scope. It holds no mutable state of its own and relies on the store's
// per-record atomicity — compound operations (exists, then save) carry an
// accepted read-then-write window.
type MealService struct {
	store store.Store
}

// NewMealService creates a meal service backed by the given store.
func NewMealService(s store.Store) *MealService {
	return &MealService{store: s}
}

// List returns every meal owned by ownerID, in store-native order.
// An owner without meals yields an empty slice, never an error.
func (s *MealService) List(ctx context.Context, ownerID string) ([]model.Meal, error) {
	return s.store.Meals().ListByOwner(ctx, ownerID)
}

// Get returns the meal matching both id and owner. An id owned by someone
// else yields the same NotFoundError as a nonexistent id.
func (s *MealService) Get(ctx context.Context, ownerID string, id int64) (*model.Meal, error) {
	m, err := s.store.Meals().GetByIDAndOwner(ctx, id, ownerID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.NotFoundError{MealID: id, OwnerID: ownerID}
	}
	return m, err
}

// Create validates the input, persists a new meal owned by ownerID, and
// returns the persisted record with its store-assigned id. The input can
// never supply an id or owner.
func (s *MealService) Create(ctx context.Context, ownerID string, in model.MealInput) (*model.Meal, error) {
	m, err := model.NewMealFromInput(in, ownerID)
	if err != nil {
		return nil, err
	}
	saved, err := s.store.Meals().Save(ctx, &m)
	if err != nil {
		log.Error().Stack().Err(err).Str("ownerId", ownerID).Msg("create meal failed")
		return nil, err
	}
	log.Info().Str("ownerId", ownerID).Int64("mealId", saved.ID).Msg("meal created")
	return saved, nil
}

// Delete removes the meal matching both id and owner, under the same
// ownership rule as Get.
func (s *MealService) Delete(ctx context.Context, ownerID string, id int64) error {
	m, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if err := s.store.Meals().Delete(ctx, m); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// lost the race with a concurrent delete
			return model.NotFoundError{MealID: id, OwnerID: ownerID}
		}
		return err
	}
	log.Info().Str("ownerId", ownerID).Int64("mealId", id).Msg("meal deleted")
	return nil
}

// Replace performs a full replace of the meal matching id and owner.
// Existence is checked scoped to id+owner first; the replacement record is
// then built from the input with its id and owner forced from the request
// parameters, so nothing from the payload can move the record. Fields
// absent from the input are never preserved from the prior state.
func (s *MealService) Replace(ctx context.Context, ownerID string, id int64, in model.MealInput) (*model.Meal, error) {
	exists, err := s.store.Meals().ExistsByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.NotFoundError{MealID: id, OwnerID: ownerID}
	}

	m, err := model.NewMealFromInput(in, ownerID)
	if err != nil {
		return nil, err
	}
	m.ID = id
	m.OwnerID = ownerID

	saved, err := s.store.Meals().Save(ctx, &m)
	if err != nil {
		log.Error().Stack().Err(err).Str("ownerId", ownerID).Int64("mealId", id).Msg("replace meal failed")
		return nil, err
	}
	log.Info().Str("ownerId", ownerID).Int64("mealId", id).Msg("meal replaced")
	return saved, nil
}
