package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mealtrack/mealtrack-server/internal/api/respond"
	"github.com/mealtrack/mealtrack-server/internal/auth"
	"github.com/mealtrack/mealtrack-server/internal/model"
	"github.com/mealtrack/mealtrack-server/internal/services"
)

// MealHandler provides HTTP transport for meal operations. The user and
// admin endpoint families are thin adapters over the same handlers; they
// differ only in how the effective owner is resolved.
type MealHandler struct {
	svc *services.MealService
}

// NewMealHandler creates a meal handler backed by the given service.
func NewMealHandler(svc *services.MealService) *MealHandler {
	return &MealHandler{svc: svc}
}

// --- user family: effective owner is always the caller ---

// ListMeals GET /meals
func (h *MealHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerOwner(w, r)
	if !ok {
		return
	}
	h.list(w, r, owner)
}

// GetMeal GET /meals/{id}
func (h *MealHandler) GetMeal(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerOwner(w, r)
	if !ok {
		return
	}
	h.get(w, r, owner)
}

// CreateMeal POST /meals
func (h *MealHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerOwner(w, r)
	if !ok {
		return
	}
	h.create(w, r, owner)
}

// ReplaceMeal PUT /meals/{id}
func (h *MealHandler) ReplaceMeal(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerOwner(w, r)
	if !ok {
		return
	}
	h.replace(w, r, owner)
}

// DeleteMeal DELETE /meals/{id}
func (h *MealHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	owner, ok := callerOwner(w, r)
	if !ok {
		return
	}
	h.delete(w, r, owner)
}

// --- admin family: effective owner is the required userId parameter ---

// AdminListMeals GET /admin/meals?userId=
func (h *MealHandler) AdminListMeals(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestedOwner(w, r)
	if !ok {
		return
	}
	h.list(w, r, owner)
}

// AdminGetMeal GET /admin/meals/{id}?userId=
func (h *MealHandler) AdminGetMeal(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestedOwner(w, r)
	if !ok {
		return
	}
	h.get(w, r, owner)
}

// AdminCreateMeal POST /admin/meals?userId=
func (h *MealHandler) AdminCreateMeal(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestedOwner(w, r)
	if !ok {
		return
	}
	h.create(w, r, owner)
}

// AdminReplaceMeal PUT /admin/meals/{id}?userId=
func (h *MealHandler) AdminReplaceMeal(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestedOwner(w, r)
	if !ok {
		return
	}
	h.replace(w, r, owner)
}

// AdminDeleteMeal DELETE /admin/meals/{id}?userId=
func (h *MealHandler) AdminDeleteMeal(w http.ResponseWriter, r *http.Request) {
	owner, ok := requestedOwner(w, r)
	if !ok {
		return
	}
	h.delete(w, r, owner)
}

// --- shared operation bodies ---

func (h *MealHandler) list(w http.ResponseWriter, r *http.Request, owner string) {
	meals, err := h.svc.List(r.Context(), owner)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	views := make([]model.MealView, 0, len(meals))
	for _, m := range meals {
		views = append(views, model.NewMealView(m))
	}
	respond.WriteJSON(w, http.StatusOK, views)
}

func (h *MealHandler) get(w http.ResponseWriter, r *http.Request, owner string) {
	id, ok := mealID(w, r)
	if !ok {
		return
	}
	m, err := h.svc.Get(r.Context(), owner, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, model.NewMealView(*m))
}

func (h *MealHandler) create(w http.ResponseWriter, r *http.Request, owner string) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	m, err := h.svc.Create(r.Context(), owner, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, model.NewMealSummary(*m))
}

func (h *MealHandler) replace(w http.ResponseWriter, r *http.Request, owner string) {
	id, ok := mealID(w, r)
	if !ok {
		return
	}
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}
	m, err := h.svc.Replace(r.Context(), owner, id, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	// replace reports 201, matching the original observed contract
	respond.WriteJSON(w, http.StatusCreated, model.NewMealSummary(*m))
}

func (h *MealHandler) delete(w http.ResponseWriter, r *http.Request, owner string) {
	id, ok := mealID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), owner, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- request plumbing ---

// callerOwner resolves the effective owner for the user endpoint family:
// always the authenticated caller, regardless of anything in the request.
func callerOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "missing caller identity")
		return "", false
	}
	return auth.ResolveEffectiveOwner(actor, ""), true
}

// requestedOwner resolves the effective owner for the admin endpoint
// family from the required userId query parameter.
func requestedOwner(w http.ResponseWriter, r *http.Request) (string, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.WriteUnauthorized(w, "missing caller identity")
		return "", false
	}
	requested := r.URL.Query().Get("userId")
	if requested == "" {
		respond.WriteFieldErrors(w, map[string]string{"userId": "must not be null"})
		return "", false
	}
	return auth.ResolveEffectiveOwner(actor, requested), true
}

// mealID parses the {id} path segment. The route carries no numeric
// pattern on purpose: a non-numeric id must surface as a type-mismatch
// body, not a bare 404.
func mealID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respond.WriteFieldErrors(w, map[string]string{
			"id": model.TypeMismatchError{Field: "id", Raw: raw}.Error(),
		})
		return 0, false
	}
	return id, true
}

// decodeInput decodes the request body into a MealInput. Any decode
// failure is a structural malformation, reported generically and never
// attributed to a field.
func decodeInput(w http.ResponseWriter, r *http.Request) (model.MealInput, bool) {
	var in model.MealInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteFieldErrors(w, map[string]string{
			"error": model.MalformedPayloadError{}.Error(),
		})
		return model.MealInput{}, false
	}
	return in, true
}

// writeServiceError maps service errors onto the response taxonomy.
// Classification is total: anything outside the taxonomy is a collaborator
// failure and propagates as a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case model.IsNotFoundError(err):
		respond.WriteNotFoundText(w, err.Error())
	case model.IsValidationError(err):
		var ve model.ValidationError
		_ = errors.As(err, &ve)
		respond.WriteFieldErrors(w, ve.Fields)
	default:
		respond.WriteInternalError(w, err.Error())
	}
}
