package api

import (
	"github.com/gorilla/mux"

	"github.com/mealtrack/mealtrack-server/internal/api/recovery"
	"github.com/mealtrack/mealtrack-server/internal/auth"
	"github.com/mealtrack/mealtrack-server/internal/services"
	"github.com/mealtrack/mealtrack-server/internal/store"
)

// NewRouter wires the meal endpoints. The standard and administrative
// families share one handler set behind two role gates; they are the only
// entry points into the meal service.
func NewRouter(svc *services.MealService, authorizer auth.Authorizer, st store.Store) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	h := NewMealHandler(svc)

	// Standard family: owner = caller, always.
	user := root.PathPrefix("/meals").Subrouter()
	user.Use(RequireRole(authorizer, auth.RoleUser))
	user.HandleFunc("", h.ListMeals).Methods("GET")
	user.HandleFunc("", h.CreateMeal).Methods("POST")
	user.HandleFunc("/{id}", h.GetMeal).Methods("GET")
	user.HandleFunc("/{id}", h.ReplaceMeal).Methods("PUT")
	user.HandleFunc("/{id}", h.DeleteMeal).Methods("DELETE")

	// Administrative family: owner = required userId parameter.
	admin := root.PathPrefix("/admin/meals").Subrouter()
	admin.Use(RequireRole(authorizer, auth.RoleAdmin))
	admin.HandleFunc("", h.AdminListMeals).Methods("GET")
	admin.HandleFunc("", h.AdminCreateMeal).Methods("POST")
	admin.HandleFunc("/{id}", h.AdminGetMeal).Methods("GET")
	admin.HandleFunc("/{id}", h.AdminReplaceMeal).Methods("PUT")
	admin.HandleFunc("/{id}", h.AdminDeleteMeal).Methods("DELETE")

	health := NewHealthHandler(st)
	root.HandleFunc("/api/health", health.CheckHealth).Methods("GET")
	root.HandleFunc("/api/health/db", health.CheckStoreHealth).Methods("GET")

	return root
}
