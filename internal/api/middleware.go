package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mealtrack/mealtrack-server/internal/api/respond"
	"github.com/mealtrack/mealtrack-server/internal/auth"
)

// RequireRole authenticates the request and gates it on a single role.
// The user and admin endpoint families are mutually exclusive: holding
// the other family's role alone yields 403, not a widened scope.
func RequireRole(a auth.Authorizer, role string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := a.Authenticate(r)
			if err != nil {
				respond.WriteUnauthorized(w, err.Error())
				return
			}
			if !actor.HasRole(role) {
				respond.WriteForbidden(w, "insufficient role")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
		})
	}
}
