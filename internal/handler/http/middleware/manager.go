package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/auth"
	"github.com/cyberclub/staffhub-backend-go/internal/handler/http/response"
)

func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(auth.RoleManager) {
			response.Forbidden(w, "Manager privilege required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
