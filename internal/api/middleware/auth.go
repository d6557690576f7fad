package middleware

import (
	"context"
	"net/http"

	"github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"

	// HeaderUserID идентификатор пользователя, проставляется API gateway
	HeaderUserID = "X-User-ID"
	// HeaderUserRole роль пользователя (client | admin)
	HeaderUserRole = "X-User-Role"

	RoleClient = "client"
	RoleAdmin  = "admin"

	msgMissingUserID = "cabeçalho X-User-ID ausente"
	msgAdminOnly     = "acesso restrito a administradores"
)

// Auth извлекает идентификатор и роль пользователя из заголовков
// и кладёт их в context запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgMissingUserID)
			return
		}

		role := r.Header.Get(HeaderUserRole)
		if role == "" {
			role = RoleClient
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только запросы с ролью admin
// Должен стоять после Auth
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserRole(r.Context()) != RoleAdmin {
			handlers.RespondError(w, http.StatusForbidden, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID возвращает идентификатор пользователя из context
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// UserRole возвращает роль пользователя из context
func UserRole(ctx context.Context) string {
	if v, ok := ctx.Value(userRoleKey).(string); ok {
		return v
	}
	return ""
}
