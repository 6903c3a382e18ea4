package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jpedrosa/Mira-BookingService/internal/api/handlers"
	"github.com/jpedrosa/Mira-BookingService/internal/domain"
)

type contextKey string

const actorKey contextKey = "actor"

// Заголовки аутентификации; их заполняет вышестоящий gateway
const (
	HeaderUserID  = "X-User-ID"
	HeaderAdminID = "X-Admin-ID"
)

// Auth требует аутентифицированного актора: клиента (X-User-ID) или
// администратора (X-Admin-ID). Актор кладётся в контекст запроса.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromHeaders(r)
		if !ok {
			handlers.RespondUnauthorized(w, "authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), actorKey, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly требует администратора. Используется поверх Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := ActorFromContext(r.Context())
		if !actor.IsAdmin() {
			handlers.RespondForbidden(w, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ActorFromContext возвращает актора запроса; zero value для публичных роутов
func ActorFromContext(ctx context.Context) domain.Actor {
	actor, _ := ctx.Value(actorKey).(domain.Actor)
	return actor
}

func actorFromHeaders(r *http.Request) (domain.Actor, bool) {
	var actor domain.Actor

	if raw := r.Header.Get(HeaderAdminID); raw != "" {
		adminID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || adminID <= 0 {
			return actor, false
		}
		actor.AdminID = &adminID
	}

	if userID := r.Header.Get(HeaderUserID); userID != "" {
		actor.UserID = &userID
	}

	return actor, actor.AdminID != nil || actor.UserID != nil
}
