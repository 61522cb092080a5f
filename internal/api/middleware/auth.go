package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmfaustino/DEI-RoomService/internal/api/handlers"
)

// HeaderTeacherID заголовок с идентификатором преподавателя.
// Аутентификацию выполняет API gateway, сервис доверяет заголовку.
const HeaderTeacherID = "X-Teacher-ID"

type teacherIDKey struct{}

// Auth проверяет наличие корректного X-Teacher-ID и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderTeacherID)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+HeaderTeacherID)
			return
		}

		teacherID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || teacherID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+HeaderTeacherID)
			return
		}

		ctx := context.WithValue(r.Context(), teacherIDKey{}, teacherID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TeacherIDFromContext возвращает идентификатор преподавателя из контекста
func TeacherIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(teacherIDKey{}).(int64)
	return id, ok
}
