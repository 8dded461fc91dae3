package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/saltylife/SL-RentalService/internal/api/handlers"
)

// HeaderOwnerKey заголовок с ключом владельца для защищённых маршрутов
const HeaderOwnerKey = "X-Owner-Key"

// Auth защищает маршруты владельца: запрос обязан нести корректный
// X-Owner-Key. Сравнение константное по времени.
func Auth(ownerKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(HeaderOwnerKey)
			if got == "" {
				handlers.RespondUnauthorized(w, "owner key is required")
				return
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(ownerKey)) != 1 {
				handlers.RespondForbidden(w, "invalid owner key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
