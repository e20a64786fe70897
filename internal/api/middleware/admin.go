package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

// AdminKeyHeader заголовок с общим ключом администратора
const AdminKeyHeader = "X-Admin-Key"

const msgAdminOnly = "операция доступна только администратору"

// AdminOnly пропускает запрос, только если экземпляр запущен в роли администратора
// и заголовок X-Admin-Key совпадает с ключом из конфигурации
func AdminOnly(isAdmin bool, key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminKeyHeader)
			if !isAdmin || key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				handlers.RespondForbidden(w, msgAdminOnly)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
