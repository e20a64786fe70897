package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

const msgDataUnavailable = "данные о бронированиях еще не загружены: ни один источник не ответил"

// RequireLoaded отвечает 503, пока реестр ни разу не загружен ни из одного источника
func RequireLoaded(loaded func() bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !loaded() {
				handlers.RespondError(w, http.StatusServiceUnavailable, msgDataUnavailable)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
