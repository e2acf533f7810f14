package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/kadirgun/peyk/handlers"
)

// RequestID, her isteğe benzersiz bir id atayan middleware.
//
// İstemci X-Request-ID header'ı gönderdiyse o kullanılır (proxy zincirinde
// izleme için), yoksa yeni uuid üretilir. ID hem response header'ına yazılır
// hem de context üzerinden handler log'larına taşınır.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		w.Header().Set("X-Request-ID", reqID)

		ctx := context.WithValue(r.Context(), handlers.RequestIDContextKey, reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
