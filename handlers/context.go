// Package handlers, HTTP endpoint handler'larını içerir.
// Handler'lar request parse eder, service çağırır, response serialize eder —
// iş mantığı service katmanındadır.
package handlers

// contextKey, context.WithValue için özel key tipi.
// string yerine özel tip kullanmak paketler arası key çakışmasını önler.
type contextKey string

// UserContextKey, context'te authenticated kullanıcıyı taşıyan key.
// AuthMiddleware ekler, handler'lar r.Context().Value(UserContextKey) ile okur.
const UserContextKey contextKey = "user"

// RequestIDContextKey, context'te request id'yi taşıyan key.
// RequestIDMiddleware ekler; handler log'ları istek izlemek için kullanır.
const RequestIDContextKey contextKey = "request_id"
