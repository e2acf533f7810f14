// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Middleware chain helper'ı:
//   - auth: request id + JWT token doğrulaması
//
// Sunucu üyelik kontrolü route katmanında DEĞİLDİR — service'ler üyeliği
// açık userID parametresiyle kendileri kontrol eder (403 oradan döner).
package main

import (
	"fmt"
	"net/http"

	"github.com/kadirgun/peyk/middleware"
)

// initRoutes, middleware chain'i kurar ve endpoint'leri mux'a bağlar.
func initRoutes(mux *http.ServeMux, h *Handlers, svcs *Services, repos *Repositories) {
	authMw := middleware.NewAuthMiddleware(svcs.Auth, repos.User)

	auth := func(handler http.HandlerFunc) http.Handler {
		return middleware.RequestID(authMw.Require(http.HandlerFunc(handler)))
	}

	// Health check — public
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"peyk"}`)
	})

	// Search — sunucu kapsamında mesaj araması
	mux.Handle("GET /api/servers/{serverId}/search", auth(h.Search.Search))

	// Channels — arama filtresi için kanal listesi
	mux.Handle("GET /api/servers/{serverId}/channels", auth(h.Channel.List))
}
