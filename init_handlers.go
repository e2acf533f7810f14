// Package main — Handler katmanı başlatma.
package main

import (
	"github.com/kadirgun/peyk/handlers"
)

// Handlers, tüm HTTP handler instance'larını tutan container struct.
type Handlers struct {
	Search  *handlers.SearchHandler
	Channel *handlers.ChannelHandler
}

// initHandlers, service'lerden handler katmanını oluşturur.
func initHandlers(svcs *Services) *Handlers {
	return &Handlers{
		Search:  handlers.NewSearchHandler(svcs.Search),
		Channel: handlers.NewChannelHandler(svcs.Channel),
	}
}
