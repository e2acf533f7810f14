// Package main — Service katmanı başlatma.
package main

import (
	"github.com/kadirgun/peyk/config"
	"github.com/kadirgun/peyk/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth    services.AuthService
	Channel services.ChannelService
	Search  services.SearchService
}

// initServices, repository'lerden service katmanını oluşturur.
// Service'ler repository interface'lerine bağımlıdır — somut SQLite
// tiplerini bilmezler.
func initServices(repos *Repositories, cfg *config.Config) *Services {
	serializer := services.NewMessageSerializer(repos.Attachment, repos.Reaction)

	return &Services{
		Auth:    services.NewAuthService(cfg.JWT.Secret),
		Channel: services.NewChannelService(repos.Server, repos.Channel),
		Search: services.NewSearchService(
			repos.Server,
			repos.Channel,
			repos.Search,
			serializer,
			cfg.Search.DefaultLimit,
			cfg.Search.MaxLimit,
		),
	}
}
