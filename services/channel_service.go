package services

import (
	"context"
	"fmt"

	"github.com/kadirgun/peyk/models"
	"github.com/kadirgun/peyk/pkg"
	"github.com/kadirgun/peyk/repository"
)

// ChannelService, kanal listeleme iş mantığı interface'i.
// Arama servisiyle aynı kanal store'unu kullanır; istemci arama filtresi
// kurarken kanal listesine buradan ulaşır.
type ChannelService interface {
	List(ctx context.Context, userID, serverID string) ([]models.Channel, error)
}

type channelService struct {
	serverRepo  repository.ServerRepository
	channelRepo repository.ChannelRepository
}

// NewChannelService, constructor.
func NewChannelService(serverRepo repository.ServerRepository, channelRepo repository.ChannelRepository) ChannelService {
	return &channelService{
		serverRepo:  serverRepo,
		channelRepo: channelRepo,
	}
}

func (s *channelService) List(ctx context.Context, userID, serverID string) ([]models.Channel, error) {
	// Üyelik kontrolü — kanal listesi de sunucu üyelerine özeldir.
	isMember, err := s.serverRepo.IsMember(ctx, serverID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, fmt.Errorf("%w: you are not a member of this server", pkg.ErrForbidden)
	}

	channels, err := s.channelRepo.ListByServer(ctx, serverID)
	if err != nil {
		return nil, err
	}

	if channels == nil {
		channels = []models.Channel{}
	}

	return channels, nil
}
