package repository

import (
	"context"

	"github.com/kadirgun/peyk/models"
)

// ChannelRepository, kanal veritabanı işlemleri için interface.
//
// ListIDsByKind: Arama kapsamı (scope) çözümlemesi için — verilen sunucunun
// verilen türdeki kanal ID'lerini döner. Scope her istekte taze hesaplanır,
// cache'lenmez.
type ChannelRepository interface {
	ListByServer(ctx context.Context, serverID string) ([]models.Channel, error)
	ListIDsByKind(ctx context.Context, serverID string, kind models.ChannelKind) ([]string, error)
}
