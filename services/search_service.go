package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/kadirgun/peyk/models"
	"github.com/kadirgun/peyk/pkg"
	"github.com/kadirgun/peyk/repository"
)

// SearchService, mesaj arama iş mantığı interface'i.
//
// Akış: üyelik kontrolü → parametre normalize → kapsam (scope) çözümleme →
// arama sorgusu (limit+1) → sayfa paketleme. Her aşama senkron ve stateless'tır;
// istekler arası paylaşılan state yoktur.
//
// userID her zaman açık parametredir — "aktif kullanıcı" servis içinde ambient
// state olarak taşınmaz. Bu, çekirdeği saf ve bağımsız test edilebilir tutar.
type SearchService interface {
	Search(ctx context.Context, userID, serverID string, params models.SearchParams) (*models.SearchPage, error)
}

type searchService struct {
	serverRepo   repository.ServerRepository
	channelRepo  repository.ChannelRepository
	searchRepo   repository.SearchRepository
	serializer   MessageSerializer
	defaultLimit int
	maxLimit     int
}

// NewSearchService, constructor.
func NewSearchService(
	serverRepo repository.ServerRepository,
	channelRepo repository.ChannelRepository,
	searchRepo repository.SearchRepository,
	serializer MessageSerializer,
	defaultLimit, maxLimit int,
) SearchService {
	return &searchService{
		serverRepo:   serverRepo,
		channelRepo:  channelRepo,
		searchRepo:   searchRepo,
		serializer:   serializer,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

func (s *searchService) Search(ctx context.Context, userID, serverID string, params models.SearchParams) (*models.SearchPage, error) {
	// 1. Üyelik kontrolü — her şeyden önce. Üye olmayan istekte bulunan,
	// sorgu boş olsa bile 403 alır ve üyelik sorgusu dışında hiçbir
	// veritabanı okuması yapılmaz.
	isMember, err := s.serverRepo.IsMember(ctx, serverID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, fmt.Errorf("%w: you are not a member of this server", pkg.ErrForbidden)
	}

	// 2. Normalize: trim + limit clamp. Boş sorgu tanım gereği hiçbir şeyle
	// eşleşmez — hata değil, boş sayfa (store'a dokunmadan).
	params.Normalize(s.defaultLimit, s.maxLimit)
	if params.Query == "" {
		return models.EmptySearchPage(), nil
	}

	// 3. Kapsam: sunucunun text kanalları. Voice kanallar aramada yoktur.
	// Kapsam her istekte taze hesaplanır.
	scope, err := s.channelRepo.ListIDsByKind(ctx, serverID, models.ChannelKindText)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve channel scope: %w", err)
	}
	if len(scope) == 0 {
		return models.EmptySearchPage(), nil
	}

	// Kanal filtresi verilmişse kapsamla doğrulanır: başka sunucunun (veya
	// var olmayan) kanalı sessizce aranmaz, 404 döner.
	if params.ChannelID != nil {
		if !slices.Contains(scope, *params.ChannelID) {
			return nil, fmt.Errorf("%w: channel not found in this server", pkg.ErrNotFound)
		}
		scope = []string{*params.ChannelID}
	}

	// 4. Arama: limit+1 satır iste — fazladan satır dönerse sonraki sayfa var
	// demektir, ayrı COUNT sorgusuna gerek kalmaz.
	rows, err := s.searchRepo.SearchMessages(ctx, repository.SearchFilter{
		ChannelIDs: scope,
		Query:      params.Query,
		AuthorID:   params.AuthorID,
		AfterID:    params.Cursor,
	}, params.Limit+1)
	if err != nil {
		return nil, err
	}

	// 5. Sayfa paketleme: lookahead satırını at, cursor'ı hesapla.
	// NextCursor daima sayfanın son mesajının id'sidir — istemci için opaque.
	hasMore := len(rows) > params.Limit
	if hasMore {
		rows = rows[:params.Limit]
	}

	var nextCursor *string
	if hasMore {
		nextCursor = &rows[len(rows)-1].ID
	}

	if err := s.serializer.Enrich(ctx, rows); err != nil {
		return nil, err
	}

	return &models.SearchPage{Data: rows, NextCursor: nextCursor}, nil
}
