package repository

import (
	"context"

	"github.com/kadirgun/peyk/models"
)

// SearchFilter, mesaj arama sorgusunun tüm koşullarını taşır.
//
// ChannelIDs: Arama kapsamı — mesaj bu kanallardan birinde olmalı.
// Boş slice geçilmemelidir; kapsam kontrolü service katmanında yapılır.
// Query: Alt-dize (substring) arama terimi — tokenize edilmez, ranking yoktur.
// AuthorID: nil değilse sadece bu kullanıcının mesajları.
// AfterID: nil değilse keyset cursor — sıralamada bu mesajdan hemen
// sonraki pozisyondan devam edilir.
type SearchFilter struct {
	ChannelIDs []string
	Query      string
	AuthorID   *string
	AfterID    *string
}

// SearchRepository, mesaj arama veritabanı işlemleri için interface.
//
// SearchMessages: filter'a uyan mesajları (created_at DESC, id DESC)
// sıralamasıyla döner, en fazla fetch satır. Pagination'ın "daha var mı?"
// tespiti için çağıran taraf fetch = limit+1 geçer — ayrı COUNT sorgusu yoktur.
type SearchRepository interface {
	SearchMessages(ctx context.Context, filter SearchFilter, fetch int) ([]models.Message, error)
}
