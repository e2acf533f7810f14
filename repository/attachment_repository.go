package repository

import (
	"context"

	"github.com/kadirgun/peyk/models"
)

// AttachmentRepository, mesaj eki veritabanı işlemleri için interface.
//
// ListByMessageIDs: verilen mesajların tüm eklerini tek sorguda döner —
// sayfa serialize edilirken mesaj başına ayrı sorgu (N+1) yapılmaz.
// Sonuç message_id → ekler map'idir; eki olmayan mesaj map'te yer almaz.
type AttachmentRepository interface {
	ListByMessageIDs(ctx context.Context, messageIDs []string) (map[string][]models.Attachment, error)
}
