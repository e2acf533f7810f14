package repository

import (
	"context"

	"github.com/kadirgun/peyk/models"
)

// ReactionRepository, mesaj tepkisi veritabanı işlemleri için interface.
//
// CountsByMessageIDs: verilen mesajların emoji bazında tepki sayılarını
// tek sorguda döner (message_id → sayımlar). AttachmentRepository ile aynı
// batch pattern — sayfa başına sabit sorgu sayısı.
type ReactionRepository interface {
	CountsByMessageIDs(ctx context.Context, messageIDs []string) (map[string][]models.ReactionCount, error)
}
