package services

import (
	"context"
	"fmt"

	"github.com/kadirgun/peyk/models"
	"github.com/kadirgun/peyk/repository"
)

// MessageSerializer, mesajları API'ye dönmeden önce ilişkili verilerle
// zenginleştirir: dosya ekleri ve emoji bazlı tepki sayıları.
//
// Yazar bilgisi arama sorgusunun JOIN'inden zaten gelir; ekler ve tepkiler
// ise sayfa başına iki batch sorguyla doldurulur — mesaj başına ayrı
// sorgu (N+1) yapılmaz.
type MessageSerializer interface {
	Enrich(ctx context.Context, messages []models.Message) error
}

type messageSerializer struct {
	attachmentRepo repository.AttachmentRepository
	reactionRepo   repository.ReactionRepository
}

// NewMessageSerializer, constructor.
func NewMessageSerializer(
	attachmentRepo repository.AttachmentRepository,
	reactionRepo repository.ReactionRepository,
) MessageSerializer {
	return &messageSerializer{
		attachmentRepo: attachmentRepo,
		reactionRepo:   reactionRepo,
	}
}

// Enrich, slice'taki mesajları yerinde (in-place) doldurur.
func (s *messageSerializer) Enrich(ctx context.Context, messages []models.Message) error {
	if len(messages) == 0 {
		return nil
	}

	ids := make([]string, len(messages))
	for i, msg := range messages {
		ids[i] = msg.ID
	}

	attachments, err := s.attachmentRepo.ListByMessageIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load attachments: %w", err)
	}

	reactions, err := s.reactionRepo.CountsByMessageIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load reactions: %w", err)
	}

	for i := range messages {
		if atts, ok := attachments[messages[i].ID]; ok {
			messages[i].Attachments = atts
		} else {
			messages[i].Attachments = []models.Attachment{}
		}
		if counts, ok := reactions[messages[i].ID]; ok {
			messages[i].Reactions = counts
		} else {
			messages[i].Reactions = []models.ReactionCount{}
		}
	}

	return nil
}
