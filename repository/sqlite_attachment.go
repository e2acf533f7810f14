package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/kadirgun/peyk/database"
	"github.com/kadirgun/peyk/models"
)

// sqliteAttachmentRepo, AttachmentRepository interface'inin SQLite implementasyonu.
type sqliteAttachmentRepo struct {
	db database.TxQuerier
}

// NewSQLiteAttachmentRepo, constructor — interface döner.
func NewSQLiteAttachmentRepo(db database.TxQuerier) AttachmentRepository {
	return &sqliteAttachmentRepo{db: db}
}

func (r *sqliteAttachmentRepo) ListByMessageIDs(ctx context.Context, messageIDs []string) (map[string][]models.Attachment, error) {
	result := make(map[string][]models.Attachment)
	if len(messageIDs) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(messageIDs)), ", ")
	query := fmt.Sprintf(`
		SELECT id, message_id, filename, file_url, file_size, mime_type, created_at
		FROM attachments
		WHERE message_id IN (%s)
		ORDER BY created_at ASC`, placeholders)

	args := make([]any, len(messageIDs))
	for i, id := range messageIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var att models.Attachment
		if err := rows.Scan(
			&att.ID, &att.MessageID, &att.Filename, &att.FileURL,
			&att.FileSize, &att.MimeType, &att.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attachment row: %w", err)
		}
		result[att.MessageID] = append(result[att.MessageID], att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attachment rows: %w", err)
	}

	return result, nil
}
