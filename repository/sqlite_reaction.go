package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/kadirgun/peyk/database"
	"github.com/kadirgun/peyk/models"
)

// sqliteReactionRepo, ReactionRepository interface'inin SQLite implementasyonu.
type sqliteReactionRepo struct {
	db database.TxQuerier
}

// NewSQLiteReactionRepo, constructor — interface döner.
func NewSQLiteReactionRepo(db database.TxQuerier) ReactionRepository {
	return &sqliteReactionRepo{db: db}
}

func (r *sqliteReactionRepo) CountsByMessageIDs(ctx context.Context, messageIDs []string) (map[string][]models.ReactionCount, error) {
	result := make(map[string][]models.ReactionCount)
	if len(messageIDs) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(messageIDs)), ", ")
	query := fmt.Sprintf(`
		SELECT message_id, emoji, COUNT(*)
		FROM reactions
		WHERE message_id IN (%s)
		GROUP BY message_id, emoji
		ORDER BY message_id, emoji`, placeholders)

	args := make([]any, len(messageIDs))
	for i, id := range messageIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var messageID string
		var rc models.ReactionCount
		if err := rows.Scan(&messageID, &rc.Emoji, &rc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan reaction count row: %w", err)
		}
		result[messageID] = append(result[messageID], rc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reaction count rows: %w", err)
	}

	return result, nil
}
