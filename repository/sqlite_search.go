package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/kadirgun/peyk/database"
	"github.com/kadirgun/peyk/models"
)

// sqliteSearchRepo, SearchRepository interface'inin SQLite implementasyonu.
type sqliteSearchRepo struct {
	db database.TxQuerier
}

// NewSQLiteSearchRepo, constructor — interface döner.
func NewSQLiteSearchRepo(db database.TxQuerier) SearchRepository {
	return &sqliteSearchRepo{db: db}
}

// SearchMessages, kapsam içi alt-dize aramasını tek sorguda çalıştırır.
//
// Sorgu mantığı:
// 1. channel_id IN (...) — kapsam filtresi (service tarafından çözülmüş scope)
// 2. content LIKE '%term%' ESCAPE '\' — alt-dize eşleşmesi.
//    SQLite LIKE, ASCII için case-insensitive'dir; bu servis o semantiği
//    sabitler. Kullanıcı girdisindeki %, _ ve \ karakterleri escape edilir —
//    wildcard injection olmaz, hepsi düz karakter olarak aranır.
// 3. Opsiyonel yazar filtresi (user_id = ?)
// 4. Opsiyonel keyset seek: (created_at, id) row-value karşılaştırması —
//    cursor mesajının sıralamadaki pozisyonundan hemen sonrasına atlar.
//    created_at tek başına yeterli değildir: aynı saniyeye düşen mesajlar
//    id tie-break'i olmadan sayfalar arasında kayar veya yinelenir.
// 5. ORDER BY created_at DESC, id DESC — deterministik, en yeniden eskiye
// 6. LIMIT fetch — çağıran limit+1 geçer, fazladan satır "sonraki sayfa var"
//    sinyalidir
//
// Yazar bilgisi LEFT JOIN ile gelir — kullanıcı silinmiş olsa bile mesaj görünür.
func (r *sqliteSearchRepo) SearchMessages(ctx context.Context, filter SearchFilter, fetch int) ([]models.Message, error) {
	if len(filter.ChannelIDs) == 0 {
		return []models.Message{}, nil
	}
	if fetch <= 0 {
		return []models.Message{}, nil
	}

	var sb strings.Builder
	var args []any

	sb.WriteString(`
		SELECT m.id, m.channel_id, m.user_id, m.content, m.edited_at, m.created_at,
		       u.id, u.username, u.display_name, u.avatar_url
		FROM messages m
		LEFT JOIN users u ON m.user_id = u.id
		WHERE m.channel_id IN (`)
	for i, id := range filter.ChannelIDs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("?")
		args = append(args, id)
	}
	sb.WriteString(`)
		AND m.content LIKE ? ESCAPE '\'`)
	args = append(args, "%"+escapeLike(filter.Query)+"%")

	if filter.AuthorID != nil {
		sb.WriteString(`
		AND m.user_id = ?`)
		args = append(args, *filter.AuthorID)
	}

	if filter.AfterID != nil {
		// Cursor id veritabanında yoksa subquery satır döndürmez, karşılaştırma
		// NULL olur ve sonuç kümesi boş kalır — bilinmeyen cursor sonlanmış
		// bir sayfalama olarak davranır.
		sb.WriteString(`
		AND (m.created_at, m.id) < (SELECT created_at, id FROM messages WHERE id = ?)`)
		args = append(args, *filter.AfterID)
	}

	sb.WriteString(`
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT ?`)
	args = append(args, fetch)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var msg models.Message
		var author models.User
		var authorID sql.NullString

		if err := rows.Scan(
			&msg.ID, &msg.ChannelID, &msg.UserID, &msg.Content, &msg.EditedAt, &msg.CreatedAt,
			&authorID, &author.Username, &author.DisplayName, &author.AvatarURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan search result row: %w", err)
		}

		if authorID.Valid {
			author.ID = authorID.String
			msg.Author = &author
		}
		msg.Attachments = []models.Attachment{}
		msg.Reactions = []models.ReactionCount{}

		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search result rows: %w", err)
	}

	if messages == nil {
		messages = []models.Message{}
	}

	return messages, nil
}

// escapeLike, kullanıcı girdisini LIKE pattern'ı içinde güvenli hale getirir.
// %, _ ve escape karakteri \ düz karakter olarak aranacak şekilde escape edilir.
func escapeLike(term string) string {
	var sb strings.Builder
	for _, ch := range term {
		switch ch {
		case '\\', '%', '_':
			sb.WriteRune('\\')
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}
