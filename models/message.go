package models

import "time"

// Message, bir chat mesajının salt-okunur projeksiyonudur.
// Arama servisi mesajları asla yazmaz — sahibi mesaj store'udur.
//
// Author, Attachments ve Reactions alanları JOIN/batch sorgularla doldurulur —
// veritabanında ayrı tablolardadır ama API response'unda birlikte döner.
// Bu sayede frontend tek bir istekle mesaj + yazar + ek bilgilerini alır.
type Message struct {
	ID          string          `json:"id"`
	ChannelID   string          `json:"channel_id"`
	UserID      string          `json:"user_id"`
	Content     *string         `json:"content"` // Nullable — sadece dosya içeren mesajlarda nil olabilir
	EditedAt    *time.Time      `json:"edited_at"`
	CreatedAt   time.Time       `json:"created_at"`
	Author      *User           `json:"author,omitempty"`      // JOIN ile gelen yazar bilgisi
	Attachments []Attachment    `json:"attachments"`           // İlişkili dosya ekleri
	Reactions   []ReactionCount `json:"reactions"`             // Emoji bazında toplam tepkiler
}

// Attachment, bir mesaja eklenmiş dosyayı temsil eder.
// DB'deki "attachments" tablosunun Go karşılığı.
type Attachment struct {
	ID        string    `json:"id"`
	MessageID string    `json:"message_id"`
	Filename  string    `json:"filename"`
	FileURL   string    `json:"file_url"`
	FileSize  *int64    `json:"file_size"` // Nullable — byte cinsinden
	MimeType  *string   `json:"mime_type"` // Nullable — "image/png", "application/pdf" vb.
	CreatedAt time.Time `json:"created_at"`
}

// ReactionCount, bir mesajdaki tek bir emoji'nin toplam tepki sayısını taşır.
// Arama sonuçlarında tek tek tepki kayıtları değil, emoji bazlı özet döner.
type ReactionCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}
