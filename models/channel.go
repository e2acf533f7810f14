package models

import "time"

// ChannelKind, kanalın türünü temsil eder (text veya voice).
// Go'da enum yerine typed constant kullanılır.
type ChannelKind string

const (
	ChannelKindText  ChannelKind = "text"
	ChannelKindVoice ChannelKind = "voice"
)

// Channel, bir sunucu kanalını temsil eder.
// DB'deki "channels" tablosunun Go karşılığı.
// Mesaj araması yalnızca text kanallarda çalışır — voice kanallar
// arama kapsamının dışındadır.
type Channel struct {
	ID        string      `json:"id"`
	ServerID  string      `json:"server_id"`
	Name      string      `json:"name"`
	Kind      ChannelKind `json:"kind"`
	Topic     *string     `json:"topic"`
	Position  int         `json:"position"`
	CreatedAt time.Time   `json:"created_at"`
}
