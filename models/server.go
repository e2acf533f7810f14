package models

import "time"

// Server, bir sunucuyu (workspace/topluluk) temsil eder.
// DB'deki "servers" tablosunun Go karşılığı.
type Server struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	OwnerID   *string   `json:"owner_id"` // Nullable — sahip silinmişse NULL kalır
	CreatedAt time.Time `json:"created_at"`
}

// ServerMember, bir kullanıcının sunucu üyelik kaydını temsil eder.
// (server_id, user_id) çifti tekildir. Üyelik kaydı, kullanıcının sunucunun
// kanallarını görme yetkisini belirler — arama yetkilendirmesi buna dayanır.
type ServerMember struct {
	ID       string    `json:"id"`
	ServerID string    `json:"server_id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}
