// Package models, veritabanı tablolarının Go karşılıklarını ve
// API request/response tiplerini içerir.
package models

import "time"

// User, bir kullanıcıyı temsil eder — arama sonuçlarında mesaj yazarı olarak döner.
// Kimlik doğrulama (şifre, session) bu servisin dışındadır; burada sadece
// profil alanları taşınır.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name"` // Nullable — ayarlanmamış olabilir
	AvatarURL   *string   `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
}
