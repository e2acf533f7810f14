// Package repository, veritabanı erişim katmanını içerir.
//
// Her store için bir interface + SQLite implementasyonu çifti vardır.
// Service katmanı interface'lere bağımlıdır — test'te gerçek SQLite
// veya sahte implementasyon geçilebilir (Dependency Inversion).
package repository

import (
	"context"

	"github.com/kadirgun/peyk/models"
)

// ServerRepository, sunucu ve üyelik veritabanı işlemleri için interface.
//
// IsMember: (serverID, userID) çifti için üyelik kaydı var mı?
// Arama yetkilendirmesinin tek kaynağı budur — kayıt yoksa istek 403 alır.
type ServerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Server, error)
	IsMember(ctx context.Context, serverID, userID string) (bool, error)
	FindMembership(ctx context.Context, serverID, userID string) (*models.ServerMember, error)
}
