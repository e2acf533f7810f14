package repository

import (
	"context"

	"github.com/kadirgun/peyk/models"
)

// UserRepository, kullanıcı veritabanı işlemleri için interface.
// Auth middleware, token'daki kullanıcının hâlâ var olduğunu buradan doğrular.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}
