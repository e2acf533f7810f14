// Package main — Repository katmanı başlatma.
//
// initRepositories, tüm repository implementasyonlarını oluşturur.
// Her repository aynı DB bağlantısını alır ve interface döner.
package main

import (
	"database/sql"

	"github.com/kadirgun/peyk/repository"
)

// Repositories, tüm repository instance'larını tutan container struct.
// Tek struct, fonksiyon imzalarını temiz tutar; yeni repository eklendiğinde
// sadece struct + initRepositories güncellenir.
type Repositories struct {
	User       repository.UserRepository
	Server     repository.ServerRepository
	Channel    repository.ChannelRepository
	Search     repository.SearchRepository
	Attachment repository.AttachmentRepository
	Reaction   repository.ReactionRepository
}

// initRepositories, veritabanı bağlantısından tüm repository'leri oluşturur.
// Go'nun sql.DB'si thread-safe connection pool'dur, paylaşılması güvenlidir.
func initRepositories(conn *sql.DB) *Repositories {
	return &Repositories{
		User:       repository.NewSQLiteUserRepo(conn),
		Server:     repository.NewSQLiteServerRepo(conn),
		Channel:    repository.NewSQLiteChannelRepo(conn),
		Search:     repository.NewSQLiteSearchRepo(conn),
		Attachment: repository.NewSQLiteAttachmentRepo(conn),
		Reaction:   repository.NewSQLiteReactionRepo(conn),
	}
}
