package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadirgun/peyk/models"
	"github.com/kadirgun/peyk/pkg"
)

func TestIsMember(t *testing.T) {
	db := newTestDB(t)
	insertUser(t, db.Conn, "u1", "ayse")
	insertUser(t, db.Conn, "u2", "mehmet")
	insertServer(t, db.Conn, "s1", "takim")
	insertMember(t, db.Conn, "s1", "u1")

	repo := NewSQLiteServerRepo(db.Conn)

	ok, err := repo.IsMember(context.Background(), "s1", "u1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsMember(context.Background(), "s1", "u2")
	require.NoError(t, err)
	assert.False(t, ok)

	// Var olmayan sunucu da üyelik yokluğu gibi davranır — bilgi sızdırmaz
	ok, err = repo.IsMember(context.Background(), "ghost", "u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindMembership(t *testing.T) {
	db := newTestDB(t)
	insertUser(t, db.Conn, "u1", "ayse")
	insertServer(t, db.Conn, "s1", "takim")
	insertMember(t, db.Conn, "s1", "u1")

	repo := NewSQLiteServerRepo(db.Conn)

	m, err := repo.FindMembership(context.Background(), "s1", "u1")
	require.NoError(t, err)
	assert.Equal(t, "s1", m.ServerID)
	assert.Equal(t, "u1", m.UserID)

	_, err = repo.FindMembership(context.Background(), "s1", "u9")
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}

func TestListIDsByKind(t *testing.T) {
	db := newTestDB(t)
	insertUser(t, db.Conn, "u1", "ayse")
	insertServer(t, db.Conn, "s1", "takim")
	insertServer(t, db.Conn, "s2", "diger")
	insertChannel(t, db.Conn, "c1", "s1", "genel", models.ChannelKindText)
	insertChannel(t, db.Conn, "c2", "s1", "duyuru", models.ChannelKindText)
	insertChannel(t, db.Conn, "v1", "s1", "sesli", models.ChannelKindVoice)
	insertChannel(t, db.Conn, "c3", "s2", "yabanci", models.ChannelKindText)

	repo := NewSQLiteChannelRepo(db.Conn)

	ids, err := repo.ListIDsByKind(context.Background(), "s1", models.ChannelKindText)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"c1", "c2"}, ids)

	ids, err = repo.ListIDsByKind(context.Background(), "s1", models.ChannelKindVoice)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"v1"}, ids)
}

func TestGetUserByID(t *testing.T) {
	db := newTestDB(t)
	insertUser(t, db.Conn, "u1", "ayse")

	repo := NewSQLiteUserRepo(db.Conn)

	user, err := repo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "ayse", user.Username)

	_, err = repo.GetByID(context.Background(), "ghost")
	assert.True(t, errors.Is(err, pkg.ErrNotFound))
}
