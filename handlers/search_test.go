package handlers_test

import (
	"database/sql"
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadirgun/peyk/database"
	"github.com/kadirgun/peyk/handlers"
	"github.com/kadirgun/peyk/middleware"
	"github.com/kadirgun/peyk/repository"
	"github.com/kadirgun/peyk/services"
)

const testSecret = "test-secret-anahtar"

// newTestAPI, tam HTTP stack'i kurar: geçici SQLite + repository'ler +
// service'ler + middleware + router. main.go'daki wire-up'ın test karşılığı.
func newTestAPI(t *testing.T) (*http.ServeMux, *sql.DB) {
	t.Helper()

	migrationsFS, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "peyk_test.db"), migrationsFS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	userRepo := repository.NewSQLiteUserRepo(db.Conn)
	serverRepo := repository.NewSQLiteServerRepo(db.Conn)
	channelRepo := repository.NewSQLiteChannelRepo(db.Conn)
	searchRepo := repository.NewSQLiteSearchRepo(db.Conn)
	serializer := services.NewMessageSerializer(
		repository.NewSQLiteAttachmentRepo(db.Conn),
		repository.NewSQLiteReactionRepo(db.Conn),
	)

	authService := services.NewAuthService(testSecret)
	channelService := services.NewChannelService(serverRepo, channelRepo)
	searchService := services.NewSearchService(serverRepo, channelRepo, searchRepo, serializer, 25, 50)

	searchHandler := handlers.NewSearchHandler(searchService)
	channelHandler := handlers.NewChannelHandler(channelService)

	authMw := middleware.NewAuthMiddleware(authService, userRepo)
	auth := func(h http.HandlerFunc) http.Handler {
		return middleware.RequestID(authMw.Require(http.HandlerFunc(h)))
	}

	mux := http.NewServeMux()
	mux.Handle("GET /api/servers/{serverId}/search", auth(searchHandler.Search))
	mux.Handle("GET /api/servers/{serverId}/channels", auth(channelHandler.List))

	return mux, db.Conn
}

func exec(t *testing.T, conn *sql.DB, query string, args ...any) {
	t.Helper()
	_, err := conn.Exec(query, args...)
	require.NoError(t, err)
}

func seedAPI(t *testing.T, conn *sql.DB) {
	t.Helper()
	exec(t, conn, `INSERT INTO users (id, username) VALUES ('u1', 'ayse'), ('u2', 'mehmet')`)
	exec(t, conn, `INSERT INTO servers (id, name) VALUES ('s1', 'takim'), ('s2', 'diger')`)
	exec(t, conn, `INSERT INTO server_members (id, server_id, user_id) VALUES ('sm1', 's1', 'u1')`)
	exec(t, conn, `INSERT INTO channels (id, server_id, name, kind) VALUES
		('c1', 's1', 'genel', 'text'),
		('v1', 's1', 'sesli', 'voice'),
		('dis', 's2', 'dis-kanal', 'text')`)
	exec(t, conn, `INSERT INTO messages (id, channel_id, user_id, content, created_at) VALUES
		('m1', 'c1', 'u1', 'deploy basladi', '2024-05-01 10:00:01'),
		('m2', 'c1', 'u1', 'deploy bitti', '2024-05-01 10:00:02'),
		('m3', 'c1', 'u1', 'ogle yemegi', '2024-05-01 10:00:03')`)
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": "test",
		"exp":      now.Add(15 * time.Minute).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doGet(t *testing.T, mux *http.ServeMux, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// envelope, pkg.APIResponse'un test tarafı karşılığı — data alanı arama sayfası.
type envelope struct {
	Success bool `json:"success"`
	Data    struct {
		Data []struct {
			ID        string `json:"id"`
			ChannelID string `json:"channel_id"`
			Content   string `json:"content"`
		} `json:"data"`
		NextCursor *string `json:"next_cursor"`
	} `json:"data"`
	Error string `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestSearchEndpoint_RequiresToken(t *testing.T) {
	mux, conn := newTestAPI(t)
	seedAPI(t, conn)

	rec := doGet(t, mux, "/api/servers/s1/search?q=deploy", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doGet(t, mux, "/api/servers/s1/search?q=deploy", "bozuk-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSearchEndpoint_NonMemberForbidden(t *testing.T) {
	mux, conn := newTestAPI(t)
	seedAPI(t, conn)

	rec := doGet(t, mux, "/api/servers/s1/search?q=deploy", tokenFor(t, "u2"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Empty(t, env.Data.Data, "403 yanıtında asla mesaj verisi olmaz")
}

func TestSearchEndpoint_ReturnsMatches(t *testing.T) {
	mux, conn := newTestAPI(t)
	seedAPI(t, conn)

	rec := doGet(t, mux, "/api/servers/s1/search?q=deploy", tokenFor(t, "u1"))
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	require.Len(t, env.Data.Data, 2)
	assert.Equal(t, "m2", env.Data.Data[0].ID)
	assert.Equal(t, "m1", env.Data.Data[1].ID)
	assert.Nil(t, env.Data.NextCursor)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestSearchEndpoint_EmptyQueryIsSuccess(t *testing.T) {
	mux, conn := newTestAPI(t)
	seedAPI(t, conn)

	for _, path := range []string{
		"/api/servers/s1/search",
		"/api/servers/s1/search?q=",
		"/api/servers/s1/search?q=%20%20",
	} {
		rec := doGet(t, mux, path, tokenFor(t, "u1"))
		require.Equal(t, http.StatusOK, rec.Code, path)

		env := decodeEnvelope(t, rec)
		assert.True(t, env.Success)
		assert.Empty(t, env.Data.Data)
		assert.Nil(t, env.Data.NextCursor)
	}
}

func TestSearchEndpoint_MalformedLimitFailsSoft(t *testing.T) {
	mux, conn := newTestAPI(t)
	seedAPI(t, conn)

	// Bozuk limit hard error değildir — default'a düşer, istek başarılıdır
	for _, path := range []string{
		"/api/servers/s1/search?q=deploy&limit=abc",
		"/api/servers/s1/search?q=deploy&limit=-5",
		"/api/servers/s1/search?q=deploy&limit=9999",
		"/api/servers/s1/search?q=deploy&bilinmeyen=param",
	} {
		rec := doGet(t, mux, path, tokenFor(t, "u1"))
		require.Equal(t, http.StatusOK, rec.Code, path)

		env := decodeEnvelope(t, rec)
		assert.Len(t, env.Data.Data, 2, path)
	}
}

func TestSearchEndpoint_PaginatesWithCursor(t *testing.T) {
	mux, conn := newTestAPI(t)
	seedAPI(t, conn)

	rec := doGet(t, mux, "/api/servers/s1/search?q=deploy&limit=1", tokenFor(t, "u1"))
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	require.Len(t, env.Data.Data, 1)
	assert.Equal(t, "m2", env.Data.Data[0].ID)
	require.NotNil(t, env.Data.NextCursor)
	// Cursor sözleşmesi: her zaman sayfanın son mesajının id'si
	assert.Equal(t, "m2", *env.Data.NextCursor)

	rec = doGet(t, mux, "/api/servers/s1/search?q=deploy&limit=1&cursor="+*env.Data.NextCursor, tokenFor(t, "u1"))
	require.Equal(t, http.StatusOK, rec.Code)

	env = decodeEnvelope(t, rec)
	require.Len(t, env.Data.Data, 1)
	assert.Equal(t, "m1", env.Data.Data[0].ID)
	assert.Nil(t, env.Data.NextCursor)
}

func TestSearchEndpoint_ChannelOutsideServer(t *testing.T) {
	mux, conn := newTestAPI(t)
	seedAPI(t, conn)

	rec := doGet(t, mux, "/api/servers/s1/search?q=deploy&channel_id=dis", tokenFor(t, "u1"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChannelsEndpoint_ListsServerChannels(t *testing.T) {
	mux, conn := newTestAPI(t)
	seedAPI(t, conn)

	rec := doGet(t, mux, "/api/servers/s1/channels", tokenFor(t, "u1"))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			ID   string `json:"id"`
			Kind string `json:"kind"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 2) // c1 + v1; diğer sunucunun kanalı görünmez

	rec = doGet(t, mux, "/api/servers/s1/channels", tokenFor(t, "u2"))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
