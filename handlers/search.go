package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/kadirgun/peyk/models"
	"github.com/kadirgun/peyk/pkg"
	"github.com/kadirgun/peyk/services"
)

// SearchHandler, mesaj arama endpoint'ini yöneten struct.
type SearchHandler struct {
	searchService services.SearchService
}

// NewSearchHandler, constructor.
func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search godoc
// GET /api/servers/{serverId}/search?q=term&channel_id=&author_id=&limit=25&cursor=
//
// Sunucu kapsamında alt-dize mesaj araması. Parametre parse politikası
// fail-soft'tur: bozuk limit default'a düşer, tanınmayan parametreler
// yoksayılır — istemci tarafında sorgu kurmayı kolaylaştırır.
// Sert hata sadece yetki (403) ve kapsam dışı kanal (404) durumlarıdır.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	serverID := r.PathValue("serverId")
	if serverID == "" {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "serverId is required")
		return
	}

	q := r.URL.Query()

	params := models.SearchParams{
		Query: q.Get("q"),
	}

	// Opsiyonel filtreler — var/yok ayrımı pointer ile taşınır
	if cid := q.Get("channel_id"); cid != "" {
		params.ChannelID = &cid
	}
	if aid := q.Get("author_id"); aid != "" {
		params.AuthorID = &aid
	}
	if cursor := q.Get("cursor"); cursor != "" {
		params.Cursor = &cursor
	}

	// Limit: sayısal değilse sessizce default'a düşer (Normalize 0'ı default yapar).
	// Aralık kırpması service katmanındadır — handler sadece parse eder.
	if l := q.Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			params.Limit = parsed
		}
	}

	page, err := h.searchService.Search(r.Context(), user.ID, serverID, params)
	if err != nil {
		if !errors.Is(err, pkg.ErrForbidden) && !errors.Is(err, pkg.ErrNotFound) {
			reqID, _ := r.Context().Value(RequestIDContextKey).(string)
			log.Printf("[search] request %s failed: %v", reqID, err)
		}
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, page)
}
