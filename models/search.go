package models

import "strings"

// SearchParams, arama endpoint'inin query parametrelerinin parse edilmiş hali.
// ChannelID, AuthorID ve Cursor opaque ID'lerdir — içerikleri değil,
// var/yok olmaları davranışı belirler (pointer nil ⇔ parametre yok).
type SearchParams struct {
	Query     string
	ChannelID *string
	AuthorID  *string
	Limit     int
	Cursor    *string
}

// Normalize, parametreleri kanonik hale getirir — store'a hiç dokunmaz.
//
// Kurallar:
//   - Query trim'lenir; boşluk dışı karakter kalmazsa boş string olur
//     (boş sorgu hata değildir — hiçbir şeyle eşleşmez, boş sayfa döner).
//   - Limit ≤ 0 veya hiç verilmemişse (0) defaultLimit'e düşer;
//     maxLimit'i aşarsa maxLimit'e KIRPILIR (default'a sıfırlanmaz).
//     İstemcinin limit değerine asla güvenilmez — sınır her zaman server'da.
func (p *SearchParams) Normalize(defaultLimit, maxLimit int) {
	p.Query = strings.TrimSpace(p.Query)

	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
}

// SearchPage, cursor-based pagination ile dönen tek bir arama sayfası.
//
// Cursor-based (keyset) pagination nedir?
// Offset-based ("LIMIT 50 OFFSET 100") yerine "bu mesajdan sonraki 50 sonucu
// getir" kullanılır. Avantajı: Yeni mesaj eklendiğinde sayfa kayması olmaz.
//
// NextCursor daima ya nil'dir (kesin olarak başka sonuç yok) ya da bu sayfanın
// son mesajının id'sidir. İstemci değeri olduğu gibi geri gönderir — yapısı
// hakkında varsayım yapmamalıdır.
type SearchPage struct {
	Data       []Message `json:"data"`
	NextCursor *string   `json:"next_cursor"`
}

// EmptySearchPage, "sonuç yok" sayfası döner.
// Data nil değil boş slice'tır — JSON'da null yerine [] serialize edilir.
func EmptySearchPage() *SearchPage {
	return &SearchPage{Data: []Message{}, NextCursor: nil}
}
