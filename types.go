package querykit

import (
	"context"
	"log/slog"

	"github.com/biyonik/go-query-kit/dialect"
)

/*
 * ----------------------------------------------------------------------------
 * QUERYKIT TYPE DEFINITIONS
 * ----------------------------------------------------------------------------
 *
 * Bu dosya, builder'ın çevresindeki yardımcı tipleri içerir: sayfalama meta
 * verisi, sorgu istatistikleri ve loglama arayüzü.
 *
 * Builder SQL çalıştırmadığı için burada sonuç tipleri yoktur. Pagination,
 * ayrı bir COUNT sorgusundan dönen toplamla birlikte kullanılmak üzere
 * tasarlanmıştır; QueryStats ise Dump çıktısındaki özet satırlarının
 * programatik karşılığıdır.
 *
 * @author Ahmet ALTUN
 * @github github.com/biyonik
 * @linkedin linkedin.com/in/biyonik
 * @email ahmet.altun60@gmail.com
 * ----------------------------------------------------------------------------
 */

// ----------------------------------------------------------------------------
// Pagination Types
// ----------------------------------------------------------------------------

// DefaultPerPage, sayfa boyutu verilmediğinde kullanılan değerdir.
const DefaultPerPage = 15

// Pagination, veri listeleme işlemlerinde "sayfalama" mantığını yöneten veri yapısıdır.
//
// Builder.Paginate LIMIT/OFFSET'i aynı hesapla üretir. Toplam kayıt sayısı
// ToCountSQL ile ayrıca sorgulanıp NewPagination'a verildiğinde sayfa meta verisi elde edilir.
type Pagination struct {
	Page       int   // Mevcut sayfa numarası (1'den başlar)
	PerPage    int   // Sayfa başına gösterilecek kayıt sayısı
	Total      int64 // Toplam kayıt sayısı
	TotalPages int   // Hesaplanan toplam sayfa sayısı
	HasMore    bool  // Sonraki sayfaların olup olmadığını belirten bayrak
}

// NewPagination, ham sayfalama parametrelerinden bir Pagination nesnesi oluşturur.
//
// Geçersiz parametreler varsayılanlara çekilir: sayfa < 1 ise 1, perPage < 1 ise 15.
func NewPagination(page, perPage int, total int64) *Pagination {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page <= 0 {
		page = 1
	}
	if total < 0 {
		total = 0
	}

	totalPages := int(total / int64(perPage))
	if total%int64(perPage) > 0 {
		totalPages++
	}

	return &Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}
}

// Offset, SQL sorgusu için atlanacak kayıt sayısını hesaplar.
//
// Örnek: 3. sayfadasınız ve her sayfada 25 kayıt var.
// Offset = (3 - 1) * 25 = 50.
func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// HasPrev, mevcut sayfadan geriye gidilip gidilemeyeceğini kontrol eder.
func (p *Pagination) HasPrev() bool {
	return p.Page > 1
}

// HasNext, mevcut sayfadan ileriye gidilip gidilemeyeceğini kontrol eder.
func (p *Pagination) HasNext() bool {
	return p.HasMore
}

// ----------------------------------------------------------------------------
// Stats
// ----------------------------------------------------------------------------

// QueryStats, builder durumunun özetidir. Limit ve Offset ayarlanmamışsa nil'dir.
type QueryStats struct {
	Table      string
	Driver     string
	Bindings   int
	Joins      int
	Conditions int
	Limit      *int
	Offset     *int
}

// ----------------------------------------------------------------------------
// Logger Interface
// ----------------------------------------------------------------------------

// Logger, derlenen sorguları gözlemlemek için kullanılan arayüzdür.
//
// Builder.Log çağrıldığında SELECT ifadesi, bağlamaları ve varsa derleme hatası
// bu arayüze iletilir. Builder derleme sırasında kendiliğinden log yazmaz.
type Logger interface {
	Log(ctx context.Context, query string, args []any, err error)
}

// NopLogger (No-Operation Logger), "sessiz mod" için kullanılan bir logger uygulamasıdır.
type NopLogger struct{}

// Log, NopLogger'ın implementasyonudur. Gelen tüm veriyi yok sayar.
func (NopLogger) Log(context.Context, string, []any, error) {}

// SlogLogger, Logger arayüzünü log/slog üzerine oturtur.
// Hatalı kayıtlar her zaman Error seviyesinde yazılır.
type SlogLogger struct {
	logger *slog.Logger
	level  slog.Level
}

// NewSlogLogger, verilen seviyede yazan bir SlogLogger oluşturur.
// logger nil ise slog.Default() kullanılır.
func NewSlogLogger(logger *slog.Logger, level slog.Level) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogLogger{logger: logger, level: level}
}

// Log, sorguyu "sql", "bindings" ve "raw_sql" alanlarıyla yazar.
func (l *SlogLogger) Log(ctx context.Context, query string, args []any, err error) {
	if err != nil {
		l.logger.LogAttrs(ctx, slog.LevelError, "querykit: query compile failed",
			slog.String("sql", query),
			slog.Any("error", err),
		)
		return
	}
	if !l.logger.Enabled(ctx, l.level) {
		return
	}
	l.logger.LogAttrs(ctx, l.level, "querykit: query",
		slog.String("sql", query),
		slog.Any("bindings", args),
		slog.String("raw_sql", interpolate(query, args, dialect.DefaultDateFormat)),
	)
}
