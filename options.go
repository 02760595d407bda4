package querykit

import (
	"io"

	"github.com/biyonik/go-query-kit/dialect"
)

// -----------------------------------------------------------------------------
//  Bu dosya, builder oluşturulurken kullanılan *Option* mimarisini içerir.
//  Option'lar yalnızca kurulum anında, builder henüz paylaşılmadan uygulanır;
//  kurulumdan sonra tüm değişiklikler builder metotlarıyla ve kopyalama
//  yoluyla yapılır.
//
//  -- @author   Ahmet ALTUN
//  -- @github   github.com/biyonik
//  -- @linkedin linkedin.com/in/biyonik
//  -- @email    ahmet.altun60@gmail.com
// -----------------------------------------------------------------------------

// Option, yeni bir Builder üzerinde çalışan yapılandırma fonksiyonlarının imzasıdır.
type Option func(*Builder)

// WithDriver, hedef dialect'i ayarlar. Ad küçük harfe çevrilir.
//
// Örnek:
//
//	q := querykit.New(querykit.WithDriver("SQLSRV"))
//	// q.GetDriver() == "sqlsrv"
func WithDriver(driver string) Option {
	return func(b *Builder) {
		b.driver = dialect.Normalize(driver)
	}
}

// WithTable, başlangıç tablosunu ayarlar.
func WithTable(table string) Option {
	return func(b *Builder) {
		b.table = table
	}
}

// WithGrammar, derleme aşamasında kullanılacak grameri değiştirir.
// Varsayılan olarak dialect.For(driver) kullanılır.
//
// Örnek:
//
//	g := dialect.NewGrammar("oracle", dialect.SQLServerPagination{}, nil)
//	q := querykit.New(querykit.WithGrammar(g))
func WithGrammar(g dialect.Grammar) Option {
	return func(b *Builder) {
		b.grammar = g
	}
}

// WithLogger, Builder.Log tarafından kullanılacak logger'ı ayarlar.
// nil verilirse NopLogger kullanılır.
func WithLogger(logger Logger) Option {
	return func(b *Builder) {
		if logger == nil {
			logger = NopLogger{}
		}
		b.logger = logger
	}
}

// WithOutput, Dump çıktısının yazılacağı hedefi ayarlar. Varsayılan os.Stdout'tur.
func WithOutput(w io.Writer) Option {
	return func(b *Builder) {
		b.output = w
	}
}

// WithColor, Dump çıktısında ANSI renklerini açar veya kapatır. Varsayılan açıktır.
func WithColor(enabled bool) Option {
	return func(b *Builder) {
		b.color = enabled
	}
}

// applyOptions, verilen bütün Option'ları sırayla uygular. nil Option'lar atlanır.
func applyOptions(b *Builder, opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
}
