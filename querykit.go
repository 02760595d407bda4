// go-query-kit çekirdek giriş noktaları.
//
// Yazar: Ahmet ALTUN
// Github: github.com/biyonik
// LinkedIn: linkedin.com/in/biyonik
// Email: ahmet.altun60@gmail.com

package querykit

import "github.com/biyonik/go-query-kit/dialect"

// Version, go-query-kit kütüphanesinin mevcut sürümünü belirtir.
const Version = "0.2.0"

// New, boş bir Builder oluşturur. Sürücü verilmezse mysql kullanılır.
//
// Örnek:
//
//	qb := querykit.New(querykit.WithDriver("pgsql"))
//	sql, args, err := qb.Table("users").
//	    Select("id", "name").
//	    Where("status", "active").
//	    ToSQL()
func New(opts ...Option) *Builder {
	b := newBuilder()
	applyOptions(b, opts)
	return b
}

// Table, yeni bir Builder oluşturup tablo adını ayarlamak için kısayoldur.
//
// Örnek:
//
//	sql, args, err := querykit.Table("users").
//	    Where("status", "active").
//	    ToSQL()
func Table(name string, opts ...Option) *Builder {
	return New(append(opts[:len(opts):len(opts)], WithTable(name))...)
}

// NewWithDriver, verilen sürücü adıyla bir Builder oluşturur.
// Ad küçük harfe çevrilir; takma ad çözümlemesi yapılmaz.
func NewWithDriver(driver string, opts ...Option) *Builder {
	return New(append([]Option{WithDriver(driver)}, opts...)...)
}

// Dialect, hedef SQL motoru ailesini belirtir.
type Dialect = dialect.Dialect

const (
	MySQL     = dialect.MySQL
	Postgres  = dialect.Postgres
	SQLite    = dialect.SQLite
	SQLServer = dialect.SQLServer
	MSSQL     = dialect.MSSQL
)

// Raw, bağlamalarıyla birlikte taşınan ham SQL parçasını temsil eder.
// Sadece güvenli ve kontrol edilen girdi için kullanın.
type Raw struct {
	SQL      string
	Bindings []any
}

// NewRaw, yeni bir Raw SQL ifadesi oluşturur.
//
// Örnek:
//
//	active := querykit.NewRaw("YEAR(created_at) = ?", 2024)
//	qb.WhereExpr(active)
func NewRaw(sql string, bindings ...any) Raw {
	return Raw{
		SQL:      sql,
		Bindings: bindings,
	}
}

// String, ham SQL ifadesini string olarak döndürür.
func (r Raw) String() string {
	return r.SQL
}

// WhereExpr, Raw ifadeyi AND bağlacıyla ekler.
func (b *Builder) WhereExpr(r Raw) *Builder {
	return b.WhereRaw(r.SQL, r.Bindings...)
}

// OrWhereExpr, Raw ifadeyi OR bağlacıyla ekler.
func (b *Builder) OrWhereExpr(r Raw) *Builder {
	return b.OrWhereRaw(r.SQL, r.Bindings...)
}

// HavingExpr, Raw ifadeyi HAVING koşulu olarak ekler.
func (b *Builder) HavingExpr(r Raw) *Builder {
	return b.HavingRaw(r.SQL, r.Bindings...)
}
