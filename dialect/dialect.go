// Package dialect, farklı veritabanları için SQL dilbilgisi (grammar) implementasyonlarını sağlar.
// Bu paket; koşul defterini (condition ledger) tek bir WHERE ifadesine dönüştüren derleyiciyi,
// sayfalama ve upsert stratejilerini ve SELECT/INSERT/UPDATE/DELETE montajcılarını barındırır.
// MySQL, PostgreSQL, SQLite ve SQL Server aileleri desteklenir.
//
// Yazar: Ahmet ALTUN
// Github: github.com/biyonik
// LinkedIn: linkedin.com/in/biyonik
// Email: ahmet.altun60@gmail.com
package dialect

import (
	"fmt"
	"strings"
)

// Placeholder, tüm dialect'lerde kullanılan sabit parametre yer tutucusudur.
// Numaralandırma yapılmaz; bağlamalar sırayla eşleşir.
const Placeholder = "?"

// ----------------------------------------------------------------------------
// Dialect
// ----------------------------------------------------------------------------

// Dialect, hedef SQL motoru ailesini belirtir.
// Değer her zaman küçük harfle saklanır.
type Dialect string

const (
	MySQL     Dialect = "mysql"
	Postgres  Dialect = "pgsql"
	SQLite    Dialect = "sqlite"
	SQLServer Dialect = "sqlsrv"
	MSSQL     Dialect = "mssql"
)

// Default, sürücü belirtilmediğinde kullanılan dialect'tir.
const Default = MySQL

// aliases, sürücü adlarını ve yaygın takma adları dialect'lere eşler.
var aliases = map[string]Dialect{
	"":           MySQL,
	"mysql":      MySQL,
	"mariadb":    MySQL,
	"pgsql":      Postgres,
	"postgres":   Postgres,
	"postgresql": Postgres,
	"pgx":        Postgres,
	"sqlite":     SQLite,
	"sqlite3":    SQLite,
	"sqlsrv":     SQLServer,
	"sqlserver":  SQLServer,
	"mssql":      MSSQL,
}

// Normalize, sürücü adını küçük harfe çevirir. Takma ad çözümlemesi yapmaz;
// bilinmeyen değerler olduğu gibi (küçük harfle) saklanır.
func Normalize(name string) Dialect {
	if name == "" {
		return Default
	}
	return Dialect(strings.ToLower(name))
}

// Parse, sürücü adını ve takma adlarını bilinen bir dialect'e çözer.
// Bilinmeyen adlar için ErrUnsupportedDriver döner.
func Parse(name string) (Dialect, error) {
	d, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDriver, name)
	}
	return d, nil
}

// String, dialect adını döndürür.
func (d Dialect) String() string {
	return string(d)
}

// IsSQLServer, dialect'in SQL Server ailesinden (sqlsrv/mssql) olup olmadığını döndürür.
func (d Dialect) IsSQLServer() bool {
	return d == SQLServer || d == MSSQL
}

// IsKnown, dialect'in desteklenen beş değerden biri olup olmadığını döndürür.
func (d Dialect) IsKnown() bool {
	switch d {
	case MySQL, Postgres, SQLite, SQLServer, MSSQL:
		return true
	}
	return false
}

// Names, Config doğrulaması gibi yerlerde kullanılmak üzere kabul edilen tüm adları döndürür.
func Names() []string {
	return []string{
		"mysql", "mariadb",
		"pgsql", "postgres", "postgresql", "pgx",
		"sqlite", "sqlite3",
		"sqlsrv", "sqlserver", "mssql",
	}
}

// ----------------------------------------------------------------------------
// QueryBuilder Interface (import döngüsünü kırmak için)
// ----------------------------------------------------------------------------

// QueryBuilder, Grammar implementasyonlarının ihtiyaç duyduğu arayüzü tanımlar.
// Bu arayüz, ana paket ile dialect paketi arasındaki import döngüsünü kırmak için kullanılır.
type QueryBuilder interface {
	GetTable() string
	GetDriver() Dialect
	GetColumns() []string
	GetJoins() []JoinClause
	GetConditions() []Condition
	GetGroupBy() []string
	GetOrderBy() []string
	GetHaving() []string
	GetHavingBindings() []any
	GetLimit() *int
	GetOffset() *int
}

// ----------------------------------------------------------------------------
// Condition Ledger Types
// ----------------------------------------------------------------------------

// Connective, koşulun AND veya OR kovasına düşeceğini belirtir.
type Connective int

const (
	And Connective = iota
	Or
)

// String, SQL için bağlaç kelimesini döndürür.
func (c Connective) String() string {
	if c == Or {
		return "OR"
	}
	return "AND"
}

// ConditionKind, defter kaydının hangi yüklem türünden üretildiğini belirtir.
// Derleme sırasında kullanılmaz; istatistik ve hata ayıklama içindir.
type ConditionKind int

const (
	KindBasic ConditionKind = iota
	KindIn
	KindNotIn
	KindBetween
	KindNull
	KindNotNull
	KindLike
	KindRaw
	KindGroup
	KindExists
	KindNotExists
	KindSub
)

// String, ConditionKind'ın string temsilini döndürür.
func (k ConditionKind) String() string {
	names := [...]string{
		"Basic", "In", "NotIn", "Between", "Null", "NotNull",
		"Like", "Raw", "Group", "Exists", "NotExists", "Sub",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Condition, koşul defterindeki tek bir kaydı temsil eder: önceden derlenmiş
// SQL parçası, bu parçanın bağlamaları ve bağlacı.
// Kayıtlar eklendikten sonra değiştirilmez.
type Condition struct {
	Connective Connective
	Kind       ConditionKind
	SQL        string
	Bindings   []any
}

// ----------------------------------------------------------------------------
// JOIN Types
// ----------------------------------------------------------------------------

// JoinType, JOIN türünü belirtir.
type JoinType string

const (
	JoinInner JoinType = "INNER"
	JoinLeft  JoinType = "LEFT"
	JoinRight JoinType = "RIGHT"
	JoinCross JoinType = "CROSS"
)

// JoinClause, JOIN ifadesini temsil eder. Koşul ham olarak saklanır.
type JoinClause struct {
	Type      JoinType
	Table     string
	Condition string
}

// ----------------------------------------------------------------------------
// Grammar Interface
// ----------------------------------------------------------------------------

// Grammar, sorgu bileşenlerini veritabanına özgü SQL ifadelerine çevirir.
type Grammar interface {
	// Name, gramerin dialect'ini döndürür.
	Name() Dialect

	// CompileSelect, SELECT sorgusunu derler.
	CompileSelect(b QueryBuilder) (string, []any, error)

	// CompileCount, COUNT sorgusunu derler.
	CompileCount(b QueryBuilder, column string) (string, []any, error)

	// CompileAggregate, SUM, AVG, MIN, MAX gibi agregat fonksiyonlarını derler.
	CompileAggregate(b QueryBuilder, fn, column string) (string, []any, error)

	// CompileInsert, INSERT sorgusunu derler.
	CompileInsert(b QueryBuilder, data map[string]any) (string, []any, error)

	// CompileInsertBatch, toplu INSERT sorgusunu derler.
	CompileInsertBatch(b QueryBuilder, data []map[string]any) (string, []any, error)

	// CompileInsertRows, kolon sırası verilmiş çok satırlı INSERT sorgusunu derler.
	CompileInsertRows(b QueryBuilder, columns []string, rows [][]any) (string, []any, error)

	// CompileUpdate, UPDATE sorgusunu derler.
	CompileUpdate(b QueryBuilder, data map[string]any) (string, []any, error)

	// CompileDelete, DELETE sorgusunu derler.
	CompileDelete(b QueryBuilder) (string, []any, error)

	// CompileUpsert, dialect'e özgü upsert sorgusunu derler.
	// updateColumns nil ise veri kolonlarından benzersiz kolonlar çıkarılarak hesaplanır.
	CompileUpsert(b QueryBuilder, data []map[string]any, uniqueColumns, updateColumns []string) (string, []any, error)

	// DateFormat, hata ayıklama çıktısında time.Time bağlamalarının Go zaman düzenini döndürür.
	DateFormat() string
}
