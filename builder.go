package querykit

import (
	"io"
	"slices"

	"github.com/biyonik/go-query-kit/dialect"
	"github.com/biyonik/go-query-kit/internal/validation"
)

// Builder, SQL sorgularını akıcı bir arayüz (fluent interface) ile oluşturmak için kullanılan ana yapıdır.
//
// Builder değişmezdir: her metot alıcıyı kopyalar, kopya üzerinde değişiklik yapar ve
// yeni bir *Builder döndürür. Böylece tek bir taban sorgudan birbirinden bağımsız
// dallar türetilebilir ve aynı *Builder birden fazla goroutine tarafından
// kilitsiz okunabilir.
//
// Genel kullanım örneği:
//
//	sql, args, err := querykit.Table("users").
//	    Where("status", "active").
//	    WhereIn("role", []any{"admin", "user"}).
//	    OrderBy("name", "asc").
//	    Limit(10).
//	    ToSQL()
//
//	// SELECT * FROM users WHERE status = ? AND role IN (?, ?) ORDER BY name ASC LIMIT 10
//	// [active admin user]
//
// Builder SQL çalıştırmaz; yalnızca metni ve sıralı bağlama listesini üretir.
//
// @author Ahmet ALTUN
// @github github.com/biyonik
// @linkedin linkedin.com/in/biyonik
// @email ahmet.altun60@gmail.com
type Builder struct {
	grammar dialect.Grammar
	driver  dialect.Dialect

	// Debug output
	logger Logger
	output io.Writer
	color  bool

	table   string
	columns []string
	joins   []dialect.JoinClause

	// Condition ledger
	conditions []dialect.Condition

	groupBy        []string
	orderBy        []string
	having         []string
	havingBindings []any

	limit  *int
	offset *int
}

var _ dialect.QueryBuilder = (*Builder)(nil)

// newBuilder, varsayılan değerlerle boş bir Builder oluşturur.
func newBuilder() *Builder {
	return &Builder{
		driver:  dialect.Default,
		logger:  NopLogger{},
		columns: []string{"*"},
		color:   true,
	}
}

// clone, alıcının derin kopyasını döndürür. Tüm dilimler kopyalanır; böylece
// kopyaya yapılan append işlemleri asla ortak bir dizinin üzerine yazmaz.
// Defter kayıtlarının kendisi değişmez olduğundan kayıt başına kopya gerekmez.
func (b *Builder) clone() *Builder {
	c := *b
	c.columns = slices.Clone(b.columns)
	c.joins = slices.Clone(b.joins)
	c.conditions = slices.Clone(b.conditions)
	c.groupBy = slices.Clone(b.groupBy)
	c.orderBy = slices.Clone(b.orderBy)
	c.having = slices.Clone(b.having)
	c.havingBindings = slices.Clone(b.havingBindings)
	return &c
}

// nested, alt sorgu ve gruplar için boş bir Builder döndürür.
// Yalnızca dialect, gramer ve debug ayarları devralınır.
func (b *Builder) nested() *Builder {
	n := newBuilder()
	n.grammar = b.grammar
	n.driver = b.driver
	n.logger = b.logger
	n.output = b.output
	n.color = b.color
	return n
}

// grammarFor, derleme için kullanılacak grameri döndürür.
func (b *Builder) grammarFor() dialect.Grammar {
	if b.grammar != nil {
		return b.grammar
	}
	return dialect.For(b.driver)
}

// Table, sorguda kullanılacak tablo adını ayarlar.
func (b *Builder) Table(name string) *Builder {
	c := b.clone()
	c.table = name
	return c
}

// From, Table için okunabilir alias sağlar.
func (b *Builder) From(name string) *Builder {
	return b.Table(name)
}

// SetDriver, hedef dialect'i değiştirir. Ad küçük harfe çevrilerek saklanır;
// boş ad mysql kabul edilir. WithGrammar ile verilmiş özel gramer devre dışı kalır.
func (b *Builder) SetDriver(driver string) *Builder {
	c := b.clone()
	c.driver = dialect.Normalize(driver)
	c.grammar = nil
	return c
}

// Select, seçilecek kolon listesini değiştirir. Kolon verilmezse "*" kullanılır.
func (b *Builder) Select(columns ...string) *Builder {
	c := b.clone()
	if len(columns) == 0 {
		c.columns = []string{"*"}
		return c
	}
	c.columns = slices.Clone(columns)
	return c
}

// SelectDistinct, kolon listesini değiştirir ve ilk kolonun başına DISTINCT ekler.
func (b *Builder) SelectDistinct(columns ...string) *Builder {
	c := b.Select(columns...)
	c.columns[0] = "DISTINCT " + c.columns[0]
	return c
}

// AddSelect, mevcut kolon listesine yeni kolonlar ekler. Varsayılan "*" korunur:
//
//	Table("users").AddSelect("COUNT(*) AS total")  ->  SELECT *, COUNT(*) AS total FROM users
func (b *Builder) AddSelect(columns ...string) *Builder {
	c := b.clone()
	c.columns = append(c.columns, columns...)
	return c
}

// GroupBy, GROUP BY listesine kolon ekler.
func (b *Builder) GroupBy(columns ...string) *Builder {
	c := b.clone()
	c.groupBy = append(c.groupBy, columns...)
	return c
}

// OrderBy, ORDER BY listesine "column DIRECTION" ekler. Yön büyük harfe çevrilir;
// boş yön ASC kabul edilir.
func (b *Builder) OrderBy(column, direction string) *Builder {
	c := b.clone()
	c.orderBy = append(c.orderBy, column+" "+validation.NormalizeDirection(direction))
	return c
}

// OrderByAsc, artan sıralama ekler.
func (b *Builder) OrderByAsc(column string) *Builder {
	return b.OrderBy(column, "ASC")
}

// OrderByDesc, azalan sıralama ekler.
func (b *Builder) OrderByDesc(column string) *Builder {
	return b.OrderBy(column, "DESC")
}

// Latest, kolona göre azalan sıralar. Kolon boşsa "created_at" kullanılır.
func (b *Builder) Latest(column string) *Builder {
	if column == "" {
		column = "created_at"
	}
	return b.OrderByDesc(column)
}

// Oldest, kolona göre artan sıralar. Kolon boşsa "created_at" kullanılır.
func (b *Builder) Oldest(column string) *Builder {
	if column == "" {
		column = "created_at"
	}
	return b.OrderByAsc(column)
}

// Limit, döndürülecek en fazla satır sayısını ayarlar. Negatif değer 0 kabul edilir.
func (b *Builder) Limit(n int) *Builder {
	c := b.clone()
	c.limit = nonNegative(n)
	return c
}

// Offset, atlanacak satır sayısını ayarlar. Negatif değer 0 kabul edilir.
func (b *Builder) Offset(n int) *Builder {
	c := b.clone()
	c.offset = nonNegative(n)
	return c
}

// LimitOffset, Limit ve Offset'i tek çağrıda ayarlar.
func (b *Builder) LimitOffset(limit, offset int) *Builder {
	c := b.clone()
	c.limit = nonNegative(limit)
	c.offset = nonNegative(offset)
	return c
}

// Paginate, sayfa numarasına göre LIMIT ve OFFSET hesaplar: offset = (page-1)*perPage.
// Sayfa 1'den küçükse 1, perPage 1'den küçükse 15 kabul edilir.
func (b *Builder) Paginate(page, perPage int) *Builder {
	p := NewPagination(page, perPage, 0)
	return b.LimitOffset(p.PerPage, p.Offset())
}

// ForPage, Paginate için takma addır.
func (b *Builder) ForPage(page, perPage int) *Builder {
	return b.Paginate(page, perPage)
}

// When, koşul doğruysa fn'i uygular ve sonucunu döndürür.
// fn nil döndürürse alıcı değişmeden döner.
func (b *Builder) When(condition bool, fn func(*Builder) *Builder) *Builder {
	if !condition || fn == nil {
		return b
	}
	if out := fn(b); out != nil {
		return out
	}
	return b
}

// Unless, koşul yanlışsa fn'i uygular.
func (b *Builder) Unless(condition bool, fn func(*Builder) *Builder) *Builder {
	return b.When(!condition, fn)
}

func nonNegative(n int) *int {
	if n < 0 {
		n = 0
	}
	return &n
}

// ----------------------------------------------------------------------------
// Getters (dialect.QueryBuilder)
// ----------------------------------------------------------------------------

// GetTable, tablo adını döndürür.
func (b *Builder) GetTable() string { return b.table }

// GetDriver, dialect'i döndürür.
func (b *Builder) GetDriver() dialect.Dialect { return b.driver }

// GetColumns, seçilen kolonların kopyasını döndürür.
func (b *Builder) GetColumns() []string { return slices.Clone(b.columns) }

// GetJoins, JOIN listesinin kopyasını döndürür.
func (b *Builder) GetJoins() []dialect.JoinClause { return slices.Clone(b.joins) }

// GetConditions, koşul defterinin kopyasını döndürür. Her kaydın bağlamaları da
// kopyalanır; dönen dilim üzerindeki değişiklikler builder'a yansımaz.
func (b *Builder) GetConditions() []dialect.Condition {
	if b.conditions == nil {
		return nil
	}
	out := make([]dialect.Condition, len(b.conditions))
	for i, c := range b.conditions {
		c.Bindings = slices.Clone(c.Bindings)
		out[i] = c
	}
	return out
}

// GetGroupBy, GROUP BY listesinin kopyasını döndürür.
func (b *Builder) GetGroupBy() []string { return slices.Clone(b.groupBy) }

// GetOrderBy, ORDER BY listesinin kopyasını döndürür.
func (b *Builder) GetOrderBy() []string { return slices.Clone(b.orderBy) }

// GetHaving, HAVING parçalarının kopyasını döndürür.
func (b *Builder) GetHaving() []string { return slices.Clone(b.having) }

// GetHavingBindings, HAVING bağlamalarının kopyasını döndürür.
func (b *Builder) GetHavingBindings() []any { return slices.Clone(b.havingBindings) }

// GetLimit, LIMIT değerini döndürür; ayarlanmamışsa nil.
func (b *Builder) GetLimit() *int { return copyInt(b.limit) }

// GetOffset, OFFSET değerini döndürür; ayarlanmamışsa nil.
func (b *Builder) GetOffset() *int { return copyInt(b.offset) }

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
