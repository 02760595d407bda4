package dialect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/biyonik/go-query-kit/internal/validation"
)

/*
 * ----------------------------------------------------------------------------
 * STATEMENT ASSEMBLERS
 * ----------------------------------------------------------------------------
 *
 * Bu dosya, builder'ın değişmez durumunu (QueryBuilder) çalıştırılabilir SQL
 * dizelerine dönüştüren montaj hattıdır. Tanımlayıcılar sarmalanmaz; tablo,
 * kolon ve JOIN koşulları çağıranın verdiği haliyle yazılır. Değerler yalnızca
 * yer tutucu (?) olarak metne girer ve bağlama listesinde aynı sırayla taşınır.
 *
 * Dialect farkları iki stratejiye ayrılmıştır:
 * 1. Paginator: LIMIT/OFFSET ya da OFFSET ... FETCH NEXT
 * 2. Upserter: ON DUPLICATE KEY / ON CONFLICT / MERGE
 *
 * @author Ahmet ALTUN
 * @github github.com/biyonik
 * @linkedin linkedin.com/in/biyonik
 * @email ahmet.altun60@gmail.com
 * ----------------------------------------------------------------------------
 */

var _ Grammar = (*BaseGrammar)(nil)

// DefaultDateFormat, gramer bir format belirtmediğinde time.Time değerlerinin
// ham SQL çıktısında yazıldığı Go zaman düzenidir.
const DefaultDateFormat = "2006-01-02 15:04:05"

// BaseGrammar, Grammar arayüzünün tek somut implementasyonudur.
// Dialect farkları paginator ve upserter alanlarından gelir.
type BaseGrammar struct {
	name       Dialect
	dateFormat string
	paginator  Paginator
	upserter   Upserter
}

// NewGrammar, verilen stratejilerle bir gramer oluşturur.
// upserter nil ise CompileUpsert ErrUnsupportedDialect döner.
func NewGrammar(name Dialect, paginator Paginator, upserter Upserter) *BaseGrammar {
	if paginator == nil {
		paginator = StandardPagination{}
	}
	return &BaseGrammar{
		name:       name,
		dateFormat: DefaultDateFormat,
		paginator:  paginator,
		upserter:   upserter,
	}
}

// For, dialect için varsayılan stratejilerle bir gramer döndürür.
// Bilinmeyen dialect'ler standart sayfalama ile çalışır ancak upsert desteklemez.
func For(d Dialect) *BaseGrammar {
	return NewGrammar(d, PaginatorFor(d), UpserterFor(d))
}

// Name, gramerin dialect'ini döndürür.
func (g *BaseGrammar) Name() Dialect {
	return g.name
}

// DateFormat, ToRawSQL ve Dump çıktılarında time.Time bağlamalarının yazıldığı
// Go zaman düzenini döndürür. Belirtilmemişse DefaultDateFormat kullanılır.
func (g *BaseGrammar) DateFormat() string {
	if g.dateFormat == "" {
		return DefaultDateFormat
	}
	return g.dateFormat
}

// WithDateFormat, aynı stratejilere sahip ve tarih düzeni layout olan yeni bir gramer döndürür.
//
//	g := dialect.For(dialect.SQLServer).WithDateFormat("2006-01-02T15:04:05.000")
func (g *BaseGrammar) WithDateFormat(layout string) *BaseGrammar {
	c := *g
	c.dateFormat = layout
	return &c
}

// CompileSelect, bir SELECT sorgusunu parçalarından birleştirerek inşa eder.
//
// Sıra: SELECT -> FROM -> JOIN -> WHERE -> GROUP BY -> HAVING -> ORDER BY -> sayfalama.
// ORDER BY her zaman sayfalamadan önce gelir; SQL Server'ın OFFSET/FETCH sözdizimi bunu gerektirir.
func (g *BaseGrammar) CompileSelect(b QueryBuilder) (string, []any, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}

	columns := b.GetColumns()
	if len(columns) == 0 {
		columns = []string{"*"}
	}

	var sql strings.Builder
	sql.WriteString("SELECT ")
	sql.WriteString(strings.Join(columns, ", "))

	args := g.compileBody(&sql, b)

	orders := b.GetOrderBy()
	if len(orders) > 0 {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(strings.Join(orders, ", "))
	}

	sql.WriteString(g.paginator.Paginate(len(orders) > 0, b.GetLimit(), b.GetOffset()))

	return sql.String(), args, nil
}

// CompileCount, COUNT sorgusunu derler. Kolon listesi, ORDER BY ve sayfalama dahil edilmez.
func (g *BaseGrammar) CompileCount(b QueryBuilder, column string) (string, []any, error) {
	return g.CompileAggregate(b, "COUNT", column)
}

// CompileAggregate, "SELECT FN(column) FROM ..." sorgusunu derler.
// Boş kolon "*" kabul edilir; fonksiyon adı büyük harfe çevrilir.
func (g *BaseGrammar) CompileAggregate(b QueryBuilder, fn, column string) (string, []any, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}
	if column == "" {
		column = "*"
	}

	var sql strings.Builder
	sql.WriteString("SELECT ")
	sql.WriteString(strings.ToUpper(fn))
	sql.WriteString("(")
	sql.WriteString(column)
	sql.WriteString(")")

	args := g.compileBody(&sql, b)
	return sql.String(), args, nil
}

// compileBody, SELECT ve agregat sorgularının ortak gövdesini yazar:
// FROM, JOIN, WHERE, GROUP BY ve HAVING. HAVING bağlamaları en sona eklenir.
func (g *BaseGrammar) compileBody(sql *strings.Builder, b QueryBuilder) []any {
	args := make([]any, 0)

	sql.WriteString(" FROM ")
	sql.WriteString(b.GetTable())

	for _, join := range b.GetJoins() {
		sql.WriteString(" ")
		sql.WriteString(compileJoin(join))
	}

	if whereSQL, whereArgs := CompileWheres(b.GetConditions()); whereSQL != "" {
		sql.WriteString(" WHERE ")
		sql.WriteString(whereSQL)
		args = append(args, whereArgs...)
	}

	if groupBy := b.GetGroupBy(); len(groupBy) > 0 {
		sql.WriteString(" GROUP BY ")
		sql.WriteString(strings.Join(groupBy, ", "))
	}

	if having := b.GetHaving(); len(having) > 0 {
		sql.WriteString(" HAVING ")
		sql.WriteString(strings.Join(having, " AND "))
		args = append(args, b.GetHavingBindings()...)
	}

	return args
}

// compileJoin, tek bir JOIN ifadesini derler. CROSS JOIN ON almaz.
func compileJoin(join JoinClause) string {
	if join.Type == JoinCross {
		return "CROSS JOIN " + join.Table
	}
	return string(join.Type) + " JOIN " + join.Table + " ON " + join.Condition
}

// CompileInsert, tekil bir kayıt ekleme sorgusu oluşturur.
//
// Map yapısındaki veriyi alır, anahtarları alfabetik sıralar (deterministik test edilebilirlik için)
// ve "INSERT INTO table (col1, col2) VALUES (?, ?)" formatında hazırlar.
func (g *BaseGrammar) CompileInsert(b QueryBuilder, data map[string]any) (string, []any, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}
	if len(data) == 0 {
		return "", nil, ErrNoColumns
	}

	keys, err := sortedColumns(data)
	if err != nil {
		return "", nil, err
	}

	args := make([]any, len(keys))
	for i, key := range keys {
		args[i] = data[key]
	}

	return insertPrefix(b.GetTable(), keys, 1), args, nil
}

// CompileInsertBatch, tek bir sorguda çoklu kayıt (bulk insert) ekleme işlemi oluşturur.
//
// Kolon sırasını ilk satır belirler; diğer tüm satırlar aynı anahtar kümesine sahip olmalıdır.
func (g *BaseGrammar) CompileInsertBatch(b QueryBuilder, data []map[string]any) (string, []any, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}

	keys, args, err := flattenRows(data, ErrInvalidBatch)
	if err != nil {
		return "", nil, err
	}

	return insertPrefix(b.GetTable(), keys, len(data)), args, nil
}

// CompileInsertRows, kolon sırası çağıran tarafından verilen çok satırlı INSERT oluşturur.
// Her satır columns ile aynı uzunlukta olmalıdır; değerler satır satır bağlanır.
//
//	g.CompileInsertRows(b, []string{"name", "age"}, [][]any{{"Ann", 30}, {"Bob", 41}})
//	// INSERT INTO users (name, age) VALUES (?, ?), (?, ?)
func (g *BaseGrammar) CompileInsertRows(b QueryBuilder, columns []string, rows [][]any) (string, []any, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}
	if len(columns) == 0 {
		return "", nil, ErrNoColumns
	}
	if err := validateColumns(columns); err != nil {
		return "", nil, err
	}
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			return "", nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidColumn, c)
		}
		seen[c] = struct{}{}
	}
	if len(rows) == 0 {
		return "", nil, fmt.Errorf("%w: no rows given", ErrInvalidBatch)
	}

	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		if len(row) != len(columns) {
			return "", nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidBatch, i, len(row), len(columns))
		}
		args = append(args, row...)
	}

	return insertPrefix(b.GetTable(), columns, len(rows)), args, nil
}

// CompileUpdate, mevcut kayıtları güncellemek için UPDATE sorgusu oluşturur.
// SET bağlamaları WHERE bağlamalarından önce gelir.
func (g *BaseGrammar) CompileUpdate(b QueryBuilder, data map[string]any) (string, []any, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}
	if len(data) == 0 {
		return "", nil, ErrNoColumns
	}

	keys, err := sortedColumns(data)
	if err != nil {
		return "", nil, err
	}

	var sql strings.Builder
	args := make([]any, 0, len(keys))

	sql.WriteString("UPDATE ")
	sql.WriteString(b.GetTable())
	sql.WriteString(" SET ")

	setParts := make([]string, len(keys))
	for i, key := range keys {
		setParts[i] = key + " = " + Placeholder
		args = append(args, data[key])
	}
	sql.WriteString(strings.Join(setParts, ", "))

	if whereSQL, whereArgs := CompileWheres(b.GetConditions()); whereSQL != "" {
		sql.WriteString(" WHERE ")
		sql.WriteString(whereSQL)
		args = append(args, whereArgs...)
	}

	return sql.String(), args, nil
}

// CompileDelete, kayıt silme sorgusu (DELETE) oluşturur.
func (g *BaseGrammar) CompileDelete(b QueryBuilder) (string, []any, error) {
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}

	sql := "DELETE FROM " + b.GetTable()
	whereSQL, args := CompileWheres(b.GetConditions())
	if whereSQL != "" {
		sql += " WHERE " + whereSQL
	}
	if args == nil {
		args = make([]any, 0)
	}

	return sql, args, nil
}

// CompileUpsert, tekil veya toplu upsert sorgusunu derler.
//
// Doğrulama sırası: boş veri, boş benzersiz kolon listesi, desteklenmeyen dialect.
func (g *BaseGrammar) CompileUpsert(b QueryBuilder, data []map[string]any, uniqueColumns, updateColumns []string) (string, []any, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return "", nil, ErrEmptyUpsertData
	}
	if len(uniqueColumns) == 0 {
		return "", nil, ErrNoUniqueColumns
	}
	if g.upserter == nil {
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedDialect, g.name)
	}
	if b.GetTable() == "" {
		return "", nil, ErrNoTable
	}

	keys, args, err := flattenRows(data, ErrInvalidBatch)
	if err != nil {
		return "", nil, err
	}
	if err := validateColumns(uniqueColumns); err != nil {
		return "", nil, err
	}
	if err := validateColumns(updateColumns); err != nil {
		return "", nil, err
	}

	update := ResolveUpdateColumns(keys, uniqueColumns, updateColumns)
	sql := g.upserter.Upsert(b.GetTable(), keys, len(data), uniqueColumns, update)

	return sql, args, nil
}

// flattenRows, satırların kolon kümesini doğrular ve bağlamaları satır satır,
// kolon sırasıyla düzleştirir. Şekil hatalarında shapeErr ile sarmalanmış hata döner.
func flattenRows(rows []map[string]any, shapeErr error) ([]string, []any, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: no rows given", shapeErr)
	}
	if len(rows[0]) == 0 {
		return nil, nil, fmt.Errorf("%w: first row has no columns", shapeErr)
	}

	keys, err := sortedColumns(rows[0])
	if err != nil {
		return nil, nil, err
	}

	args := make([]any, 0, len(rows)*len(keys))
	for i, row := range rows {
		if len(row) != len(keys) {
			return nil, nil, fmt.Errorf("%w: row %d has %d columns, want %d", shapeErr, i, len(row), len(keys))
		}
		for _, key := range keys {
			val, ok := row[key]
			if !ok {
				return nil, nil, fmt.Errorf("%w: row %d is missing column %q", shapeErr, i, key)
			}
			args = append(args, val)
		}
	}

	return keys, args, nil
}

// sortedColumns, map anahtarlarını doğrular ve alfabetik sırayla döndürür.
func sortedColumns(data map[string]any) ([]string, error) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if err := validateColumns(keys); err != nil {
		return nil, err
	}
	return keys, nil
}

func validateColumns(columns []string) error {
	for _, c := range columns {
		if err := validation.ValidateColumn(c); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidColumn, err)
		}
	}
	return nil
}
