package querykit

import (
	"fmt"

	"github.com/biyonik/go-query-kit/dialect"
	"github.com/biyonik/go-query-kit/internal/validation"
)

// Derleme metotları builder'ı değiştirmez; aynı builder üzerinde tekrar tekrar
// çağrılabilir ve her seferinde aynı çıktıyı verir.

// ToSQL, SELECT ifadesini ve bağlamalarını döndürür.
// Bağlama sırası: WHERE bağlamaları, ardından HAVING bağlamaları.
func (b *Builder) ToSQL() (string, []any, error) {
	return b.grammarFor().CompileSelect(b)
}

// ToSelectSQL, ToSQL için takma addır.
func (b *Builder) ToSelectSQL() (string, []any, error) {
	return b.ToSQL()
}

// Bindings, SELECT ifadesinin bağlama listesini döndürür.
func (b *Builder) Bindings() []any {
	_, args := b.CompileWhere()
	return append(args, b.havingBindings...)
}

// CompileWhere, yalnızca WHERE ifadesini (WHERE anahtar kelimesi olmadan) ve
// bağlamalarını döndürür. Defter boşsa "" döner.
func (b *Builder) CompileWhere() (string, []any) {
	sql, args := dialect.CompileWheres(b.conditions)
	if args == nil {
		args = make([]any, 0)
	}
	return sql, args
}

// ToCountSQL, "SELECT COUNT(column) FROM ..." ifadesini döndürür. Boş kolon "*" olur.
// Kolon listesi, ORDER BY ve sayfalama dahil edilmez.
func (b *Builder) ToCountSQL(column string) (string, []any, error) {
	return b.grammarFor().CompileCount(b, column)
}

// ToAggregateSQL, COUNT, SUM, AVG, MIN veya MAX ile agregat sorgusu döndürür.
func (b *Builder) ToAggregateSQL(fn, column string) (string, []any, error) {
	normalized, err := validation.NormalizeAggregate(fn)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidAggregate, err)
	}
	return b.grammarFor().CompileAggregate(b, normalized, column)
}

// ToSumSQL, SUM(column) sorgusu döndürür.
func (b *Builder) ToSumSQL(column string) (string, []any, error) {
	return b.ToAggregateSQL("SUM", column)
}

// ToAvgSQL, AVG(column) sorgusu döndürür.
func (b *Builder) ToAvgSQL(column string) (string, []any, error) {
	return b.ToAggregateSQL("AVG", column)
}

// ToMinSQL, MIN(column) sorgusu döndürür.
func (b *Builder) ToMinSQL(column string) (string, []any, error) {
	return b.ToAggregateSQL("MIN", column)
}

// ToMaxSQL, MAX(column) sorgusu döndürür.
func (b *Builder) ToMaxSQL(column string) (string, []any, error) {
	return b.ToAggregateSQL("MAX", column)
}

// ToInsertSQL, tek satırlık INSERT ifadesi döndürür. Kolonlar alfabetik sıralanır.
func (b *Builder) ToInsertSQL(data map[string]any) (string, []any, error) {
	return b.grammarFor().CompileInsert(b, data)
}

// ToInsertBatchSQL, çok satırlı INSERT ifadesi döndürür.
// Kolonları ilk satır belirler; tüm satırlar aynı anahtarlara sahip olmalıdır,
// aksi halde ErrInvalidBatch döner.
func (b *Builder) ToInsertBatchSQL(rows []map[string]any) (string, []any, error) {
	return b.grammarFor().CompileInsertBatch(b, rows)
}

// ToInsertRowsSQL, kolon sırası columns ile belirlenen INSERT ifadesi döndürür.
// Map tabanlı ToInsertSQL'in aksine kolonlar sıralanmaz; her satır columns ile
// aynı uzunlukta olmalıdır, aksi halde ErrInvalidBatch döner.
//
//	q.ToInsertRowsSQL([]string{"name", "age"}, []any{"Ann", 30}, []any{"Bob", 41})
func (b *Builder) ToInsertRowsSQL(columns []string, rows ...[]any) (string, []any, error) {
	return b.grammarFor().CompileInsertRows(b, columns, rows)
}

// ToUpdateSQL, "UPDATE t SET c = ?, ... [WHERE ...]" ifadesi döndürür.
// SET bağlamaları WHERE bağlamalarından önce gelir.
func (b *Builder) ToUpdateSQL(data map[string]any) (string, []any, error) {
	return b.grammarFor().CompileUpdate(b, data)
}

// ToDeleteSQL, "DELETE FROM t [WHERE ...]" ifadesi döndürür.
func (b *Builder) ToDeleteSQL() (string, []any, error) {
	return b.grammarFor().CompileDelete(b)
}

// ToUpsertSQL, tek satırlık upsert ifadesi döndürür.
//
// updateColumns nil ise veri kolonlarından uniqueColumns çıkarılarak hesaplanır.
// Boş (nil olmayan) bir dilim, çakışmada hiçbir kolonun güncellenmeyeceğini belirtir:
// MySQL'de düz INSERT, PostgreSQL/SQLite'ta DO NOTHING, SQL Server'da MATCHED dalı olmadan MERGE.
func (b *Builder) ToUpsertSQL(data map[string]any, uniqueColumns, updateColumns []string) (string, []any, error) {
	var rows []map[string]any
	if len(data) > 0 {
		rows = []map[string]any{data}
	}
	return b.ToUpsertBatchSQL(rows, uniqueColumns, updateColumns)
}

// ToUpsertBatchSQL, çok satırlı upsert ifadesi döndürür.
func (b *Builder) ToUpsertBatchSQL(rows []map[string]any, uniqueColumns, updateColumns []string) (string, []any, error) {
	return b.grammarFor().CompileUpsert(b, rows, uniqueColumns, updateColumns)
}
