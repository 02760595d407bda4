package dialect

import "strings"

// Upserter, "ekle ya da çakışmada güncelle" ifadesini dialect'e göre derler.
//
// columns kolon sırasını, rows satır sayısını belirtir. updateColumns burada
// artık çözülmüş kümedir; boşsa güncelleme kısmı dialect'e göre atlanır.
type Upserter interface {
	Upsert(table string, columns []string, rows int, uniqueColumns, updateColumns []string) string
}

// MySQLUpsert, INSERT ... AS new ON DUPLICATE KEY UPDATE üretir.
type MySQLUpsert struct{}

// Upsert, güncellenecek kolon yoksa düz INSERT döndürür.
func (MySQLUpsert) Upsert(table string, columns []string, rows int, _, updateColumns []string) string {
	var sql strings.Builder
	sql.WriteString(insertPrefix(table, columns, rows))

	if len(updateColumns) == 0 {
		return sql.String()
	}

	sql.WriteString(" AS new ON DUPLICATE KEY UPDATE ")
	sql.WriteString(assignments(updateColumns, "", "new."))
	return sql.String()
}

// ConflictUpsert, PostgreSQL ve SQLite için INSERT ... ON CONFLICT üretir.
// Excluded, sahte tablonun adıdır: PostgreSQL "EXCLUDED", SQLite "excluded".
type ConflictUpsert struct {
	Excluded string
}

// Upsert, güncellenecek kolon yoksa DO NOTHING ile biter.
func (u ConflictUpsert) Upsert(table string, columns []string, rows int, uniqueColumns, updateColumns []string) string {
	var sql strings.Builder
	sql.WriteString(insertPrefix(table, columns, rows))
	sql.WriteString(" ON CONFLICT (")
	sql.WriteString(strings.Join(uniqueColumns, ", "))
	sql.WriteString(")")

	if len(updateColumns) == 0 {
		sql.WriteString(" DO NOTHING")
		return sql.String()
	}

	sql.WriteString(" DO UPDATE SET ")
	sql.WriteString(assignments(updateColumns, "", u.Excluded+"."))
	return sql.String()
}

// MergeUpsert, SQL Server için MERGE ifadesi üretir.
type MergeUpsert struct{}

// Upsert, güncellenecek kolon yoksa WHEN MATCHED dalını atlar.
func (MergeUpsert) Upsert(table string, columns []string, rows int, uniqueColumns, updateColumns []string) string {
	cols := strings.Join(columns, ", ")

	match := make([]string, len(uniqueColumns))
	for i, c := range uniqueColumns {
		match[i] = "target." + c + " = source." + c
	}

	var sql strings.Builder
	sql.WriteString("MERGE INTO ")
	sql.WriteString(table)
	sql.WriteString(" AS target USING (VALUES ")
	sql.WriteString(rowPlaceholders(len(columns), rows))
	sql.WriteString(") AS source (")
	sql.WriteString(cols)
	sql.WriteString(") ON ")
	sql.WriteString(strings.Join(match, " AND "))

	if len(updateColumns) > 0 {
		sql.WriteString(" WHEN MATCHED THEN UPDATE SET ")
		sql.WriteString(assignments(updateColumns, "target.", "source."))
	}

	source := make([]string, len(columns))
	for i, c := range columns {
		source[i] = "source." + c
	}
	sql.WriteString(" WHEN NOT MATCHED THEN INSERT (")
	sql.WriteString(cols)
	sql.WriteString(") VALUES (")
	sql.WriteString(strings.Join(source, ", "))
	sql.WriteString(");")

	return sql.String()
}

// UpserterFor, dialect için upsert stratejisini döndürür.
// Bilinmeyen dialect için nil döner.
func UpserterFor(d Dialect) Upserter {
	switch d {
	case MySQL:
		return MySQLUpsert{}
	case Postgres:
		return ConflictUpsert{Excluded: "EXCLUDED"}
	case SQLite:
		return ConflictUpsert{Excluded: "excluded"}
	case SQLServer, MSSQL:
		return MergeUpsert{}
	}
	return nil
}

// ResolveUpdateColumns, nil güncelleme kümesini "veri kolonları eksi benzersiz kolonlar"
// olarak hesaplar. nil olmayan bir küme (boş dahil) olduğu gibi kullanılır.
func ResolveUpdateColumns(columns, uniqueColumns, updateColumns []string) []string {
	if updateColumns != nil {
		return updateColumns
	}

	unique := make(map[string]struct{}, len(uniqueColumns))
	for _, c := range uniqueColumns {
		unique[c] = struct{}{}
	}

	out := make([]string, 0, len(columns))
	for _, c := range columns {
		if _, ok := unique[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}

func insertPrefix(table string, columns []string, rows int) string {
	return "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES " +
		rowPlaceholders(len(columns), rows)
}

func rowPlaceholders(width, rows int) string {
	row := "(" + Placeholders(width) + ")"
	parts := make([]string, rows)
	for i := range parts {
		parts[i] = row
	}
	return strings.Join(parts, ", ")
}

func assignments(columns []string, left, right string) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = left + c + " = " + right + c
	}
	return strings.Join(parts, ", ")
}
