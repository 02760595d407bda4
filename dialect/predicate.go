package dialect

import "strings"

// Yüklem derleyicileri saf fonksiyonlardır: kolon ve operatörden yer tutuculu
// bir SQL parçası üretirler. Değerler parçaya asla gömülmez.

// Compare, "column operator ?" parçasını üretir. Boş operatör "=" kabul edilir.
func Compare(column, operator string) string {
	if operator == "" {
		operator = "="
	}
	return column + " " + operator + " " + Placeholder
}

// In, "column IN (?, ?, ...)" parçasını üretir.
func In(column string, n int) string {
	return column + " IN (" + Placeholders(n) + ")"
}

// NotIn, "column NOT IN (?, ?, ...)" parçasını üretir.
func NotIn(column string, n int) string {
	return column + " NOT IN (" + Placeholders(n) + ")"
}

// Between, "column BETWEEN ? AND ?" parçasını üretir.
func Between(column string) string {
	return column + " BETWEEN " + Placeholder + " AND " + Placeholder
}

// IsNull, "column IS NULL" parçasını üretir.
func IsNull(column string) string {
	return column + " IS NULL"
}

// IsNotNull, "column IS NOT NULL" parçasını üretir.
func IsNotNull(column string) string {
	return column + " IS NOT NULL"
}

// Like, "column LIKE ?" parçasını üretir.
func Like(column string) string {
	return column + " LIKE " + Placeholder
}

// Exists, derlenmiş bir SELECT'i EXISTS (...) ile sarar.
func Exists(query string) string {
	return "EXISTS (" + query + ")"
}

// NotExists, derlenmiş bir SELECT'i NOT EXISTS (...) ile sarar.
func NotExists(query string) string {
	return "NOT EXISTS (" + query + ")"
}

// Subquery, "column operator (SELECT ...)" parçasını üretir.
func Subquery(column, operator, query string) string {
	if operator == "" {
		operator = "="
	}
	return column + " " + operator + " (" + query + ")"
}

// Group, derlenmiş bir WHERE ifadesini parantez içine alır.
func Group(expr string) string {
	return "(" + expr + ")"
}

// AlwaysFalse, boş IN listesi için kullanılan ve hiçbir satırla eşleşmeyen parçadır.
const AlwaysFalse = "0=1"

// Placeholders, virgülle ayrılmış n adet yer tutucu üretir.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(Placeholder+", ", n-1) + Placeholder
}

// LikeSide, LIKE deseninde joker karakterin hangi tarafa ekleneceğini belirtir.
type LikeSide string

const (
	LikeBefore LikeSide = "before"
	LikeAfter  LikeSide = "after"
	LikeBoth   LikeSide = "both"
)

// LikePattern, değeri tarafa göre % ile sarar. Bilinmeyen taraf değeri değiştirmez.
func LikePattern(value string, side LikeSide) string {
	switch side {
	case LikeBefore:
		return "%" + value
	case LikeAfter:
		return value + "%"
	case LikeBoth:
		return "%" + value + "%"
	default:
		return value
	}
}
