package validation

import "strings"

// aggregateFunctions, ToAggregateSQL ile kullanılabilecek fonksiyonlardır.
var aggregateFunctions = map[string]bool{
	"COUNT": true,
	"SUM":   true,
	"AVG":   true,
	"MIN":   true,
	"MAX":   true,
}

// NormalizeDirection, sıralama yönünü büyük harfe çevirir. Boş yön "ASC" kabul edilir.
// Değer başka bir kontrolden geçmez; "asc nulls last" gibi ifadeler olduğu gibi korunur.
func NormalizeDirection(dir string) string {
	dir = strings.ToUpper(strings.TrimSpace(dir))
	if dir == "" {
		return "ASC"
	}
	return dir
}

// NormalizeJoinType, JOIN türünü büyük harfe çevirir. Boş tür "INNER" kabul edilir.
func NormalizeJoinType(kind string) string {
	kind = strings.ToUpper(strings.TrimSpace(kind))
	if kind == "" {
		return "INNER"
	}
	return kind
}

// IsOr, mantıksal operatörün OR olup olmadığını büyük/küçük harf duyarsız kontrol eder.
// OR dışındaki her değer AND anlamına gelir.
func IsOr(operator string) bool {
	return strings.EqualFold(strings.TrimSpace(operator), "OR")
}

// NormalizeAggregate, agregat fonksiyon adını büyük harfe çevirir ve izin verilenler
// listesinde olup olmadığını denetler.
func NormalizeAggregate(fn string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(fn))
	if !aggregateFunctions[normalized] {
		return "", &KeywordError{
			Keyword: fn,
			Reason:  "aggregate function must be one of COUNT, SUM, AVG, MIN, MAX",
		}
	}
	return normalized, nil
}

// KeywordError, anahtar kelime doğrulama hatasını temsil eder.
type KeywordError struct {
	Keyword string
	Reason  string
}

// Error, error arayüzünü uygular ve hatayı açıklayıcı string olarak döner.
func (e *KeywordError) Error() string {
	return "invalid keyword '" + e.Keyword + "': " + e.Reason
}
