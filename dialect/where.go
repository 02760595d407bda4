package dialect

import "strings"

// CompileWheres, koşul defterini tek bir WHERE ifadesine dönüştürür.
//
// Kayıtlar bağlaçlarına göre iki kovaya ayrılır. OR kovası boşsa AND kayıtları
// " AND " ile birleştirilir. Aksi halde AND kısmı, birden fazla kayıt içeriyorsa
// ya da metni " AND " barındırıyorsa parantez içine alınır ve her OR kaydı
// ayrı bir alternatif olarak eklenir:
//
//	where(a).where(b).orWhere(c)  ->  (a AND b) OR c
//	where(a).orWhere(b)           ->  a OR b
//
// Daha derin gruplama WhereGroup ile yapılır; grup kendi parantezini taşır.
//
// Bağlamalar, metindeki yer tutucu sırasıyla döner: önce AND kovası, sonra OR kovası.
// Boş defter için "" ve nil döner.
func CompileWheres(conditions []Condition) (string, []any) {
	var ands, ors []Condition
	for _, c := range conditions {
		if strings.TrimSpace(c.SQL) == "" {
			continue
		}
		if c.Connective == Or {
			ors = append(ors, c)
		} else {
			ands = append(ands, c)
		}
	}

	if len(ands) == 0 && len(ors) == 0 {
		return "", nil
	}

	args := make([]any, 0)
	for _, c := range ands {
		args = append(args, c.Bindings...)
	}
	for _, c := range ors {
		args = append(args, c.Bindings...)
	}

	andSQL := joinConditions(ands, " AND ")
	if len(ors) == 0 {
		return andSQL, args
	}

	parts := make([]string, 0, len(ors)+1)
	if len(ands) > 0 {
		if len(ands) > 1 || strings.Contains(andSQL, " AND ") {
			andSQL = "(" + andSQL + ")"
		}
		parts = append(parts, andSQL)
	}
	for _, c := range ors {
		parts = append(parts, c.SQL)
	}

	return strings.Join(parts, " OR "), args
}

func joinConditions(conditions []Condition, sep string) string {
	fragments := make([]string, len(conditions))
	for i, c := range conditions {
		fragments[i] = c.SQL
	}
	return strings.Join(fragments, sep)
}
