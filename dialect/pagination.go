package dialect

import "strconv"

// Paginator, sayfalama ifadesini dialect'e göre derler.
// ordered, sorguda ORDER BY bulunup bulunmadığını bildirir.
// Dönen parça derlenmiş sorgunun sonuna eklenir.
type Paginator interface {
	Paginate(ordered bool, limit, offset *int) string
}

// StandardPagination, MySQL, PostgreSQL ve SQLite için LIMIT/OFFSET üretir.
type StandardPagination struct{}

// Paginate, " LIMIT n" ve varsa " OFFSET m" döndürür.
func (StandardPagination) Paginate(_ bool, limit, offset *int) string {
	var out string
	if limit != nil {
		out += " LIMIT " + strconv.Itoa(*limit)
	}
	if offset != nil {
		out += " OFFSET " + strconv.Itoa(*offset)
	}
	return out
}

// SQLServerPagination, OFFSET ... ROWS FETCH NEXT ... ROWS ONLY sözdizimini üretir.
// SQL Server bu sözdizimi için ORDER BY zorunlu tutar; yoksa ORDER BY (SELECT NULL) eklenir.
type SQLServerPagination struct{}

// Paginate, sayfalama istenmediyse boş string döndürür.
func (SQLServerPagination) Paginate(ordered bool, limit, offset *int) string {
	if limit == nil && offset == nil {
		return ""
	}

	var out string
	if !ordered {
		out += " ORDER BY (SELECT NULL)"
	}

	skip := 0
	if offset != nil {
		skip = *offset
	}
	out += " OFFSET " + strconv.Itoa(skip) + " ROWS"

	if limit != nil {
		out += " FETCH NEXT " + strconv.Itoa(*limit) + " ROWS ONLY"
	}
	return out
}

// PaginatorFor, dialect için uygun sayfalama stratejisini döndürür.
// Bilinmeyen dialect'ler standart stratejiye düşer.
func PaginatorFor(d Dialect) Paginator {
	if d.IsSQLServer() {
		return SQLServerPagination{}
	}
	return StandardPagination{}
}
