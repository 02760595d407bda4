package dialect

import "github.com/jmoiron/sqlx"

// Rebind, "?" yer tutucularını dialect'in sürücüsünün beklediği biçime çevirir.
//
// Builder her zaman "?" üretir. lib/pq gibi numaralı parametre isteyen sürücülere
// gönderilmeden önce bu fonksiyon kullanılabilir:
//
//	pgsql          -> $1, $2, ...
//	sqlsrv / mssql -> @p1, @p2, ...
//	diğerleri      -> değişmeden
func Rebind(d Dialect, query string) string {
	switch {
	case d == Postgres:
		return sqlx.Rebind(sqlx.DOLLAR, query)
	case d.IsSQLServer():
		return sqlx.Rebind(sqlx.AT, query)
	default:
		return query
	}
}
