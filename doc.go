// Package querykit builds parameterized SQL strings from fluent method chains.
//
// go-query-kit offers a Laravel-inspired API that renders SQL text together with
// an ordered list of bindings. It never opens a connection or executes a
// statement; hand the result to database/sql, sqlx or any driver you like.
//
// # Quick Start
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
// # Immutability
//
// Every method returns a new *Builder and leaves the receiver untouched, so a
// base query can be shared and branched freely, including across goroutines:
//
//	base := querykit.Table("orders").Where("tenant_id", 7)
//	open := base.Where("status", "open")
//	closed := base.Where("status", "closed")
//
// # Where Clauses
//
//	qb.WhereOp("age", ">", 18)
//	qb.OrWhere("role", "admin")
//	qb.WhereIn("status", []any{"active", "pending"})
//	qb.WhereBetween("created_at", start, end)
//	qb.WhereNull("deleted_at")
//	qb.WhereGroup(func(g *querykit.Builder) *querykit.Builder {
//	    return g.Where("a", 1).OrWhere("b", 2)
//	})
//
// AND conditions are grouped before OR alternatives:
// Where(a).Where(b).OrWhere(c) renders (a AND b) OR c. Use WhereGroup for any
// other nesting.
//
// # Writes
//
//	querykit.Table("users").ToInsertSQL(map[string]any{"name": "John"})
//	querykit.Table("users").Where("id", 1).ToUpdateSQL(map[string]any{"status": "inactive"})
//	querykit.Table("users").Where("status", "banned").ToDeleteSQL()
//	querykit.Table("users").ToUpsertSQL(row, []string{"email"}, nil)
//
// Column order for record data is the sorted key order of the map.
//
// # Dialects
//
// mysql (default), pgsql, sqlite, sqlsrv and mssql are supported. Placeholders
// are always "?"; use dialect.Rebind for drivers that expect $1 or @p1.
// FromDB detects the dialect from a *sql.DB.
//
// # Security
//
// Values only ever reach the SQL text as placeholders. Table names, column
// names, operators and raw fragments are written verbatim and must never come
// from untrusted input. Keys of record data are checked against a strict
// identifier pattern. ToRawSQL output is for logging only.
package querykit
