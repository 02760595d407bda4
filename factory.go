package querykit

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"modernc.org/sqlite"

	"github.com/biyonik/go-query-kit/dialect"
)

// DialectProvider, kendi dialect adını bildiren değerler içindir
// (örneğin bir bağlantı havuzu sarmalayıcısı).
type DialectProvider interface {
	Dialect() string
}

// FromDB, *sql.DB'nin sürücüsünden dialect'i tespit eder ve o dialect için bir Builder döndürür.
// Bağlantı açılmaz; yalnızca db.Driver() incelenir.
//
// Örnek:
//
//	db, _ := sql.Open("postgres", dsn)
//	qb, err := querykit.FromDB(db, querykit.WithTable("users"))
//	// qb.GetDriver() == "pgsql"
func FromDB(db *sql.DB, opts ...Option) (*Builder, error) {
	if db == nil {
		return nil, ErrNilDB
	}

	d, err := DetectDialect(db.Driver())
	if err != nil {
		return nil, err
	}

	return New(append([]Option{WithDriver(string(d))}, opts...)...), nil
}

// FromProvider, DialectProvider'ın bildirdiği ad ve takma adlardan dialect'i çözer.
func FromProvider(p DialectProvider, opts ...Option) (*Builder, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil provider", ErrUnsupportedDriver)
	}

	d, err := dialect.Parse(p.Dialect())
	if err != nil {
		return nil, err
	}

	return New(append([]Option{WithDriver(string(d))}, opts...)...), nil
}

// DetectDialect, database/sql sürücüsünü dialect'e eşler.
//
// Bilinen sürücüler tip üzerinden tanınır (go-sql-driver/mysql, lib/pq, modernc.org/sqlite).
// Diğerleri için sürücünün paket yolu incelenir; böylece pgx, mattn/go-sqlite3 ve
// SQL Server sürücüleri de bu paketleri içe aktarmadan tanınır.
func DetectDialect(drv driver.Driver) (Dialect, error) {
	switch drv.(type) {
	case nil:
		return "", fmt.Errorf("%w: nil driver", ErrUnsupportedDriver)
	case *mysql.MySQLDriver:
		return dialect.MySQL, nil
	case *pq.Driver:
		return dialect.Postgres, nil
	case *sqlite.Driver:
		return dialect.SQLite, nil
	}

	path := strings.ToLower(driverPackage(drv))
	switch {
	case strings.Contains(path, "mssql"), strings.Contains(path, "sqlserver"):
		return dialect.SQLServer, nil
	case strings.Contains(path, "pgx"), strings.Contains(path, "postgres"), strings.Contains(path, "/pq"):
		return dialect.Postgres, nil
	case strings.Contains(path, "sqlite"):
		return dialect.SQLite, nil
	case strings.Contains(path, "mysql"), strings.Contains(path, "mariadb"):
		return dialect.MySQL, nil
	}

	return "", fmt.Errorf("%w: %T", ErrUnsupportedDriver, drv)
}

// driverPackage, sürücü tipinin tanımlandığı paketin yolunu döndürür.
func driverPackage(drv driver.Driver) string {
	t := reflect.TypeOf(drv)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.PkgPath()
}
