package querykit

import "github.com/biyonik/go-query-kit/dialect"

// Sentinel errors for go-query-kit.
//
// Every error returned for bad caller input matches ErrInvalidArgument through
// errors.Is. The narrower sentinels below can be checked the same way.
var (
	// ErrInvalidArgument is the single kind shared by all caller-input violations.
	ErrInvalidArgument = dialect.ErrInvalidArgument

	// ErrNoTable is returned when a statement is rendered without a table.
	ErrNoTable = dialect.ErrNoTable

	// ErrNoColumns is returned when an insert/update has no columns.
	ErrNoColumns = dialect.ErrNoColumns

	// ErrInvalidColumn is returned when a data key is neither a plain nor a quoted column name.
	ErrInvalidColumn = dialect.ErrInvalidColumn

	// ErrInvalidBatch is returned for an empty batch or rows whose columns differ.
	ErrInvalidBatch = dialect.ErrInvalidBatch

	// ErrInvalidBetween is returned when a BETWEEN values slice doesn't hold exactly 2 values.
	ErrInvalidBetween = dialect.ErrInvalidBetween

	// ErrSubqueryTable is returned when an EXISTS or scalar subquery callback leaves the table unset.
	ErrSubqueryTable = dialect.ErrSubqueryTable

	// ErrEmptyUpsertData is returned when upsert receives no rows.
	ErrEmptyUpsertData = dialect.ErrEmptyUpsertData

	// ErrNoUniqueColumns is returned when upsert receives no unique columns.
	ErrNoUniqueColumns = dialect.ErrNoUniqueColumns

	// ErrUnsupportedDialect is returned when upsert is rendered for an unknown driver.
	ErrUnsupportedDialect = dialect.ErrUnsupportedDialect

	// ErrUnsupportedDriver is returned when a driver name or database/sql driver can't be mapped to a dialect.
	ErrUnsupportedDriver = dialect.ErrUnsupportedDriver

	// ErrInvalidAggregate is returned for aggregate functions other than COUNT, SUM, AVG, MIN, MAX.
	ErrInvalidAggregate = &dialect.ArgumentError{Message: "invalid aggregate function"}

	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = &dialect.ArgumentError{Message: "invalid configuration"}

	// ErrNilDB is returned by FromDB when given a nil *sql.DB.
	ErrNilDB = &dialect.ArgumentError{Message: "nil database handle"}
)

// ArgumentError is the concrete type behind every sentinel above.
type ArgumentError = dialect.ArgumentError
