package dialect

import "errors"

// ErrInvalidArgument, çağıranın girdisinden kaynaklanan tüm hataların ortak türüdür.
// Aşağıdaki tüm sentinel hatalar errors.Is ile bu değere eşlenir.
var ErrInvalidArgument = errors.New("querykit: invalid argument")

// Dialect ve builder tarafından paylaşılan sentinel hatalar.
// Ana paket ile import döngüsünü önlemek için burada tanımlanmıştır.
var (
	ErrNoTable            = &ArgumentError{Message: "no table specified"}
	ErrNoColumns          = &ArgumentError{Message: "no columns specified"}
	ErrInvalidColumn      = &ArgumentError{Message: "invalid column name"}
	ErrInvalidBatch       = &ArgumentError{Message: "invalid data format for batch insert"}
	ErrInvalidBetween     = &ArgumentError{Message: "whereBetween requires exactly 2 values"}
	ErrSubqueryTable      = &ArgumentError{Message: "subquery must specify a table using Table()"}
	ErrEmptyUpsertData    = &ArgumentError{Message: "data cannot be empty for upsert"}
	ErrNoUniqueColumns    = &ArgumentError{Message: "unique columns must be specified for upsert"}
	ErrUnsupportedDialect = &ArgumentError{Message: "unsupported driver for upsert"}
	ErrUnsupportedDriver  = &ArgumentError{Message: "unsupported driver"}
)

// ArgumentError, geçersiz argüman hatalarını temsil eder.
type ArgumentError struct {
	Message string
}

// Error, hatayı string olarak döndürür.
func (e *ArgumentError) Error() string {
	return "querykit: " + e.Message
}

// Is, tüm ArgumentError değerlerinin ErrInvalidArgument ile eşleşmesini sağlar.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
