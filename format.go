package querykit

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/biyonik/go-query-kit/dialect"
)

const (
	// maxDisplayLength, görüntülenen bir değerin kesilmeden önceki en büyük uzunluğudur.
	maxDisplayLength = 100

	// truncatedLength, kesilen değerden korunan karakter sayısıdır; ardından "..." gelir.
	truncatedLength = 97
)

// FormatValue, bir bağlamayı hata ayıklama çıktısı için SQL literaline benzer biçimde yazar.
//
//	nil                   -> NULL
//	bool                  -> 1 / 0
//	string, []byte        -> 'text' (100 karakterden uzunsa 97 karakter + ...)
//	time.Time             -> '2006-01-02 15:04:05' (dialect.DefaultDateFormat)
//	driver.Valuer         -> Value() sonucu aynı kurallarla
//	slice, array, map, struct -> JSON (aynı kesme kuralıyla)
//	diğerleri             -> fmt varsayılanı
//
// Çıktı kaçış (escape) uygulamaz ve asla çalıştırılmamalıdır.
func FormatValue(v any) string {
	return formatValue(v, dialect.DefaultDateFormat)
}

// formatValue, FormatValue gibidir ancak time.Time değerlerini layout ile yazar.
func formatValue(v any, layout string) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if val {
			return "1"
		}
		return "0"
	case string:
		return quote(val)
	case []byte:
		return quote(string(val))
	case time.Time:
		return "'" + val.Format(layout) + "'"
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case driver.Valuer:
		if isNilPointer(val) {
			return "NULL"
		}
		inner, err := val.Value()
		if err != nil {
			return "(encoding error)"
		}
		return formatValue(inner, layout)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return "NULL"
		}
		return formatValue(rv.Elem().Interface(), layout)
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "(encoding error)"
		}
		return truncateText(string(encoded))
	}

	return fmt.Sprint(v)
}

// ToRawSQL, SELECT ifadesindeki her yer tutucuyu sıradaki bağlamanın FormatValue
// çıktısıyla değiştirir. Tarihler gramerin DateFormat düzeniyle yazılır.
//
// UYARI: Sonuç yalnızca loglama ve inceleme içindir. Değerler kaçış uygulanmadan
// yazıldığından SQL enjeksiyonuna açıktır; asla çalıştırmayın.
func (b *Builder) ToRawSQL() (string, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return "", err
	}
	return interpolate(query, args, b.dateLayout()), nil
}

// interpolate, yer tutucuları soldan sağa tek geçişte doldurur. Yerleştirilen
// değerlerin içindeki "?" karakterleri tekrar taranmaz. Bağlama sayısı yetmezse
// kalan yer tutucular olduğu gibi bırakılır.
func interpolate(query string, args []any, layout string) string {
	var out strings.Builder
	out.Grow(len(query))

	next := 0
	for {
		i := strings.Index(query, dialect.Placeholder)
		if i < 0 || next >= len(args) {
			out.WriteString(query)
			break
		}
		out.WriteString(query[:i])
		out.WriteString(formatValue(args[next], layout))
		next++
		query = query[i+len(dialect.Placeholder):]
	}
	return out.String()
}

// dateLayout, builder'ın gramerinin tarih düzenidir.
func (b *Builder) dateLayout() string {
	if layout := b.grammarFor().DateFormat(); layout != "" {
		return layout
	}
	return dialect.DefaultDateFormat
}

func quote(s string) string {
	return "'" + truncateText(s) + "'"
}

// truncateText, 100 karakterden uzun metni 97 karakter + "..." olarak keser.
// Uzunluk rune olarak ölçülür; çok baytlı karakterler bölünmez.
func truncateText(s string) string {
	if utf8.RuneCountInString(s) <= maxDisplayLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:truncatedLength]) + "..."
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// typeName, Dump çıktısında bağlamanın türünü gösterir.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
