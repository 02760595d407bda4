// Package validation, builder'ın veri kayıtlarında kullandığı kolon adlarını ve
// anahtar kelime argümanlarını (sıralama yönü, JOIN türü, bağlaç, agregat fonksiyonu)
// doğrulayan ve normalize eden dahili yardımcı fonksiyonları içerir.
//
// Tablo adları, JOIN koşulları ve ham parçalar doğrulanmaz; bunlar çağıranın
// verdiği haliyle SQL'e yazılır. Kolon doğrulaması yalnızca INSERT, UPDATE ve
// UPSERT verisindeki anahtarlar için yapılır, çünkü bu anahtarlar map'ten gelir
// ve genellikle dış girdiden türetilir.
//
// @author Ahmet ALTUN
// @github github.com/biyonik
// @linkedin linkedin.com/in/biyonik
// @email ahmet.altun60@gmail.com
package validation

import (
	"fmt"
	"regexp"
)

// maxIdentifierLength, MySQL ve SQL Server'ın izin verdiği en uzun tanımlayıcı boyutudur.
const maxIdentifierLength = 128

// Doğrulama başarısızlık nedenleri.
const (
	ReasonEmpty    = "identifier cannot be empty"
	ReasonTooLong  = "identifier is longer than 128 characters"
	ReasonBadShape = "expected name or table.name; each part is a plain ASCII name or a `quoted`, \"quoted\" or [quoted] name"
)

// segment, tek bir ad parçasıdır: çıplak ASCII ad ya da dialect tırnaklarıyla
// sarılmış, kapanış tırnağını içermeyen ad.
const segment = "(?:[A-Za-z_]\\w*|`[^`]+`|\"[^\"]+\"|\\[[^\\]]+\\])"

// columnPattern: bir ya da iki parça, aralarında tek nokta.
var columnPattern = regexp.MustCompile(`^` + segment + `(?:\.` + segment + `)?$`)

// IdentifierError, reddedilen adı ve reddedilme nedenini taşır.
type IdentifierError struct {
	Identifier string
	Reason     string
}

func (e *IdentifierError) Error() string {
	if e.Identifier == "" {
		return "invalid identifier: " + e.Reason
	}
	return fmt.Sprintf("invalid identifier '%s': %s", e.Identifier, e.Reason)
}

// ValidateIdentifier, id'nin SQL'e olduğu gibi yazılabilecek bir ad olup olmadığını denetler.
// Kabul edilen biçimler "column" ve "table.column"dır. Çıplak parçalarda Unicode
// harfler kabul edilmez; rezerv kelimeler ve özel adlar `key`, "order" ya da [key]
// biçiminde tırnaklanarak yazılabilir.
func ValidateIdentifier(id string) error {
	var reason string
	switch {
	case id == "":
		reason = ReasonEmpty
	case len(id) > maxIdentifierLength:
		reason = ReasonTooLong
	case !columnPattern.MatchString(id):
		reason = ReasonBadShape
	default:
		return nil
	}
	return &IdentifierError{Identifier: id, Reason: reason}
}

// ValidateColumn, kayıt verisindeki bir anahtarı doğrular.
func ValidateColumn(column string) error {
	return ValidateIdentifier(column)
}
