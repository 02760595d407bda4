package querykit

import (
	"slices"

	"github.com/biyonik/go-query-kit/dialect"
	"github.com/biyonik/go-query-kit/internal/validation"
)

// LikeSide, Like içinde % joker karakterinin yerini belirtir.
type LikeSide = dialect.LikeSide

const (
	LikeBefore = dialect.LikeBefore
	LikeAfter  = dialect.LikeAfter
	LikeBoth   = dialect.LikeBoth
)

// addCondition, deftere tek bir kayıt ekler. Bağlamalar kopyalanır; çağıranın
// dilimi sonradan değişse bile kayıt etkilenmez.
func (b *Builder) addCondition(conn dialect.Connective, kind dialect.ConditionKind, sql string, bindings []any) *Builder {
	c := b.clone()
	c.conditions = append(c.conditions, dialect.Condition{
		Connective: conn,
		Kind:       kind,
		SQL:        sql,
		Bindings:   slices.Clone(bindings),
	})
	return c
}

// Where, "column = ?" koşulu ekler.
func (b *Builder) Where(column string, value any) *Builder {
	return b.WhereOp(column, "=", value)
}

// WhereOp, "column operator ?" koşulu ekler. Boş operatör "=" kabul edilir.
// Operatör olduğu gibi yazılır.
func (b *Builder) WhereOp(column, operator string, value any) *Builder {
	return b.addCondition(dialect.And, dialect.KindBasic, dialect.Compare(column, operator), []any{value})
}

// OrWhere, OR bağlacıyla "column = ?" koşulu ekler.
func (b *Builder) OrWhere(column string, value any) *Builder {
	return b.OrWhereOp(column, "=", value)
}

// OrWhereOp, OR bağlacıyla "column operator ?" koşulu ekler.
func (b *Builder) OrWhereOp(column, operator string, value any) *Builder {
	return b.addCondition(dialect.Or, dialect.KindBasic, dialect.Compare(column, operator), []any{value})
}

// WhereIn, WHERE IN koşulu ekler.
//
// Boş liste geçersiz SQL üretmek yerine hiçbir satırla eşleşmeyen "0=1" parçasını ekler.
func (b *Builder) WhereIn(column string, values []any) *Builder {
	if len(values) == 0 {
		return b.WhereRaw(dialect.AlwaysFalse)
	}
	return b.addCondition(dialect.And, dialect.KindIn, dialect.In(column, len(values)), values)
}

// WhereNotIn, WHERE NOT IN koşulu ekler. Boş liste her satır için doğru olduğundan
// hiçbir şey eklenmez ve alıcı olduğu gibi döner.
func (b *Builder) WhereNotIn(column string, values []any) *Builder {
	if len(values) == 0 {
		return b
	}
	return b.addCondition(dialect.And, dialect.KindNotIn, dialect.NotIn(column, len(values)), values)
}

// WhereBetween, "column BETWEEN ? AND ?" koşulu ekler.
func (b *Builder) WhereBetween(column string, low, high any) *Builder {
	return b.addCondition(dialect.And, dialect.KindBetween, dialect.Between(column), []any{low, high})
}

// WhereBetweenValues, sınırları bir dilimden alır. Dilim tam olarak 2 değer
// içermiyorsa ErrInvalidBetween döner.
func (b *Builder) WhereBetweenValues(column string, values []any) (*Builder, error) {
	if len(values) != 2 {
		return nil, ErrInvalidBetween
	}
	return b.WhereBetween(column, values[0], values[1]), nil
}

// WhereNull, "column IS NULL" koşulu ekler.
func (b *Builder) WhereNull(column string) *Builder {
	return b.addCondition(dialect.And, dialect.KindNull, dialect.IsNull(column), nil)
}

// WhereNotNull, "column IS NOT NULL" koşulu ekler.
func (b *Builder) WhereNotNull(column string) *Builder {
	return b.addCondition(dialect.And, dialect.KindNotNull, dialect.IsNotNull(column), nil)
}

// Like, değeri iki taraftan % ile sararak "column LIKE ?" koşulu ekler.
func (b *Builder) Like(column, value string) *Builder {
	return b.LikeSide(column, value, LikeBoth)
}

// LikeSide, joker karakterin yerini side ile belirler. Bilinmeyen side değeri
// değiştirmeden bağlar.
func (b *Builder) LikeSide(column, value string, side LikeSide) *Builder {
	return b.addCondition(dialect.And, dialect.KindLike, dialect.Like(column), []any{dialect.LikePattern(value, side)})
}

// WhereRaw, ham bir koşulu AND bağlacıyla ekler.
// Dikkat: ifade olduğu gibi SQL'e yazılır; değerleri her zaman bindings ile verin.
func (b *Builder) WhereRaw(condition string, bindings ...any) *Builder {
	return b.addCondition(dialect.And, dialect.KindRaw, condition, bindings)
}

// OrWhereRaw, ham bir koşulu OR bağlacıyla ekler.
func (b *Builder) OrWhereRaw(condition string, bindings ...any) *Builder {
	return b.addCondition(dialect.Or, dialect.KindRaw, condition, bindings)
}

// WhereRawOperator, bağlacı operator ile seçer: "OR" (büyük/küçük harf duyarsız)
// OR, diğer her değer AND anlamına gelir.
func (b *Builder) WhereRawOperator(operator, condition string, bindings ...any) *Builder {
	return b.addCondition(connective(operator), dialect.KindRaw, condition, bindings)
}

// ResetWhere, koşul defterini temizler. HAVING parçaları ve bağlamaları korunur.
func (b *Builder) ResetWhere() *Builder {
	c := b.clone()
	c.conditions = nil
	return c
}

// Having, "column = ?" HAVING koşulu ekler.
func (b *Builder) Having(column string, value any) *Builder {
	return b.HavingOp(column, "=", value)
}

// HavingOp, "column operator ?" HAVING koşulu ekler.
func (b *Builder) HavingOp(column, operator string, value any) *Builder {
	c := b.clone()
	c.having = append(c.having, dialect.Compare(column, operator))
	c.havingBindings = append(c.havingBindings, value)
	return c
}

// HavingRaw, ham bir HAVING koşulu ekler. HAVING parçaları her zaman AND ile birleşir
// ve bağlamaları WHERE bağlamalarından sonra gelir.
func (b *Builder) HavingRaw(condition string, bindings ...any) *Builder {
	c := b.clone()
	c.having = append(c.having, condition)
	c.havingBindings = append(c.havingBindings, bindings...)
	return c
}

func connective(operator string) dialect.Connective {
	if validation.IsOr(operator) {
		return dialect.Or
	}
	return dialect.And
}
