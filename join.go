package querykit

import (
	"github.com/biyonik/go-query-kit/dialect"
	"github.com/biyonik/go-query-kit/internal/validation"
)

// JoinType, JOIN türünü belirtir.
type JoinType = dialect.JoinType

const (
	JoinInner = dialect.JoinInner
	JoinLeft  = dialect.JoinLeft
	JoinRight = dialect.JoinRight
	JoinCross = dialect.JoinCross
)

// Join, INNER JOIN ekler. Koşul ham olarak yazılır:
//
//	q.Join("orders", "orders.user_id = users.id")
func (b *Builder) Join(table, condition string) *Builder {
	return b.JoinWith(JoinInner, table, condition)
}

// InnerJoin, Join ile aynıdır.
func (b *Builder) InnerJoin(table, condition string) *Builder {
	return b.JoinWith(JoinInner, table, condition)
}

// LeftJoin, LEFT JOIN ekler.
func (b *Builder) LeftJoin(table, condition string) *Builder {
	return b.JoinWith(JoinLeft, table, condition)
}

// RightJoin, RIGHT JOIN ekler.
func (b *Builder) RightJoin(table, condition string) *Builder {
	return b.JoinWith(JoinRight, table, condition)
}

// CrossJoin, ON almayan CROSS JOIN ekler.
func (b *Builder) CrossJoin(table string) *Builder {
	return b.JoinWith(JoinCross, table, "")
}

// JoinWith, verilen türde JOIN ekler. Tür büyük harfe çevrilir; boş tür INNER kabul edilir.
func (b *Builder) JoinWith(kind JoinType, table, condition string) *Builder {
	c := b.clone()
	c.joins = append(c.joins, dialect.JoinClause{
		Type:      JoinType(validation.NormalizeJoinType(string(kind))),
		Table:     table,
		Condition: condition,
	})
	return c
}
