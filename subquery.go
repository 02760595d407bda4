package querykit

import "github.com/biyonik/go-query-kit/dialect"

// SubqueryFunc, iç içe sorguyu kuran geri çağırmadır. Boş bir Builder alır ve
// üzerine kurulmuş Builder'ı döndürür; builder değişmez olduğundan dönüş değeri kullanılır.
type SubqueryFunc func(q *Builder) *Builder

// runNested, fn'i alıcıdan türetilmiş boş bir Builder ile çalıştırır.
// fn nil ise ya da nil döndürürse boş Builder döner.
func (b *Builder) runNested(fn SubqueryFunc) *Builder {
	n := b.nested()
	if fn == nil {
		return n
	}
	if out := fn(n); out != nil {
		return out
	}
	return n
}

// WhereGroup, fn içinde kurulan koşulları parantez içinde tek bir AND koşulu olarak ekler:
//
//	q.Where("active", 1).WhereGroup(func(g *Builder) *Builder {
//	    return g.Where("role", "admin").OrWhere("role", "owner")
//	})
//	// active = ? AND (role = ? OR role = ?)
//
// fn hiç koşul eklemezse alıcı değişmeden döner.
func (b *Builder) WhereGroup(fn SubqueryFunc) *Builder {
	return b.whereGroup(dialect.And, fn)
}

// OrWhereGroup, grubu OR bağlacıyla ekler.
func (b *Builder) OrWhereGroup(fn SubqueryFunc) *Builder {
	return b.whereGroup(dialect.Or, fn)
}

// WhereGroupWith, bağlacı operator ile seçer ("OR" ya da diğerleri için AND).
func (b *Builder) WhereGroupWith(operator string, fn SubqueryFunc) *Builder {
	return b.whereGroup(connective(operator), fn)
}

// WhereNested, WhereGroup için takma addır.
func (b *Builder) WhereNested(fn SubqueryFunc) *Builder {
	return b.WhereGroup(fn)
}

// OrWhereNested, OrWhereGroup için takma addır.
func (b *Builder) OrWhereNested(fn SubqueryFunc) *Builder {
	return b.OrWhereGroup(fn)
}

func (b *Builder) whereGroup(conn dialect.Connective, fn SubqueryFunc) *Builder {
	inner := b.runNested(fn)

	// Yalnızca WHERE bağlamaları taşınır; iç builder'ın HAVING'i gruba yazılmaz.
	sql, bindings := dialect.CompileWheres(inner.conditions)
	if sql == "" {
		return b
	}
	return b.addCondition(conn, dialect.KindGroup, dialect.Group(sql), bindings)
}

// WhereExists, "EXISTS (SELECT ...)" koşulu ekler. fn bir tablo ayarlamazsa
// ErrSubqueryTable döner.
func (b *Builder) WhereExists(fn SubqueryFunc) (*Builder, error) {
	return b.whereExists(dialect.And, dialect.KindExists, fn)
}

// OrWhereExists, EXISTS koşulunu OR bağlacıyla ekler.
func (b *Builder) OrWhereExists(fn SubqueryFunc) (*Builder, error) {
	return b.whereExists(dialect.Or, dialect.KindExists, fn)
}

// WhereNotExists, "NOT EXISTS (SELECT ...)" koşulu ekler.
func (b *Builder) WhereNotExists(fn SubqueryFunc) (*Builder, error) {
	return b.whereExists(dialect.And, dialect.KindNotExists, fn)
}

// OrWhereNotExists, NOT EXISTS koşulunu OR bağlacıyla ekler.
func (b *Builder) OrWhereNotExists(fn SubqueryFunc) (*Builder, error) {
	return b.whereExists(dialect.Or, dialect.KindNotExists, fn)
}

func (b *Builder) whereExists(conn dialect.Connective, kind dialect.ConditionKind, fn SubqueryFunc) (*Builder, error) {
	sql, bindings, err := b.compileSubquery(fn)
	if err != nil {
		return nil, err
	}

	if kind == dialect.KindNotExists {
		sql = dialect.NotExists(sql)
	} else {
		sql = dialect.Exists(sql)
	}
	return b.addCondition(conn, kind, sql, bindings), nil
}

// WhereSub, "column operator (SELECT ...)" koşulu ekler:
//
//	q.WhereSub("price", ">", func(s *Builder) *Builder {
//	    return s.Table("products").Select("AVG(price)")
//	})
//	// price > (SELECT AVG(price) FROM products)
func (b *Builder) WhereSub(column, operator string, fn SubqueryFunc) (*Builder, error) {
	sql, bindings, err := b.compileSubquery(fn)
	if err != nil {
		return nil, err
	}
	return b.addCondition(dialect.And, dialect.KindSub, dialect.Subquery(column, operator, sql), bindings), nil
}

// compileSubquery, fn'i çalıştırır ve tam SELECT ifadesini bağlamalarıyla döndürür.
// Tablo kontrolü geri çağırma çalıştıktan sonra yapılır.
func (b *Builder) compileSubquery(fn SubqueryFunc) (string, []any, error) {
	inner := b.runNested(fn)
	if inner.table == "" {
		return "", nil, ErrSubqueryTable
	}
	return inner.grammarFor().CompileSelect(inner)
}
