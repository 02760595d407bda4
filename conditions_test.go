package querykit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	querykit "github.com/biyonik/go-query-kit"
)

func TestWherePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		q        *querykit.Builder
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "and and or",
			q:        querykit.Table("t").Where("a", 1).Where("b", 2).OrWhere("c", 3),
			wantSQL:  "SELECT * FROM t WHERE (a = ? AND b = ?) OR c = ?",
			wantArgs: []any{1, 2, 3},
		},
		{
			name:     "single and then or",
			q:        querykit.Table("t").Where("a", 1).OrWhere("b", 2),
			wantSQL:  "SELECT * FROM t WHERE a = ? OR b = ?",
			wantArgs: []any{1, 2},
		},
		{
			name:     "operators",
			q:        querykit.Table("t").WhereOp("age", ">=", 18).OrWhereOp("vip", "<>", false),
			wantSQL:  "SELECT * FROM t WHERE age >= ? OR vip <> ?",
			wantArgs: []any{18, false},
		},
		{
			name:     "empty operator",
			q:        querykit.Table("t").WhereOp("id", "", 9),
			wantSQL:  "SELECT * FROM t WHERE id = ?",
			wantArgs: []any{9},
		},
		{
			name:     "between then or",
			q:        querykit.Table("t").WhereBetween("age", 18, 30).OrWhere("vip", true),
			wantSQL:  "SELECT * FROM t WHERE (age BETWEEN ? AND ?) OR vip = ?",
			wantArgs: []any{18, 30, true},
		},
		{
			name:     "or before and",
			q:        querykit.Table("t").OrWhere("a", 1).Where("b", 2),
			wantSQL:  "SELECT * FROM t WHERE b = ? OR a = ?",
			wantArgs: []any{2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.q.ToSQL()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestWhereIn(t *testing.T) {
	sql, args, err := querykit.Table("users").WhereIn("id", []any{1, 2, 3}).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users WHERE id IN (?, ?, ?)", sql)
	assert.Equal(t, []any{1, 2, 3}, args)

	sql, args, err = querykit.Table("users").WhereIn("id", nil).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users WHERE 0=1", sql)
	assert.Empty(t, args)

	sql, args, err = querykit.Table("users").WhereNotIn("id", []any{4}).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users WHERE id NOT IN (?)", sql)
	assert.Equal(t, []any{4}, args)
}

func TestWhereNotIn_EmptyIsNoop(t *testing.T) {
	base := querykit.Table("users").Where("status", "active")
	before, beforeArgs, err := base.ToSQL()
	require.NoError(t, err)

	after, afterArgs, err := base.WhereNotIn("id", []any{}).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, beforeArgs, afterArgs)
}

func TestWhereBetween(t *testing.T) {
	sql, args, err := querykit.Table("users").WhereBetween("age", 18, 65).ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users WHERE age BETWEEN ? AND ?", sql)
	assert.Equal(t, []any{18, 65}, args)

	q, err := querykit.Table("users").WhereBetweenValues("age", []any{1, 2})
	require.NoError(t, err)
	sql, _, err = q.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM users WHERE age BETWEEN ? AND ?", sql)

	for _, values := range [][]any{nil, {1}, {1, 2, 3}} {
		q, err := querykit.Table("users").WhereBetweenValues("age", values)
		assert.Nil(t, q)
		assert.ErrorIs(t, err, querykit.ErrInvalidBetween)
		assert.ErrorIs(t, err, querykit.ErrInvalidArgument)
	}
}

func TestNullAndLike(t *testing.T) {
	sql, args, err := querykit.Table("users").
		WhereNull("deleted_at").
		WhereNotNull("verified_at").
		Like("name", "jo").
		LikeSide("email", "example.com", querykit.LikeBefore).
		LikeSide("code", "TR", querykit.LikeAfter).
		ToSQL()

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM users WHERE deleted_at IS NULL AND verified_at IS NOT NULL AND name LIKE ? AND email LIKE ? AND code LIKE ?",
		sql,
	)
	assert.Equal(t, []any{"%jo%", "%example.com", "TR%"}, args)
}

func TestWhereRaw(t *testing.T) {
	sql, args, err := querykit.Table("events").
		WhereRaw("YEAR(created_at) = ?", 2024).
		OrWhereRaw("featured = 1").
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM events WHERE YEAR(created_at) = ? OR featured = 1", sql)
	assert.Equal(t, []any{2024}, args)

	sql, args, err = querykit.Table("events").
		Where("a", 1).
		WhereRawOperator("or", "b = ?", 2).
		WhereRawOperator("xor", "c = ?", 3).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM events WHERE (a = ? AND c = ?) OR b = ?", sql)
	assert.Equal(t, []any{1, 3, 2}, args)
}

func TestRawExpressions(t *testing.T) {
	r := querykit.NewRaw("score > ?", 10)
	assert.Equal(t, "score > ?", r.String())

	sql, args, err := querykit.Table("players").
		WhereExpr(r).
		OrWhereExpr(querykit.NewRaw("admin = ?", true)).
		GroupBy("team").
		HavingExpr(querykit.NewRaw("COUNT(*) > ?", 3)).
		ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM players WHERE score > ? OR admin = ? GROUP BY team HAVING COUNT(*) > ?", sql)
	assert.Equal(t, []any{10, true, 3}, args)
}

func TestHavingBindingsComeLast(t *testing.T) {
	q := querykit.Table("orders").
		GroupBy("user_id").
		Having("status", "paid").
		HavingRaw("SUM(total) BETWEEN ? AND ?", 10, 20).
		Where("region", "eu")

	sql, args, err := q.ToSQL()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT * FROM orders WHERE region = ? GROUP BY user_id HAVING status = ? AND SUM(total) BETWEEN ? AND ?",
		sql,
	)
	assert.Equal(t, []any{"eu", "paid", 10, 20}, args)
	assert.Equal(t, args, q.Bindings())
	assert.Equal(t, []string{"status = ?", "SUM(total) BETWEEN ? AND ?"}, q.GetHaving())
	assert.Equal(t, []any{"paid", 10, 20}, q.GetHavingBindings())
}

func TestResetWhere(t *testing.T) {
	q := querykit.Table("orders").
		Where("a", 1).
		OrWhere("b", 2).
		GroupBy("c").
		Having("d", 4).
		ResetWhere()

	sql, args, err := q.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM orders GROUP BY c HAVING d = ?", sql)
	assert.Equal(t, []any{4}, args)
	assert.Empty(t, q.GetConditions())
}

func TestCompileWhere(t *testing.T) {
	sql, args := querykit.Table("t").CompileWhere()
	assert.Equal(t, "", sql)
	assert.NotNil(t, args)
	assert.Empty(t, args)

	sql, args = querykit.Table("t").Where("a", 1).OrWhere("b", 2).CompileWhere()
	assert.Equal(t, "a = ? OR b = ?", sql)
	assert.Equal(t, []any{1, 2}, args)
}

func TestPlaceholderBindingAlignment(t *testing.T) {
	chains := []*querykit.Builder{
		querykit.Table("t").Where("a", 1).WhereIn("b", []any{2, 3}).OrWhereOp("c", ">", 4),
		querykit.Table("t").OrWhere("a", 1).Where("b", 2).WhereBetween("c", 3, 4).OrWhere("d", 5),
		querykit.Table("t").WhereRaw("x = ? OR y = ?", 1, 2).WhereNull("z").OrWhereRaw("w IN (?, ?)", 3, 4),
		querykit.Table("t").WhereIn("a", nil).OrWhere("b", 1).GroupBy("c").HavingOp("COUNT(*)", ">", 2),
		querykit.Table("t").Like("a", "x").WhereGroup(func(g *querykit.Builder) *querykit.Builder {
			return g.Where("b", 1).OrWhere("c", 2)
		}).OrWhere("d", 3),
	}

	for i, q := range chains {
		sql, args, err := q.ToSQL()
		require.NoError(t, err)
		assert.Equal(t, strings.Count(sql, "?"), len(args), "chain %d: %s", i, sql)
	}
}

func TestCallerSliceIsCopied(t *testing.T) {
	values := []any{1, 2}
	q := querykit.Table("t").WhereIn("id", values)
	values[0] = 99

	_, args, err := q.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, args)

	raw := []any{"x"}
	q = querykit.Table("t").WhereRaw("a = ?", raw...)
	raw[0] = "y"
	_, args, err = q.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, []any{"x"}, args)
}
