package querykit_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	querykit "github.com/biyonik/go-query-kit"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0
	)`)
	require.NoError(t, err)
	return db
}

func mustExec(t *testing.T, db *sql.DB, query string, args []any, err error) sql.Result {
	t.Helper()
	require.NoError(t, err)
	res, err := db.ExecContext(context.Background(), query, args...)
	require.NoError(t, err, query)
	return res
}

func TestSQLite_EndToEnd(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	users, err := querykit.FromDB(db, querykit.WithTable("users"))
	require.NoError(t, err)
	require.Equal(t, querykit.SQLite, users.GetDriver())

	query, args, err := users.ToInsertBatchSQL([]map[string]any{
		{"email": "ann@example.com", "name": "Ann", "score": 40},
		{"email": "bob@example.com", "name": "Bob", "score": 50},
		{"email": "cy@example.com", "name": "Cy", "score": 70},
	})
	res := mustExec(t, db, query, args, err)
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)

	query, args, err = users.ToUpsertSQL(
		map[string]any{"email": "ann@example.com", "name": "Ann B.", "score": 99},
		[]string{"email"}, nil,
	)
	mustExec(t, db, query, args, err)

	query, args, err = users.ToUpsertSQL(
		map[string]any{"email": "bob@example.com", "name": "Ignored", "score": 0},
		[]string{"email"}, []string{},
	)
	mustExec(t, db, query, args, err)

	query, args, err = users.Where("email", "cy@example.com").ToUpdateSQL(map[string]any{"score": 75})
	mustExec(t, db, query, args, err)

	query, args, err = users.Select("name", "score").OrderByDesc("score").Paginate(1, 2).ToSQL()
	require.NoError(t, err)

	rows, err := db.QueryContext(ctx, query, args...)
	require.NoError(t, err)
	defer rows.Close()

	type row struct {
		name  string
		score int
	}
	var got []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.name, &r.score))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []row{{"Ann B.", 99}, {"Cy", 75}}, got)

	query, args, err = users.WhereOp("score", ">=", 50).ToCountSQL("")
	require.NoError(t, err)
	var count int
	require.NoError(t, db.QueryRowContext(ctx, query, args...).Scan(&count))
	assert.Equal(t, 3, count)

	notTop, err := users.WhereExists(func(s *querykit.Builder) *querykit.Builder {
		return s.Table("users AS other").WhereRaw("other.score > users.score")
	})
	require.NoError(t, err)
	query, args, err = notTop.ToCountSQL("")
	require.NoError(t, err)
	require.NoError(t, db.QueryRowContext(ctx, query, args...).Scan(&count))
	assert.Equal(t, 2, count)

	query, args, err = users.Select("score").Where("name", "Bob").ToSelectSQL()
	require.NoError(t, err)
	var bobScore int
	require.NoError(t, db.QueryRowContext(ctx, query, args...).Scan(&bobScore))
	assert.Equal(t, 50, bobScore)

	query, args, err = users.WhereIn("email", []any{"bob@example.com", "nobody@example.com"}).ToDeleteSQL()
	res = mustExec(t, db, query, args, err)
	affected, err = res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	query, args, err = users.WhereIn("email", nil).ToDeleteSQL()
	res = mustExec(t, db, query, args, err)
	affected, err = res.RowsAffected()
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestSQLite_MaxAndBatchUpsert(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	users := querykit.Table("users", querykit.WithDriver("sqlite"))

	query, args, err := users.ToUpsertBatchSQL([]map[string]any{
		{"email": "a@x.io", "name": "A", "score": 1},
		{"email": "b@x.io", "name": "B", "score": 2},
	}, []string{"email"}, []string{"score"})
	mustExec(t, db, query, args, err)

	query, args, err = users.ToUpsertBatchSQL([]map[string]any{
		{"email": "a@x.io", "name": "A2", "score": 10},
		{"email": "c@x.io", "name": "C", "score": 3},
	}, []string{"email"}, []string{"score"})
	mustExec(t, db, query, args, err)

	query, args, err = users.ToMaxSQL("score")
	require.NoError(t, err)
	var top int
	require.NoError(t, db.QueryRowContext(ctx, query, args...).Scan(&top))
	assert.Equal(t, 10, top)

	query, args, err = users.Select("name").Where("email", "a@x.io").ToSQL()
	require.NoError(t, err)
	var name string
	require.NoError(t, db.QueryRowContext(ctx, query, args...).Scan(&name))
	assert.Equal(t, "A", name)
}

func TestSQLite_ReservedWordColumns(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	_, err := db.Exec(`CREATE TABLE settings ("key" TEXT PRIMARY KEY, "order" INTEGER NOT NULL)`)
	require.NoError(t, err)

	settings := querykit.Table("settings", querykit.WithDriver("sqlite"))

	query, args, err := settings.ToInsertRowsSQL([]string{`"key"`, `"order"`},
		[]any{"theme", 1},
		[]any{"lang", 2},
	)
	mustExec(t, db, query, args, err)

	query, args, err = settings.ToUpsertSQL(map[string]any{`"key"`: "theme", `"order"`: 5}, []string{`"key"`}, nil)
	mustExec(t, db, query, args, err)

	query, args, err = settings.Select(`"order"`).Where(`"key"`, "theme").ToSQL()
	require.NoError(t, err)
	var order int
	require.NoError(t, db.QueryRowContext(ctx, query, args...).Scan(&order))
	assert.Equal(t, 5, order)
}
