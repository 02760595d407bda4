package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMySQLUpsert(t *testing.T) {
	u := MySQLUpsert{}

	got := u.Upsert("users", []string{"email", "name"}, 1, []string{"email"}, []string{"name"})
	assert.Equal(t, "INSERT INTO users (email, name) VALUES (?, ?) AS new ON DUPLICATE KEY UPDATE name = new.name", got)

	plain := u.Upsert("users", []string{"email", "name"}, 2, []string{"email"}, []string{})
	assert.Equal(t, "INSERT INTO users (email, name) VALUES (?, ?), (?, ?)", plain)
}

func TestConflictUpsert(t *testing.T) {
	pg := ConflictUpsert{Excluded: "EXCLUDED"}
	assert.Equal(t,
		"INSERT INTO users (email, name) VALUES (?, ?) ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name",
		pg.Upsert("users", []string{"email", "name"}, 1, []string{"email"}, []string{"name"}),
	)

	lite := ConflictUpsert{Excluded: "excluded"}
	assert.Equal(t,
		"INSERT INTO users (email, name) VALUES (?, ?) ON CONFLICT (email) DO NOTHING",
		lite.Upsert("users", []string{"email", "name"}, 1, []string{"email"}, nil),
	)
}

func TestMergeUpsert(t *testing.T) {
	u := MergeUpsert{}

	got := u.Upsert("users", []string{"email", "name"}, 1, []string{"email"}, []string{"name"})
	assert.Equal(t,
		"MERGE INTO users AS target USING (VALUES (?, ?)) AS source (email, name) ON target.email = source.email"+
			" WHEN MATCHED THEN UPDATE SET target.name = source.name"+
			" WHEN NOT MATCHED THEN INSERT (email, name) VALUES (source.email, source.name);",
		got,
	)

	insertOnly := u.Upsert("users", []string{"email", "name"}, 2, []string{"email", "name"}, nil)
	assert.Equal(t,
		"MERGE INTO users AS target USING (VALUES (?, ?), (?, ?)) AS source (email, name)"+
			" ON target.email = source.email AND target.name = source.name"+
			" WHEN NOT MATCHED THEN INSERT (email, name) VALUES (source.email, source.name);",
		insertOnly,
	)
}

func TestUpserterFor(t *testing.T) {
	assert.Equal(t, MySQLUpsert{}, UpserterFor(MySQL))
	assert.Equal(t, ConflictUpsert{Excluded: "EXCLUDED"}, UpserterFor(Postgres))
	assert.Equal(t, ConflictUpsert{Excluded: "excluded"}, UpserterFor(SQLite))
	assert.Equal(t, MergeUpsert{}, UpserterFor(SQLServer))
	assert.Equal(t, MergeUpsert{}, UpserterFor(MSSQL))
	assert.Nil(t, UpserterFor("oracle"))
}

func TestResolveUpdateColumns(t *testing.T) {
	columns := []string{"email", "name", "role"}

	assert.Equal(t, []string{"name", "role"}, ResolveUpdateColumns(columns, []string{"email"}, nil))
	assert.Equal(t, []string{"role"}, ResolveUpdateColumns(columns, []string{"email"}, []string{"role"}))
	assert.Equal(t, []string{}, ResolveUpdateColumns(columns, []string{"email"}, []string{}))
	assert.Empty(t, ResolveUpdateColumns(columns, columns, nil))
}
