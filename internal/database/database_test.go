package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/roster-api/internal/config"
)

func testConfig() config.DBConfig {
	return config.DBConfig{
		Name:          "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MigrationsDir: "../../migrations",
		MaxOpenConns:  1,
	}
}

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(testConfig())
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"player", "passport", "player_passport", "matches", "player_stats"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "Querying for %s table should not produce an error", table)
		assert.Equal(t, table, name)
	}
}

func TestInitDB_EnforcesForeignKeys(t *testing.T) {
	db, teardown, err := InitDB(testConfig())
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec("INSERT INTO player_passport (player_id, passport_id) VALUES (999, 999)")
	assert.Error(t, err, "dangling association rows should be rejected")
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db, teardown, err := InitDB(testConfig())
	require.NoError(t, err)
	defer teardown()
	ctx := context.Background()

	boom := errors.New("boom")
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO passport (country, code_iso, country_key) VALUES ('France', 'FR', 'france')")
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM passport").Scan(&count))
	assert.Equal(t, 0, count)
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db, teardown, err := InitDB(testConfig())
	require.NoError(t, err)
	defer teardown()
	ctx := context.Background()

	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO passport (country, code_iso, country_key) VALUES ('France', 'FR', 'france')")
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM passport").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestWithTx_RollsBackOnPanic(t *testing.T) {
	db, teardown, err := InitDB(testConfig())
	require.NoError(t, err)
	defer teardown()
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = WithTx(ctx, db, func(tx *sql.Tx) error {
			_, _ = tx.ExecContext(ctx, "INSERT INTO passport (country, code_iso, country_key) VALUES ('France', 'FR', 'france')")
			panic("boom")
		})
	})

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM passport").Scan(&count))
	assert.Equal(t, 0, count, "the single pooled connection must be usable again")
}

func TestFailure(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := Failure("list players", cause)
	assert.ErrorIs(t, err, ErrStoreFailure)
	assert.ErrorIs(t, err, cause)

	assert.Same(t, ErrNotFound, Failure("op", ErrNotFound))
	ref := &InvalidReferenceError{Entity: "passport", IDs: []int{4, 9}}
	assert.Equal(t, error(ref), Failure("op", ref))
	assert.EqualError(t, ref, "invalid passport ID(s): 4, 9")
	assert.ErrorIs(t, ref, ErrInvalidReference)
	assert.Nil(t, Failure("op", nil))
}

func TestQueryBuilders(t *testing.T) {
	assert.Equal(t, "?, ?, ?", Placeholders(3))
	assert.Equal(t, "", Placeholders(0))
	assert.Equal(t, "(?, ?), (?, ?)", Tuples(2, 2))
	assert.Equal(t, []any{1, 2}, IntArgs([]int{1, 2}))

	var a Assignments
	a.Set("position", "Midfielder")
	a.Set("height_cm", 180.5)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, "position = ?, height_cm = ?", a.Clause())
	assert.Equal(t, []any{"Midfielder", 180.5, 7}, a.Args(7))

	assert.Equal(t, `%50\%\_off%`, ContainsPattern("50%_OFF"))
	assert.Equal(t, `%états-unis%`, ContainsPattern("ÉTATS-Unis"))
	assert.Equal(t, SearchKey("Côte d'Ivoire"), SearchKey("CÔTE D'IVOIRE"))
}

func TestDate(t *testing.T) {
	leap := NewDate(2024, time.February, 29)
	assert.Equal(t, NewDate(1999, time.February, 28), leap.YearsBefore(25))
	assert.Equal(t, NewDate(2000, time.February, 29), leap.YearsBefore(24))
	assert.Equal(t, NewDate(2024, time.March, 1), leap.AddDays(1))

	var d Date
	require.NoError(t, d.Scan("1999-07-14"))
	assert.Equal(t, "1999-07-14", d.String())
	require.NoError(t, d.Scan(time.Date(2001, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2001-01-02", d.String())
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	require.NoError(t, d.UnmarshalJSON([]byte(`"2000-05-06"`)))
	out, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"2000-05-06"`, string(out))
	assert.Error(t, d.UnmarshalJSON([]byte(`"06/05/2000"`)))

	v, err := NewDate(2000, time.May, 6).Value()
	require.NoError(t, err)
	assert.Equal(t, "2000-05-06", v)
}
