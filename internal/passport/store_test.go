package passport_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/roster-api/internal/config"
	"github.com/mauv0809/roster-api/internal/database"
	"github.com/mauv0809/roster-api/internal/passport"
)

// setupTestDB creates a fresh in-memory SQLite database with France (1),
// Spain (2) and Brazil (3) seeded and a single player (id 1).
func setupTestDB(t *testing.T) (passport.PassportStore, *sql.DB, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(config.DBConfig{
		Name:          "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MigrationsDir: "../../migrations",
		MaxOpenConns:  1,
	})
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO passport (id_passport, country, code_iso, country_key) VALUES
		(1, 'France', 'FR', 'france'), (2, 'Spain', 'ES', 'spain'), (3, 'Brazil', 'BR', 'brazil'),
		(4, 'États-Unis', 'US', 'états-unis')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO player (id_player, last_name, first_name, birth_date) VALUES (1, 'Doe', 'Jane', '2000-05-01')`)
	require.NoError(t, err)

	return passport.New(db), db, teardown
}

func associatedIDs(t *testing.T, db *sql.DB, playerID int) []int {
	t.Helper()
	rows, err := db.Query("SELECT passport_id FROM player_passport WHERE player_id = ? ORDER BY rowid", playerID)
	require.NoError(t, err)
	defer rows.Close()
	ids := []int{}
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}

func TestGetAllAndGetByID(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	p, err := store.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, passport.Passport{ID: 2, Country: "Spain", CodeISO: "ES"}, *p)

	_, err = store.GetByID(ctx, 42)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestSearchByCountry(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	found, err := store.SearchByCountry(ctx, "AN")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "France", found[0].Country)

	found, err = store.SearchByCountry(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, found, "wildcards in the search text must be matched literally")
}

func TestSearchByCountry_NonASCII(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	for _, query := range []string{"États", "ÉTATS", "états", "unis", "ÉTATS-UNIS"} {
		found, err := store.SearchByCountry(ctx, query)
		require.NoError(t, err)
		require.Len(t, found, 1, query)
		assert.Equal(t, "US", found[0].CodeISO, query)
	}
}

func TestReplaceForPlayer(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	require.NoError(t, store.ReplaceForPlayer(ctx, 1, []int{1, 2}))
	assert.Equal(t, []int{1, 2}, associatedIDs(t, db, 1))

	passports, err := store.GetByPlayer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, passports, 2)
	assert.Equal(t, "France", passports[0].Country)
	assert.Equal(t, "Spain", passports[1].Country)

	t.Run("replaces the whole set", func(t *testing.T) {
		require.NoError(t, store.ReplaceForPlayer(ctx, 1, []int{3}))
		assert.Equal(t, []int{3}, associatedIDs(t, db, 1))
	})

	t.Run("empty list clears", func(t *testing.T) {
		require.NoError(t, store.ReplaceForPlayer(ctx, 1, []int{}))
		assert.Empty(t, associatedIDs(t, db, 1))
	})

	t.Run("duplicates are kept", func(t *testing.T) {
		require.NoError(t, store.ReplaceForPlayer(ctx, 1, []int{2, 2}))
		assert.Equal(t, []int{2, 2}, associatedIDs(t, db, 1))
	})
}

func TestReplaceForPlayer_UnknownPlayer(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	err := store.ReplaceForPlayer(ctx, 999, []int{1, 2})
	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.NotErrorIs(t, err, database.ErrStoreFailure)
	assert.Empty(t, associatedIDs(t, db, 999))

	_, err = db.Exec("DELETE FROM player WHERE id_player = 1")
	require.NoError(t, err)
	assert.ErrorIs(t, store.ReplaceForPlayer(ctx, 1, []int{1}), database.ErrNotFound,
		"a player removed before the replacement is reported as missing")
}

func TestReplaceForPlayer_InvalidIDsLeaveSetUnchanged(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	require.NoError(t, store.ReplaceForPlayer(ctx, 1, []int{1}))

	err := store.ReplaceForPlayer(ctx, 1, []int{2, 98, 99, 98})
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrInvalidReference)

	var refErr *database.InvalidReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, []int{98, 99}, refErr.IDs)
	assert.Equal(t, "invalid passport ID(s): 98, 99", refErr.Error())

	assert.Equal(t, []int{1}, associatedIDs(t, db, 1), "failed replacement must not touch existing associations")
}

func TestReplaceAssociations_WithoutValidation(t *testing.T) {
	_, db, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	err := database.WithTx(ctx, db, func(tx *sql.Tx) error {
		return passport.ReplaceAssociations(ctx, tx, 1, []int{1, 77}, false)
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrStoreFailure, "the foreign key rejects the unknown passport")
	assert.NotErrorIs(t, err, database.ErrInvalidReference)
	assert.Empty(t, associatedIDs(t, db, 1))
}
