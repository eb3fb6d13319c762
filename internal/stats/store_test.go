package stats_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauv0809/roster-api/internal/config"
	"github.com/mauv0809/roster-api/internal/database"
	"github.com/mauv0809/roster-api/internal/stats"
)

// setupTestDB seeds players 1 (Jane Doe) and 2 (Rick Roe) and match 1.
func setupTestDB(t *testing.T) (stats.StatsStore, *sql.DB, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(config.DBConfig{
		Name:          "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		MigrationsDir: "../../migrations",
		MaxOpenConns:  1,
	})
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO player (id_player, last_name, first_name, birth_date) VALUES
		(1, 'Doe', 'Jane', '2000-05-01'), (2, 'Roe', 'Rick', '1998-02-11')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO matches (id_match, match_date, opponent, our_score, opponent_score) VALUES
		(1, '2025-03-01', 'Lyon', 2, 1)`)
	require.NoError(t, err)

	return stats.New(db), db, teardown
}

func ptr[T any](v T) *T { return &v }

func TestParseMetric(t *testing.T) {
	for _, m := range stats.Metrics() {
		parsed, err := stats.ParseMetric(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
	assert.Len(t, stats.Metrics(), 13)

	for _, key := range []string{"drop table", "", "PLAYER_LOAD", "player_load; DELETE FROM player", "id_stats"} {
		_, err := stats.ParseMetric(key)
		assert.ErrorIs(t, err, stats.ErrInvalidMetric, key)
	}
}

func TestTopByMetric_InvalidKeyIssuesNoQuery(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	// Any query against a closed pool fails, so a store failure here would
	// mean the key reached the database.
	require.NoError(t, db.Close())

	_, err := store.TopByMetric(context.Background(), "drop table")
	assert.ErrorIs(t, err, stats.ErrInvalidMetric)
	assert.NotErrorIs(t, err, database.ErrStoreFailure)
}

func TestTopByMetric(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	_, err := store.TopByMetric(ctx, string(stats.Sprints))
	assert.ErrorIs(t, err, database.ErrNotFound, "no stat rows means no leader")

	for _, in := range []struct {
		player  int
		sprints int
	}{{1, 10}, {1, 13}, {2, 9}, {2, 11}} {
		_, err := store.Create(ctx, in.player, stats.Input{Values: stats.Values{Sprints: ptr(in.sprints)}})
		require.NoError(t, err)
	}

	top, err := store.TopByMetric(ctx, "sprints")
	require.NoError(t, err)
	assert.Equal(t, stats.TopPerformer{PlayerID: 1, FirstName: "Jane", LastName: "Doe", Average: 11.5}, *top)

	_, err = store.TopByMetric(ctx, string(stats.Shots))
	assert.ErrorIs(t, err, database.ErrNotFound, "a metric nobody recorded has no leader")
}

func TestAveragesByPlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	t.Run("no rows yields all nil", func(t *testing.T) {
		avg, err := store.AveragesByPlayer(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, avg)
		assert.Equal(t, stats.Averages{}, *avg)
	})

	_, err := store.Create(ctx, 1, stats.Input{MatchID: ptr(1), Values: stats.Values{
		PlayerLoad: ptr(310.4), Passes: ptr(40), MaxSpeedKmh: ptr(31.2),
	}})
	require.NoError(t, err)
	_, err = store.Create(ctx, 1, stats.Input{Values: stats.Values{
		PlayerLoad: ptr(290.0), Passes: ptr(35),
	}})
	require.NoError(t, err)

	avg, err := store.AveragesByPlayer(ctx, 1)
	require.NoError(t, err)
	assert.InDelta(t, 300.2, *avg.PlayerLoad, 0.001)
	assert.InDelta(t, 37.5, *avg.Passes, 0.001)
	assert.InDelta(t, 31.2, *avg.MaxSpeedKmh, 0.001, "nulls are ignored by the average")
	assert.Nil(t, avg.Shots)
}

func TestStatsCRUD(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	created, err := store.Create(ctx, 1, stats.Input{MatchID: ptr(1), Values: stats.Values{
		DistanceCoveredKm: ptr(9.8), Shots: ptr(3),
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, created.PlayerID)
	assert.Equal(t, 1, *created.MatchID)
	assert.Equal(t, 9.8, *created.DistanceCoveredKm)
	assert.Equal(t, 3, *created.Shots)
	assert.Nil(t, created.Passes)

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := store.Update(ctx, created.ID, stats.Input{Values: stats.Values{Passes: ptr(51)}})
	require.NoError(t, err)
	assert.Nil(t, updated.MatchID)
	assert.Nil(t, updated.Shots, "full update clears omitted metrics")
	assert.Equal(t, 51, *updated.Passes)

	byPlayer, err := store.GetByPlayer(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byPlayer, 1)
	byPlayer, err = store.GetByPlayer(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, byPlayer)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, store.Delete(ctx, created.ID))
	_, err = store.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, created.ID), database.ErrNotFound)
	_, err = store.Update(ctx, created.ID, stats.Input{})
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestCreate_InvalidReferences(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	_, err := store.Create(ctx, 99, stats.Input{})
	var refErr *database.InvalidReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "player", refErr.Entity)
	assert.Equal(t, []int{99}, refErr.IDs)

	_, err = store.Create(ctx, 1, stats.Input{MatchID: ptr(42)})
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "match", refErr.Entity)
}
