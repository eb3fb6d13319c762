package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenWithForeignKeys_EveryConnection(t *testing.T) {
	// No _foreign_keys flag in the DSN: the connector alone must enable them.
	db, err := openWithForeignKeys("sqlite3", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		conn, err := db.Conn(ctx)
		require.NoError(t, err)
		defer conn.Close()

		var enabled int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled))
		assert.Equal(t, 1, enabled, "connection %d", i)
	}
	assert.Equal(t, 3, db.Stats().OpenConnections)
}

func TestOpenWithForeignKeys_CascadesOnAnyConnection(t *testing.T) {
	db, err := openWithForeignKeys("sqlite3", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(2)
	ctx := context.Background()
	require.NoError(t, migrate(db, "../../migrations"))

	_, err = db.ExecContext(ctx, "INSERT INTO player (id_player, last_name, first_name, birth_date) VALUES (1, 'Doe', 'Jane', '2000-05-01')")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "INSERT INTO player_stats (player_id, sprints) VALUES (1, 10)")
	require.NoError(t, err)

	// Pin one connection so the delete runs on a second one.
	pinned, err := db.Conn(ctx)
	require.NoError(t, err)
	defer pinned.Close()
	_, err = db.ExecContext(ctx, "DELETE FROM player WHERE id_player = 1")
	require.NoError(t, err)

	var count int
	require.NoError(t, pinned.QueryRowContext(ctx, "SELECT COUNT(*) FROM player_stats").Scan(&count))
	assert.Equal(t, 0, count)
}
