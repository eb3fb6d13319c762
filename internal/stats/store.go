package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/roster-api/internal/database"
)

// New creates a new StatsStore.
func New(db *sql.DB) StatsStore {
	return &store{db: db}
}

var metricColumns = func() string {
	cols := make([]string, len(allMetrics))
	for i, m := range allMetrics {
		cols[i] = m.column()
	}
	return strings.Join(cols, ", ")
}()

var statsColumns = "id_stats, player_id, match_id, " + metricColumns

var averagesSelect = func() string {
	cols := make([]string, len(allMetrics))
	for i, m := range allMetrics {
		cols[i] = fmt.Sprintf("ROUND(AVG(%s), 1)", m.column())
	}
	return "SELECT " + strings.Join(cols, ", ") + " FROM player_stats WHERE player_id = ?"
}()

func (s *store) GetAll(ctx context.Context) ([]PlayerStats, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+statsColumns+" FROM player_stats ORDER BY id_stats")
	if err != nil {
		return nil, database.Failure("list stats", err)
	}
	return scanStats(rows, "list stats")
}

func (s *store) GetByID(ctx context.Context, id int) (*PlayerStats, error) {
	return getByID(ctx, s.db, id)
}

func (s *store) GetByPlayer(ctx context.Context, playerID int) ([]PlayerStats, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+statsColumns+" FROM player_stats WHERE player_id = ? ORDER BY id_stats", playerID)
	if err != nil {
		return nil, database.Failure("list player stats", err)
	}
	return scanStats(rows, "list player stats")
}

func (s *store) Create(ctx context.Context, playerID int, in Input) (*PlayerStats, error) {
	var created *PlayerStats
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := checkReferences(ctx, tx, playerID, in.MatchID); err != nil {
			return err
		}
		args := append([]any{playerID, in.MatchID}, valueArgs(&in.Values)...)
		res, err := tx.ExecContext(ctx, fmt.Sprintf(
			"INSERT INTO player_stats (player_id, match_id, %s) VALUES (%s)",
			metricColumns, database.Placeholders(len(args))), args...)
		if err != nil {
			return database.Failure("insert stats", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return database.Failure("insert stats", err)
		}
		created, err = getByID(ctx, tx, int(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Debug("Created stats", "statsID", created.ID, "playerID", playerID)
	return created, nil
}

// Update overwrites the match and every metric of the stat line; metrics
// left out of the input become NULL.
func (s *store) Update(ctx context.Context, id int, in Input) (*PlayerStats, error) {
	var updated *PlayerStats
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if in.MatchID != nil {
			if err := checkMatch(ctx, tx, *in.MatchID); err != nil {
				return err
			}
		}
		set := &database.Assignments{}
		set.Set("match_id", in.MatchID)
		for i, v := range valueArgs(&in.Values) {
			set.Set(allMetrics[i].column(), v)
		}
		res, err := tx.ExecContext(ctx, "UPDATE player_stats SET "+set.Clause()+" WHERE id_stats = ?", set.Args(id)...)
		if err != nil {
			return database.Failure("update stats", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return database.Failure("update stats", err)
		}
		if n == 0 {
			return database.ErrNotFound
		}
		updated, err = getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *store) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM player_stats WHERE id_stats = ?", id)
	if err != nil {
		return database.Failure("delete stats", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return database.Failure("delete stats", err)
	}
	if n == 0 {
		return database.ErrNotFound
	}
	return nil
}

func (s *store) AveragesByPlayer(ctx context.Context, playerID int) (*Averages, error) {
	var a Averages
	err := s.db.QueryRowContext(ctx, averagesSelect, playerID).Scan(
		&a.PlayerLoad, &a.DistanceCoveredKm, &a.PossessionCount, &a.Sprints,
		&a.SprintDistanceM, &a.MaxSpeedKmh, &a.LowIntensityPercent,
		&a.MediumIntensityPercent, &a.HighIntensityPercent, &a.Passes, &a.Shots,
		&a.AvgShotSpeedKmh, &a.MaxShotSpeedKmh,
	)
	if err != nil {
		return nil, database.Failure("average stats", err)
	}
	return &a, nil
}

func (s *store) TopByMetric(ctx context.Context, metricKey string) (*TopPerformer, error) {
	metric, err := ParseMetric(metricKey)
	if err != nil {
		return nil, err
	}
	col := metric.column()

	var top TopPerformer
	err = s.db.QueryRowContext(ctx, `
		SELECT p.id_player, p.first_name, p.last_name, ROUND(AVG(s.`+col+`), 1) AS average
		FROM player_stats s
		JOIN player p ON s.player_id = p.id_player
		GROUP BY p.id_player, p.first_name, p.last_name
		HAVING AVG(s.`+col+`) IS NOT NULL
		ORDER BY average DESC
		LIMIT 1`).Scan(&top.PlayerID, &top.FirstName, &top.LastName, &top.Average)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, database.Failure("top player by "+col, err)
	}
	log.Debug("Computed leaderboard", "metric", metric, "playerID", top.PlayerID, "average", top.Average)
	return &top, nil
}

func checkReferences(ctx context.Context, exec database.Executor, playerID int, matchID *int) error {
	var one int
	err := exec.QueryRowContext(ctx, "SELECT 1 FROM player WHERE id_player = ?", playerID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return &database.InvalidReferenceError{Entity: "player", IDs: []int{playerID}}
	}
	if err != nil {
		return database.Failure("check player", err)
	}
	if matchID == nil {
		return nil
	}
	return checkMatch(ctx, exec, *matchID)
}

func checkMatch(ctx context.Context, exec database.Executor, matchID int) error {
	var one int
	err := exec.QueryRowContext(ctx, "SELECT 1 FROM matches WHERE id_match = ?", matchID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return &database.InvalidReferenceError{Entity: "match", IDs: []int{matchID}}
	}
	if err != nil {
		return database.Failure("check match", err)
	}
	return nil
}

func getByID(ctx context.Context, exec database.Executor, id int) (*PlayerStats, error) {
	var ps PlayerStats
	err := exec.QueryRowContext(ctx, "SELECT "+statsColumns+" FROM player_stats WHERE id_stats = ?", id).
		Scan(statsDest(&ps)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, database.Failure("get stats", err)
	}
	return &ps, nil
}

// valueArgs and valuesDest follow the order of allMetrics.
func valueArgs(v *Values) []any {
	return []any{
		v.PlayerLoad, v.DistanceCoveredKm, v.PossessionCount, v.Sprints,
		v.SprintDistanceM, v.MaxSpeedKmh, v.LowIntensityPercent,
		v.MediumIntensityPercent, v.HighIntensityPercent, v.Passes, v.Shots,
		v.AvgShotSpeedKmh, v.MaxShotSpeedKmh,
	}
}

func valuesDest(v *Values) []any {
	return []any{
		&v.PlayerLoad, &v.DistanceCoveredKm, &v.PossessionCount, &v.Sprints,
		&v.SprintDistanceM, &v.MaxSpeedKmh, &v.LowIntensityPercent,
		&v.MediumIntensityPercent, &v.HighIntensityPercent, &v.Passes, &v.Shots,
		&v.AvgShotSpeedKmh, &v.MaxShotSpeedKmh,
	}
}

func statsDest(ps *PlayerStats) []any {
	return append([]any{&ps.ID, &ps.PlayerID, &ps.MatchID}, valuesDest(&ps.Values)...)
}

func scanStats(rows *sql.Rows, op string) ([]PlayerStats, error) {
	defer rows.Close()

	out := make([]PlayerStats, 0)
	for rows.Next() {
		var ps PlayerStats
		if err := rows.Scan(statsDest(&ps)...); err != nil {
			return nil, database.Failure(op, err)
		}
		out = append(out, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Failure(op, err)
	}
	return out, nil
}
