package match

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mauv0809/roster-api/internal/database"
)

// New creates a new MatchStore.
func New(db *sql.DB) MatchStore {
	return &store{db: db}
}

const matchColumns = "m.id_match, m.match_date, m.opponent, m.our_score, m.opponent_score"

func (s *store) GetAll(ctx context.Context) ([]Match, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+matchColumns+" FROM matches m ORDER BY m.match_date, m.id_match")
	if err != nil {
		return nil, database.Failure("list matches", err)
	}
	return scanMatches(rows, "list matches")
}

func (s *store) GetByID(ctx context.Context, id int) (*Match, error) {
	return getOne(s.db.QueryRowContext(ctx, "SELECT "+matchColumns+" FROM matches m WHERE m.id_match = ?", id), "get match")
}

func (s *store) GetByPlayer(ctx context.Context, playerID int) ([]Match, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT `+matchColumns+`
		FROM matches m
		JOIN player_stats ps ON m.id_match = ps.match_id
		WHERE ps.player_id = ?
		ORDER BY m.match_date, m.id_match`, playerID)
	if err != nil {
		return nil, database.Failure("list player matches", err)
	}
	return scanMatches(rows, "list player matches")
}

func (s *store) GetLast(ctx context.Context) (*Match, error) {
	return getOne(s.db.QueryRowContext(ctx,
		"SELECT "+matchColumns+" FROM matches m ORDER BY m.match_date DESC, m.id_match DESC LIMIT 1"), "get last match")
}

func (s *store) Create(ctx context.Context, in Input) (*Match, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO matches (match_date, opponent, our_score, opponent_score)
		VALUES (?, ?, ?, ?)
		RETURNING id_match, match_date, opponent, our_score, opponent_score`,
		in.MatchDate, in.Opponent, in.OurScore, in.OpponentScore)
	return getOne(row, "insert match")
}

func (s *store) Update(ctx context.Context, id int, in Input) (*Match, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE matches SET match_date = ?, opponent = ?, our_score = ?, opponent_score = ?
		WHERE id_match = ?
		RETURNING id_match, match_date, opponent, our_score, opponent_score`,
		in.MatchDate, in.Opponent, in.OurScore, in.OpponentScore, id)
	return getOne(row, "update match")
}

// Delete removes the match and, through ON DELETE CASCADE, the stat lines
// recorded for it.
func (s *store) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM matches WHERE id_match = ?", id)
	if err != nil {
		return database.Failure("delete match", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return database.Failure("delete match", err)
	}
	if n == 0 {
		return database.ErrNotFound
	}
	return nil
}

func getOne(row *sql.Row, op string) (*Match, error) {
	var m Match
	err := row.Scan(&m.ID, &m.MatchDate, &m.Opponent, &m.OurScore, &m.OpponentScore)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, database.Failure(op, err)
	}
	return &m, nil
}

func scanMatches(rows *sql.Rows, op string) ([]Match, error) {
	defer rows.Close()

	matches := make([]Match, 0)
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.ID, &m.MatchDate, &m.Opponent, &m.OurScore, &m.OpponentScore); err != nil {
			return nil, database.Failure(op, err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Failure(op, err)
	}
	return matches, nil
}
