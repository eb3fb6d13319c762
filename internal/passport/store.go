package passport

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/roster-api/internal/database"
)

// New creates a new PassportStore.
func New(db *sql.DB) PassportStore {
	return &store{db: db}
}

const passportColumns = "id_passport, country, code_iso"

func (s *store) GetAll(ctx context.Context) ([]Passport, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+passportColumns+" FROM passport ORDER BY id_passport")
	if err != nil {
		return nil, database.Failure("list passports", err)
	}
	return scanPassports(rows, "list passports")
}

func (s *store) GetByID(ctx context.Context, id int) (*Passport, error) {
	var p Passport
	err := s.db.QueryRowContext(ctx, "SELECT "+passportColumns+" FROM passport WHERE id_passport = ?", id).
		Scan(&p.ID, &p.Country, &p.CodeISO)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, database.Failure("get passport", err)
	}
	return &p, nil
}

// SearchByCountry matches country names containing the given text, ignoring case.
func (s *store) SearchByCountry(ctx context.Context, country string) ([]Passport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+passportColumns+`
		FROM passport
		WHERE country_key LIKE ? ESCAPE '\'
		ORDER BY country`, database.ContainsPattern(country))
	if err != nil {
		return nil, database.Failure("search passports", err)
	}
	return scanPassports(rows, "search passports")
}

func (s *store) GetByPlayer(ctx context.Context, playerID int) ([]Passport, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ps.id_passport, ps.country, ps.code_iso
		FROM passport ps
		JOIN player_passport pp ON ps.id_passport = pp.passport_id
		WHERE pp.player_id = ?
		ORDER BY ps.country`, playerID)
	if err != nil {
		return nil, database.Failure("list player passports", err)
	}
	return scanPassports(rows, "list player passports")
}

func (s *store) ReplaceForPlayer(ctx context.Context, playerID int, passportIDs []int) error {
	return database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var one int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM player WHERE id_player = ?", playerID).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return database.ErrNotFound
		}
		if err != nil {
			return database.Failure("check player", err)
		}
		return ReplaceAssociations(ctx, tx, playerID, passportIDs, true)
	})
}

// ReplaceAssociations deletes every association of playerID and inserts one
// row per entry of passportIDs, repeated ids included. With validate set, ids
// missing from the passport table fail the call before anything is inserted.
// It must run inside the caller's transaction so a failure leaves the
// previous association set in place.
func ReplaceAssociations(ctx context.Context, exec database.Executor, playerID int, passportIDs []int, validate bool) error {
	if _, err := exec.ExecContext(ctx, "DELETE FROM player_passport WHERE player_id = ?", playerID); err != nil {
		return database.Failure("delete player passports", err)
	}
	if len(passportIDs) == 0 {
		log.Debug("Cleared player passports", "playerID", playerID)
		return nil
	}
	if validate {
		if err := ValidateIDs(ctx, exec, passportIDs); err != nil {
			return err
		}
	}
	return InsertAssociations(ctx, exec, playerID, passportIDs)
}

// InsertAssociations adds one player_passport row per id with a single statement.
func InsertAssociations(ctx context.Context, exec database.Executor, playerID int, passportIDs []int) error {
	if len(passportIDs) == 0 {
		return nil
	}
	args := make([]any, 0, 2*len(passportIDs))
	for _, id := range passportIDs {
		args = append(args, playerID, id)
	}
	query := "INSERT INTO player_passport (player_id, passport_id) VALUES " + database.Tuples(len(passportIDs), 2)
	if _, err := exec.ExecContext(ctx, query, args...); err != nil {
		return database.Failure("insert player passports", err)
	}
	log.Debug("Inserted player passports", "playerID", playerID, "count", len(passportIDs))
	return nil
}

// ValidateIDs fails with an *database.InvalidReferenceError naming every id
// that has no passport row, in request order and without repeats.
func ValidateIDs(ctx context.Context, exec database.Executor, passportIDs []int) error {
	if len(passportIDs) == 0 {
		return nil
	}
	query := fmt.Sprintf("SELECT id_passport FROM passport WHERE id_passport IN (%s)", database.Placeholders(len(passportIDs)))
	rows, err := exec.QueryContext(ctx, query, database.IntArgs(passportIDs)...)
	if err != nil {
		return database.Failure("validate passport ids", err)
	}
	defer rows.Close()

	existing := make(map[int]struct{}, len(passportIDs))
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return database.Failure("validate passport ids", err)
		}
		existing[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return database.Failure("validate passport ids", err)
	}

	var missing []int
	seen := make(map[int]struct{})
	for _, id := range passportIDs {
		if _, ok := existing[id]; ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, id)
	}
	if len(missing) > 0 {
		return &database.InvalidReferenceError{Entity: "passport", IDs: missing}
	}
	return nil
}

func scanPassports(rows *sql.Rows, op string) ([]Passport, error) {
	defer rows.Close()

	passports := make([]Passport, 0)
	for rows.Next() {
		var p Passport
		if err := rows.Scan(&p.ID, &p.Country, &p.CodeISO); err != nil {
			return nil, database.Failure(op, err)
		}
		passports = append(passports, p)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Failure(op, err)
	}
	return passports, nil
}
