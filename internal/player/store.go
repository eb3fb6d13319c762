package player

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/roster-api/internal/clock"
	"github.com/mauv0809/roster-api/internal/database"
	"github.com/mauv0809/roster-api/internal/passport"
)

// New creates a new PlayerStore. Passport ids are validated by default.
func New(db *sql.DB, opts ...Option) PlayerStore {
	s := &store{db: db, clock: clock.New(), validatePassports: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Updatable columns. UPDATE statements are only ever built from these.
const (
	colGender      = "gender"
	colLastName    = "last_name"
	colFirstName   = "first_name"
	colBirthDate   = "birth_date"
	colHeightCm    = "height_cm"
	colWeightKg    = "weight_kg"
	colPosition    = "position"
	colPositionKey = "position_key"
	colPhotoURL    = "photo_url"
	colYoutubeURL  = "youtube_url"
)

const playerColumns = `p.id_player, p.gender, p.last_name, p.first_name, p.birth_date,
	p.height_cm, p.weight_kg, p.position, p.photo_url, p.youtube_url`

const returningColumns = `id_player, gender, last_name, first_name, birth_date,
	height_cm, weight_kg, position, photo_url, youtube_url`

// Players without associations get an empty array from the FILTER clause.
const aggregatedPlayers = `
	SELECT ` + playerColumns + `,
		COALESCE(json_group_array(json_object(
			'id_passport', ps.id_passport,
			'country', ps.country,
			'code_iso', ps.code_iso
		)) FILTER (WHERE ps.id_passport IS NOT NULL), '[]') AS passports
	FROM player p
	LEFT JOIN player_passport pp ON p.id_player = pp.player_id
	LEFT JOIN passport ps ON pp.passport_id = ps.id_passport`

const groupAndOrder = `
	GROUP BY p.id_player
	ORDER BY p.last_name, p.first_name, p.id_player`

func (s *store) ListAll(ctx context.Context) ([]PlayerWithPassports, error) {
	rows, err := s.db.QueryContext(ctx, aggregatedPlayers+groupAndOrder)
	if err != nil {
		return nil, database.Failure("list players", err)
	}
	return scanAggregated(rows, "list players")
}

func (s *store) GetByID(ctx context.Context, id int) (*Player, error) {
	return getByID(ctx, s.db, id)
}

// SearchByAge returns players whose age today is exactly age, i.e. born in
// [today - (age+1) years + 1 day, today - age years].
func (s *store) SearchByAge(ctx context.Context, age int) ([]AgedPlayer, error) {
	today := database.DateOf(s.clock.Now())
	from, to := ageWindow(today, age)

	rows, err := s.db.QueryContext(ctx, aggregatedPlayers+`
	WHERE p.birth_date BETWEEN ? AND ?`+groupAndOrder, from, to)
	if err != nil {
		return nil, database.Failure("search players by age", err)
	}
	players, err := scanAggregated(rows, "search players by age")
	if err != nil {
		return nil, err
	}

	aged := make([]AgedPlayer, len(players))
	for i, p := range players {
		aged[i] = AgedPlayer{PlayerWithPassports: p, CalculatedAge: ageOn(p.BirthDate, today)}
	}
	log.Debug("Searched players by age", "age", age, "from", from, "to", to, "count", len(aged))
	return aged, nil
}

func (s *store) SearchByPosition(ctx context.Context, position string) ([]PlayerWithPassports, error) {
	rows, err := s.db.QueryContext(ctx, aggregatedPlayers+`
	WHERE p.position_key LIKE ? ESCAPE '\'`+groupAndOrder, database.ContainsPattern(position))
	if err != nil {
		return nil, database.Failure("search players by position", err)
	}
	return scanAggregated(rows, "search players by position")
}

func (s *store) SearchByPassportCountry(ctx context.Context, country string) ([]PlayerWithPassports, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT `+playerColumns+`,
		json_group_array(json_object(
			'id_passport', ps.id_passport,
			'country', ps.country,
			'code_iso', ps.code_iso
		)) AS passports
	FROM player p
	JOIN player_passport pp ON p.id_player = pp.player_id
	JOIN passport ps ON pp.passport_id = ps.id_passport
	WHERE ps.country_key LIKE ? ESCAPE '\'`+groupAndOrder, database.ContainsPattern(country))
	if err != nil {
		return nil, database.Failure("search players by passport", err)
	}
	return scanAggregated(rows, "search players by passport")
}

func (s *store) Create(ctx context.Context, in CreateInput) (*Player, error) {
	var created Player
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, `
			INSERT INTO player (gender, last_name, first_name, birth_date, height_cm,
				weight_kg, position, position_key, photo_url, youtube_url)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING `+returningColumns,
			in.Gender, in.LastName, in.FirstName, in.BirthDate, in.HeightCm,
			in.WeightKg, in.Position, positionKey(in.Position), in.PhotoURL, in.YoutubeURL)
		if err := row.Scan(playerDest(&created)...); err != nil {
			return database.Failure("insert player", err)
		}

		if len(in.PassportIDs) == 0 {
			return nil
		}
		if s.validatePassports {
			if err := passport.ValidateIDs(ctx, tx, in.PassportIDs); err != nil {
				return err
			}
		}
		return passport.InsertAssociations(ctx, tx, created.ID, in.PassportIDs)
	})
	if err != nil {
		return nil, err
	}
	log.Debug("Created player", "playerID", created.ID, "passports", len(in.PassportIDs))
	return &created, nil
}

func (s *store) Update(ctx context.Context, id int, in UpdateInput) (*Player, error) {
	var updated *Player
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		set := assignments(in)
		if set.Len() > 0 {
			res, err := tx.ExecContext(ctx, "UPDATE player SET "+set.Clause()+" WHERE id_player = ?", set.Args(id)...)
			if err != nil {
				return database.Failure("update player", err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return database.Failure("update player", err)
			}
			if n == 0 {
				return database.ErrNotFound
			}
		} else if err := exists(ctx, tx, id); err != nil {
			return err
		}

		if in.PassportIDs != nil {
			if err := passport.ReplaceAssociations(ctx, tx, id, *in.PassportIDs, s.validatePassports); err != nil {
				return err
			}
		}

		var err error
		updated, err = getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the player. Its passport associations and stat rows go with
// it through ON DELETE CASCADE.
func (s *store) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM player WHERE id_player = ?", id)
	if err != nil {
		return database.Failure("delete player", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return database.Failure("delete player", err)
	}
	if n == 0 {
		return database.ErrNotFound
	}
	log.Debug("Deleted player", "playerID", id)
	return nil
}

func assignments(in UpdateInput) *database.Assignments {
	set := &database.Assignments{}
	if in.Gender != nil {
		set.Set(colGender, *in.Gender)
	}
	if in.LastName != nil {
		set.Set(colLastName, *in.LastName)
	}
	if in.FirstName != nil {
		set.Set(colFirstName, *in.FirstName)
	}
	if in.BirthDate != nil {
		set.Set(colBirthDate, *in.BirthDate)
	}
	if in.HeightCm != nil {
		set.Set(colHeightCm, *in.HeightCm)
	}
	if in.WeightKg != nil {
		set.Set(colWeightKg, *in.WeightKg)
	}
	if in.Position != nil {
		set.Set(colPosition, *in.Position)
		set.Set(colPositionKey, positionKey(in.Position))
	}
	if in.PhotoURL != nil {
		set.Set(colPhotoURL, *in.PhotoURL)
	}
	if in.YoutubeURL != nil {
		set.Set(colYoutubeURL, *in.YoutubeURL)
	}
	return set
}

func positionKey(position *string) *string {
	if position == nil {
		return nil
	}
	key := database.SearchKey(*position)
	return &key
}

func exists(ctx context.Context, exec database.Executor, id int) error {
	var one int
	err := exec.QueryRowContext(ctx, "SELECT 1 FROM player WHERE id_player = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return database.ErrNotFound
	}
	if err != nil {
		return database.Failure("check player", err)
	}
	return nil
}

func getByID(ctx context.Context, exec database.Executor, id int) (*Player, error) {
	var p Player
	err := exec.QueryRowContext(ctx, "SELECT "+playerColumns+" FROM player p WHERE p.id_player = ?", id).
		Scan(playerDest(&p)...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, database.Failure("get player", err)
	}
	return &p, nil
}

func playerDest(p *Player) []any {
	return []any{
		&p.ID, &p.Gender, &p.LastName, &p.FirstName, &p.BirthDate,
		&p.HeightCm, &p.WeightKg, &p.Position, &p.PhotoURL, &p.YoutubeURL,
	}
}

func scanAggregated(rows *sql.Rows, op string) ([]PlayerWithPassports, error) {
	defer rows.Close()

	players := make([]PlayerWithPassports, 0)
	for rows.Next() {
		var (
			p   PlayerWithPassports
			raw string
		)
		if err := rows.Scan(append(playerDest(&p.Player), &raw)...); err != nil {
			return nil, database.Failure(op, err)
		}
		if err := json.Unmarshal([]byte(raw), &p.Passports); err != nil {
			return nil, database.Failure(op, err)
		}
		if p.Passports == nil {
			p.Passports = []passport.Passport{}
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, database.Failure(op, err)
	}
	return players, nil
}
