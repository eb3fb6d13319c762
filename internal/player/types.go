package player

import (
	"database/sql"
	"errors"

	"github.com/mauv0809/roster-api/internal/clock"
	"github.com/mauv0809/roster-api/internal/database"
	"github.com/mauv0809/roster-api/internal/passport"
)

// Player is the scalar player row.
type Player struct {
	ID         int           `json:"id_player"`
	Gender     *string       `json:"gender"`
	LastName   string        `json:"last_name"`
	FirstName  string        `json:"first_name"`
	BirthDate  database.Date `json:"birth_date"`
	HeightCm   *float64      `json:"height_cm"`
	WeightKg   *float64      `json:"weight_kg"`
	Position   *string       `json:"position"`
	PhotoURL   *string       `json:"photo_url"`
	YoutubeURL *string       `json:"youtube_url,omitempty"`
}

// PlayerWithPassports is a player with its aggregated passport list. The
// list is never nil.
type PlayerWithPassports struct {
	Player
	Passports []passport.Passport `json:"passports"`
}

// AgedPlayer is returned by age searches.
type AgedPlayer struct {
	PlayerWithPassports
	CalculatedAge int `json:"calculated_age"`
}

// CreateInput holds the fields of a new player.
type CreateInput struct {
	Gender      *string       `json:"gender"`
	LastName    string        `json:"last_name"`
	FirstName   string        `json:"first_name"`
	BirthDate   database.Date `json:"birth_date"`
	HeightCm    *float64      `json:"height_cm"`
	WeightKg    *float64      `json:"weight_kg"`
	Position    *string       `json:"position"`
	PhotoURL    *string       `json:"photo_url"`
	YoutubeURL  *string       `json:"youtube_url"`
	PassportIDs []int         `json:"passportIds"`
}

func (in CreateInput) Validate() error {
	switch {
	case in.LastName == "":
		return errors.New("last_name is required")
	case in.FirstName == "":
		return errors.New("first_name is required")
	case in.BirthDate.IsZero():
		return errors.New("birth_date is required")
	}
	return nil
}

// UpdateInput is a partial update. Nil fields are left untouched. A non-nil
// PassportIDs, even an empty one, replaces the whole association set.
type UpdateInput struct {
	Gender      *string        `json:"gender"`
	LastName    *string        `json:"last_name"`
	FirstName   *string        `json:"first_name"`
	BirthDate   *database.Date `json:"birth_date"`
	HeightCm    *float64       `json:"height_cm"`
	WeightKg    *float64       `json:"weight_kg"`
	Position    *string        `json:"position"`
	PhotoURL    *string        `json:"photo_url"`
	YoutubeURL  *string        `json:"youtube_url"`
	PassportIDs *[]int         `json:"passportIds"`
}

func (in UpdateInput) Validate() error {
	switch {
	case in.LastName != nil && *in.LastName == "":
		return errors.New("last_name cannot be empty")
	case in.FirstName != nil && *in.FirstName == "":
		return errors.New("first_name cannot be empty")
	case in.BirthDate != nil && in.BirthDate.IsZero():
		return errors.New("birth_date cannot be empty")
	}
	return nil
}

// Option configures the player store.
type Option func(*store)

// WithClock sets the clock used to compute ages.
func WithClock(c clock.Clock) Option {
	return func(s *store) { s.clock = c }
}

// WithPassportValidation controls whether create and update check passport
// ids before inserting associations. When disabled, unknown ids are only
// caught by the foreign key and surface as store failures.
func WithPassportValidation(enabled bool) Option {
	return func(s *store) { s.validatePassports = enabled }
}

// store handles all database operations for players.
type store struct {
	db                *sql.DB
	clock             clock.Clock
	validatePassports bool
}
