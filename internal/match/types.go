package match

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/mauv0809/roster-api/internal/database"
)

// Match is a fixture played by the team.
type Match struct {
	ID            int           `json:"id_match"`
	MatchDate     database.Date `json:"match_date"`
	Opponent      string        `json:"opponent"`
	OurScore      int           `json:"our_score"`
	OpponentScore int           `json:"opponent_score"`
}

// Score renders the result as "our-opponent".
func (m Match) Score() string {
	return strconv.Itoa(m.OurScore) + "-" + strconv.Itoa(m.OpponentScore)
}

// MarshalJSON adds the derived score to the stored columns.
func (m Match) MarshalJSON() ([]byte, error) {
	type plain Match
	return json.Marshal(struct {
		plain
		Score string `json:"score"`
	}{plain(m), m.Score()})
}

// Input is the body of a match create or full update.
type Input struct {
	MatchDate     database.Date `json:"match_date"`
	Opponent      string        `json:"opponent"`
	OurScore      int           `json:"our_score"`
	OpponentScore int           `json:"opponent_score"`
}

func (in Input) Validate() error {
	switch {
	case in.MatchDate.IsZero():
		return errors.New("match_date is required")
	case in.Opponent == "":
		return errors.New("opponent is required")
	case in.OurScore < 0 || in.OpponentScore < 0:
		return errors.New("scores cannot be negative")
	}
	return nil
}

// store handles all database operations for matches.
type store struct {
	db *sql.DB
}
