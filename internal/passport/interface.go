package passport

import "context"

// PassportStore reads passport reference data and manages which passports a
// player holds.
type PassportStore interface {
	GetAll(ctx context.Context) ([]Passport, error)
	GetByID(ctx context.Context, id int) (*Passport, error)
	SearchByCountry(ctx context.Context, country string) ([]Passport, error)
	// GetByPlayer lists the passports associated with a player, ordered by country.
	GetByPlayer(ctx context.Context, playerID int) ([]Passport, error)
	// ReplaceForPlayer swaps the player's whole association set in one
	// transaction. Unknown passport ids abort it with an *database.InvalidReferenceError
	// and a missing player with database.ErrNotFound.
	ReplaceForPlayer(ctx context.Context, playerID int, passportIDs []int) error
}
