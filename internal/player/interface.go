package player

import "context"

// PlayerStore reads aggregated player views and writes players together with
// their passport associations.
type PlayerStore interface {
	// ListAll returns every player exactly once, ordered by name, with the
	// passports it holds.
	ListAll(ctx context.Context) ([]PlayerWithPassports, error)
	// GetByID returns the scalar row only, without passports.
	GetByID(ctx context.Context, id int) (*Player, error)
	SearchByAge(ctx context.Context, age int) ([]AgedPlayer, error)
	SearchByPosition(ctx context.Context, position string) ([]PlayerWithPassports, error)
	// SearchByPassportCountry only returns players holding a matching
	// passport, and only the matching passports are listed.
	SearchByPassportCountry(ctx context.Context, country string) ([]PlayerWithPassports, error)
	Create(ctx context.Context, in CreateInput) (*Player, error)
	Update(ctx context.Context, id int, in UpdateInput) (*Player, error)
	Delete(ctx context.Context, id int) error
}
