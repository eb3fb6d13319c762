package match

import "context"

type MatchStore interface {
	GetAll(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, id int) (*Match, error)
	// GetByPlayer lists the matches a player has stat lines for, oldest first.
	GetByPlayer(ctx context.Context, playerID int) ([]Match, error)
	GetLast(ctx context.Context) (*Match, error)
	Create(ctx context.Context, in Input) (*Match, error)
	Update(ctx context.Context, id int, in Input) (*Match, error)
	Delete(ctx context.Context, id int) error
}
