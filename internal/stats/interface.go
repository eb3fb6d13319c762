package stats

import "context"

// StatsStore manages per-match stat lines and the aggregates computed over them.
type StatsStore interface {
	GetAll(ctx context.Context) ([]PlayerStats, error)
	GetByID(ctx context.Context, id int) (*PlayerStats, error)
	GetByPlayer(ctx context.Context, playerID int) ([]PlayerStats, error)
	Create(ctx context.Context, playerID int, in Input) (*PlayerStats, error)
	Update(ctx context.Context, id int, in Input) (*PlayerStats, error)
	Delete(ctx context.Context, id int) error
	// AveragesByPlayer never fails for a player without rows; it returns
	// Averages with every field nil.
	AveragesByPlayer(ctx context.Context, playerID int) (*Averages, error)
	// TopByMetric validates metricKey before touching the database. Ties
	// are broken by whatever order the database returns.
	TopByMetric(ctx context.Context, metricKey string) (*TopPerformer, error)
}
