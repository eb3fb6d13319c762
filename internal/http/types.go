package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mauv0809/roster-api/internal/auth"
	"github.com/mauv0809/roster-api/internal/config"
	"github.com/mauv0809/roster-api/internal/http/handlers"
	"github.com/mauv0809/roster-api/internal/match"
	"github.com/mauv0809/roster-api/internal/metrics"
	"github.com/mauv0809/roster-api/internal/passport"
	"github.com/mauv0809/roster-api/internal/player"
	"github.com/mauv0809/roster-api/internal/stats"
)

// Stores groups the data access the routes need.
type Stores struct {
	DB        handlers.Pinger
	Players   player.PlayerStore
	Passports passport.PassportStore
	Stats     stats.StatsStore
	Matches   match.MatchStore
}

type Server struct {
	Stores         Stores
	Auth           *auth.Service
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Events         *handlers.EventPublisher
	Cfg            config.Config
	Router         chi.Router
}
