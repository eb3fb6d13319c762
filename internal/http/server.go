package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mauv0809/roster-api/internal/auth"
	"github.com/mauv0809/roster-api/internal/config"
	"github.com/mauv0809/roster-api/internal/http/handlers"
	"github.com/mauv0809/roster-api/internal/metrics"
	"github.com/mauv0809/roster-api/internal/pubsub"
)

func NewServer(stores Stores, authSvc *auth.Service, metricsSvc metrics.Metrics, metricsHandler http.Handler, pubsub pubsub.PubSubClient, cfg config.Config) *Server {
	server := &Server{
		Stores:         stores,
		Auth:           authSvc,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Events:         handlers.NewEventPublisher(pubsub, metricsSvc),
		Cfg:            cfg,
		Router:         chi.NewRouter(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	r := s.Router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(instrument(s.Metrics))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.Cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Write routes are wrapped with the admin gate using the Chain helper.
	admin := func(h http.HandlerFunc) http.Handler {
		return Chain(h, requireAdmin(s.Auth))
	}
	st := s.Stores

	r.Handle("/metrics", s.MetricsHandler)
	r.Get("/health", handlers.HealthCheckHandler(st.DB))
	r.Post("/login", handlers.LoginHandler(s.Auth))

	r.Route("/players", func(r chi.Router) {
		r.Get("/", handlers.ListPlayersHandler(st.Players))
		r.Get("/search-by-position/{position}", handlers.SearchPlayersByPositionHandler(st.Players))
		r.Get("/search-by-passport/{country}", handlers.SearchPlayersByPassportHandler(st.Players))
		r.Get("/search-by-age", handlers.SearchPlayersByAgeHandler(st.Players))
		r.Get("/highlight/{statKey}", handlers.HighlightHandler(st.Stats, s.Metrics))
		r.Method(http.MethodPost, "/", admin(handlers.CreatePlayerHandler(st.Players, s.Events)))

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handlers.GetPlayerHandler(st.Players))
			r.Get("/profile", handlers.PlayerProfileHandler(st.Players, st.Passports, st.Stats))
			r.Method(http.MethodPut, "/", admin(handlers.UpdatePlayerHandler(st.Players, s.Events)))
			r.Method(http.MethodDelete, "/", admin(handlers.DeletePlayerHandler(st.Players, s.Events)))
			r.Method(http.MethodPut, "/passports", admin(handlers.ReplacePassportsHandler(st.Passports, s.Metrics, s.Events)))

			r.Get("/stats", handlers.PlayerStatsHandler(st.Stats, "id", false))
			r.Get("/stats/average", handlers.PlayerAveragesHandler(st.Stats, "id"))
			r.Method(http.MethodPost, "/stats", admin(handlers.CreateStatsHandler(st.Stats)))
			r.Method(http.MethodPut, "/stats/{statsId}", admin(handlers.UpdateStatsHandler(st.Stats)))
		})
	})

	r.Route("/stats", func(r chi.Router) {
		r.Get("/", handlers.ListStatsHandler(st.Stats))
		r.Get("/search-by-player/{playerId}", handlers.PlayerStatsHandler(st.Stats, "playerId", true))
		r.Get("/search-by-player/average/{playerId}", handlers.PlayerAveragesHandler(st.Stats, "playerId"))
		r.Get("/{id}", handlers.GetStatsHandler(st.Stats))
		r.Method(http.MethodDelete, "/{id}", admin(handlers.DeleteStatsHandler(st.Stats)))
	})

	r.Route("/passports", func(r chi.Router) {
		r.Get("/", handlers.ListPassportsHandler(st.Passports))
		r.Get("/research/{country}", handlers.SearchPassportsHandler(st.Passports))
		r.Get("/player/{playerId}", handlers.PlayerPassportsHandler(st.Passports))
		r.Get("/{id}", handlers.GetPassportHandler(st.Passports))
	})

	r.Route("/matches", func(r chi.Router) {
		r.Get("/", handlers.ListMatchesHandler(st.Matches))
		r.Get("/last", handlers.LastMatchHandler(st.Matches))
		r.Get("/player/{playerId}", handlers.PlayerMatchesHandler(st.Matches))
		r.Get("/{id}", handlers.GetMatchHandler(st.Matches))
		r.Method(http.MethodPost, "/", admin(handlers.CreateMatchHandler(st.Matches)))
		r.Method(http.MethodPut, "/{id}", admin(handlers.UpdateMatchHandler(st.Matches)))
		r.Method(http.MethodDelete, "/{id}", admin(handlers.DeleteMatchHandler(st.Matches)))
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
