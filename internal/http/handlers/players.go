package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/mauv0809/roster-api/internal/database"
	"github.com/mauv0809/roster-api/internal/metrics"
	"github.com/mauv0809/roster-api/internal/passport"
	"github.com/mauv0809/roster-api/internal/player"
	"github.com/mauv0809/roster-api/internal/pubsub"
	"github.com/mauv0809/roster-api/internal/stats"
)

func ListPlayersHandler(store player.PlayerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := store.ListAll(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		WriteJSON(w, http.StatusOK, players)
	}
}

func GetPlayerHandler(store player.PlayerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		p, err := store.GetByID(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "Player not found")
			return
		}
		WriteJSON(w, http.StatusOK, p)
	}
}

type playerProfile struct {
	*player.Player
	Passports []passport.Passport `json:"passports"`
	Averages  *stats.Averages     `json:"averages"`
}

// PlayerProfileHandler assembles the player row, its passports and its stat
// averages with concurrent reads.
func PlayerProfileHandler(players player.PlayerStore, passports passport.PassportStore, statsStore stats.StatsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		var profile playerProfile
		g, ctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			p, err := players.GetByID(ctx, id)
			profile.Player = p
			return err
		})
		g.Go(func() error {
			ps, err := passports.GetByPlayer(ctx, id)
			profile.Passports = ps
			return err
		})
		g.Go(func() error {
			avg, err := statsStore.AveragesByPlayer(ctx, id)
			profile.Averages = avg
			return err
		})
		if err := g.Wait(); err != nil {
			writeStoreError(w, r, err, "Player not found")
			return
		}
		WriteJSON(w, http.StatusOK, profile)
	}
}

func SearchPlayersByAgeHandler(store player.PlayerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		age, err := strconv.Atoi(r.URL.Query().Get("age"))
		if err != nil || age < 0 {
			WriteError(w, http.StatusBadRequest, "Please provide a valid non-negative integer for age")
			return
		}
		players, err := store.SearchByAge(r.Context(), age)
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		if len(players) == 0 {
			WriteError(w, http.StatusNotFound, "No players found with the specified age")
			return
		}
		WriteJSON(w, http.StatusOK, players)
	}
}

func SearchPlayersByPositionHandler(store player.PlayerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		position, ok := pathText(r, "position")
		if !ok {
			WriteError(w, http.StatusBadRequest, "Please provide a valid position")
			return
		}
		players, err := store.SearchByPosition(r.Context(), position)
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		if len(players) == 0 {
			WriteError(w, http.StatusNotFound, "No players found with the specified position")
			return
		}
		WriteJSON(w, http.StatusOK, players)
	}
}

func SearchPlayersByPassportHandler(store player.PlayerStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country, ok := pathText(r, "country")
		if !ok {
			WriteError(w, http.StatusBadRequest, "Please provide a passport country")
			return
		}
		players, err := store.SearchByPassportCountry(r.Context(), country)
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		if len(players) == 0 {
			WriteError(w, http.StatusNotFound, "No players found for this passport country")
			return
		}
		WriteJSON(w, http.StatusOK, players)
	}
}

// HighlightHandler returns the top performer for a whitelisted stat key.
func HighlightHandler(store stats.StatsStore, m metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, _ := pathText(r, "statKey")
		top, err := store.TopByMetric(r.Context(), key)
		if err != nil {
			writeStoreError(w, r, err, "No data")
			return
		}
		m.IncLeaderboardLookup(key)
		WriteJSON(w, http.StatusOK, top)
	}
}

func CreatePlayerHandler(store player.PlayerStore, events *EventPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in player.CreateInput
		if err := readJSON(w, r, &in); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := in.Validate(); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		created, err := store.Create(r.Context(), in)
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		log.Info("Created player", "playerID", created.ID)
		events.Publish(r.Context(), pubsub.EventPlayerCreated, created.ID, in.PassportIDs)
		WriteJSON(w, http.StatusCreated, created)
	}
}

func UpdatePlayerHandler(store player.PlayerStore, events *EventPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		var in player.UpdateInput
		if err := readJSON(w, r, &in); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := in.Validate(); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		updated, err := store.Update(r.Context(), id, in)
		if err != nil {
			writeStoreError(w, r, err, "Player not found")
			return
		}
		var passportIDs []int
		if in.PassportIDs != nil {
			passportIDs = *in.PassportIDs
		}
		events.Publish(r.Context(), pubsub.EventPlayerUpdated, id, passportIDs)
		WriteJSON(w, http.StatusOK, updated)
	}
}

type replacePassportsRequest struct {
	PassportIDs *[]int `json:"passportIds"`
}

// ReplacePassportsHandler swaps the player's association set and answers
// with the resulting passports.
func ReplacePassportsHandler(passports passport.PassportStore, m metrics.Metrics, events *EventPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		var req replacePassportsRequest
		if err := readJSON(w, r, &req); err != nil || req.PassportIDs == nil {
			WriteError(w, http.StatusBadRequest, "passportIds must be an array of integers")
			return
		}
		if err := passports.ReplaceForPlayer(r.Context(), id, *req.PassportIDs); err != nil {
			switch {
			case errors.Is(err, database.ErrInvalidReference):
				m.IncPassportReplacement(metrics.OutcomeInvalidReference)
			case errors.Is(err, database.ErrNotFound):
				m.IncPassportReplacement(metrics.OutcomeNotFound)
			default:
				m.IncPassportReplacement(metrics.OutcomeError)
			}
			writeStoreError(w, r, err, "Player not found")
			return
		}
		m.IncPassportReplacement(metrics.OutcomeOK)
		events.Publish(r.Context(), pubsub.EventPassportsReplaced, id, *req.PassportIDs)

		current, err := passports.GetByPlayer(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		WriteJSON(w, http.StatusOK, current)
	}
}

func DeletePlayerHandler(store player.PlayerStore, events *EventPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			writeStoreError(w, r, err, "Player not found")
			return
		}
		log.Info("Deleted player", "playerID", id)
		events.Publish(r.Context(), pubsub.EventPlayerDeleted, id, nil)
		w.WriteHeader(http.StatusNoContent)
	}
}
