package handlers

import (
	"net/http"

	"github.com/mauv0809/roster-api/internal/stats"
)

func ListStatsHandler(store stats.StatsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := store.GetAll(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		WriteJSON(w, http.StatusOK, all)
	}
}

func GetStatsHandler(store stats.StatsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		s, err := store.GetByID(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "No stats found with the specified ID")
			return
		}
		WriteJSON(w, http.StatusOK, s)
	}
}

// PlayerStatsHandler lists a player's stat lines. With notFoundOnEmpty an
// empty list is answered with 404, as the search route does.
func PlayerStatsHandler(store stats.StatsStore, param string, notFoundOnEmpty bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := pathID(r, param)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		lines, err := store.GetByPlayer(r.Context(), playerID)
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		if notFoundOnEmpty && len(lines) == 0 {
			WriteError(w, http.StatusNotFound, "No stats found for the specified player")
			return
		}
		WriteJSON(w, http.StatusOK, lines)
	}
}

func PlayerAveragesHandler(store stats.StatsStore, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := pathID(r, param)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		avg, err := store.AveragesByPlayer(r.Context(), playerID)
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		WriteJSON(w, http.StatusOK, avg)
	}
}

func CreateStatsHandler(store stats.StatsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		var in stats.Input
		if err := readJSON(w, r, &in); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		created, err := store.Create(r.Context(), playerID, in)
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		WriteJSON(w, http.StatusCreated, created)
	}
}

// UpdateStatsHandler replaces a stat line. The line must belong to the
// player named in the path.
func UpdateStatsHandler(store stats.StatsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		statsID, err := pathID(r, "statsId")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		var in stats.Input
		if err := readJSON(w, r, &in); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		current, err := store.GetByID(r.Context(), statsID)
		if err == nil && current.PlayerID != playerID {
			WriteError(w, http.StatusNotFound, "Stats not found")
			return
		}
		if err != nil {
			writeStoreError(w, r, err, "Stats not found")
			return
		}
		updated, err := store.Update(r.Context(), statsID, in)
		if err != nil {
			writeStoreError(w, r, err, "Stats not found")
			return
		}
		WriteJSON(w, http.StatusOK, updated)
	}
}

func DeleteStatsHandler(store stats.StatsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			writeStoreError(w, r, err, "Stats not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
