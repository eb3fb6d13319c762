package handlers

import (
	"net/http"

	"github.com/mauv0809/roster-api/internal/match"
)

func ListMatchesHandler(store match.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matches, err := store.GetAll(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		WriteJSON(w, http.StatusOK, matches)
	}
}

func GetMatchHandler(store match.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		m, err := store.GetByID(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "Match not found")
			return
		}
		WriteJSON(w, http.StatusOK, m)
	}
}

func LastMatchHandler(store match.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := store.GetLast(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "No matches recorded")
			return
		}
		WriteJSON(w, http.StatusOK, m)
	}
}

func PlayerMatchesHandler(store match.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := pathID(r, "playerId")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		matches, err := store.GetByPlayer(r.Context(), playerID)
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		WriteJSON(w, http.StatusOK, matches)
	}
}

func CreateMatchHandler(store match.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in match.Input
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
		WriteJSON(w, http.StatusCreated, created)
	}
}

func UpdateMatchHandler(store match.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		var in match.Input
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
			writeStoreError(w, r, err, "Match not found")
			return
		}
		WriteJSON(w, http.StatusOK, updated)
	}
}

func DeleteMatchHandler(store match.MatchStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := store.Delete(r.Context(), id); err != nil {
			writeStoreError(w, r, err, "Match not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
