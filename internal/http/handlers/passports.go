package handlers

import (
	"net/http"

	"github.com/mauv0809/roster-api/internal/passport"
)

func ListPassportsHandler(store passport.PassportStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		passports, err := store.GetAll(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		WriteJSON(w, http.StatusOK, passports)
	}
}

func GetPassportHandler(store passport.PassportStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		p, err := store.GetByID(r.Context(), id)
		if err != nil {
			writeStoreError(w, r, err, "Passport not found")
			return
		}
		WriteJSON(w, http.StatusOK, p)
	}
}

func SearchPassportsHandler(store passport.PassportStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country, ok := pathText(r, "country")
		if !ok {
			WriteError(w, http.StatusBadRequest, "Please provide a country")
			return
		}
		passports, err := store.SearchByCountry(r.Context(), country)
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		if len(passports) == 0 {
			WriteError(w, http.StatusNotFound, "No passports found for this country")
			return
		}
		WriteJSON(w, http.StatusOK, passports)
	}
}

func PlayerPassportsHandler(store passport.PassportStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := pathID(r, "playerId")
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		passports, err := store.GetByPlayer(r.Context(), playerID)
		if err != nil {
			writeStoreError(w, r, err, "")
			return
		}
		WriteJSON(w, http.StatusOK, passports)
	}
}
