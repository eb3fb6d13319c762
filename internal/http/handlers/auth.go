package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/mauv0809/roster-api/internal/auth"
)

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func LoginHandler(svc *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := readJSON(w, r, &req); err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		token, err := svc.Login(req.Password)
		switch {
		case errors.Is(err, auth.ErrMissingPassword):
			WriteError(w, http.StatusBadRequest, "Password is required")
		case errors.Is(err, auth.ErrInvalidCredentials):
			log.Warn("Rejected admin login", "remoteAddr", r.RemoteAddr)
			WriteError(w, http.StatusUnauthorized, "Invalid credentials")
		case err != nil:
			log.Error("Login failed", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error")
		default:
			WriteJSON(w, http.StatusOK, loginResponse{Token: token})
		}
	}
}
