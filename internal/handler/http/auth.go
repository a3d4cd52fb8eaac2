package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/internal/service"
	"github.com/drivenpass/drivenpass/internal/store"
	"github.com/drivenpass/drivenpass/internal/utils"
	"github.com/drivenpass/drivenpass/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		var missingErr *service.MissingFieldsError
		switch {
		case errors.As(err, &missingErr):
			log.Err(err).Msg("missing required fields")
			http.Error(w, missingErr.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrPasswordTooShort):
			log.Err(err).Msg("password is too short")
			http.Error(w, service.ErrPasswordTooShort.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, store.ErrEmailAlreadyExists.Error(), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if _, err := utils.WriteJSON(w, models.Message{Message: "User created successfully"}, http.StatusCreated); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		var missingErr *service.MissingFieldsError
		switch {
		case errors.As(err, &missingErr):
			log.Err(err).Msg("missing required fields")
			http.Error(w, missingErr.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid email or password")
			http.Error(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", token.UserID).Msg("user successfully logged in")

	if _, err := utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString}, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AuthService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, users, http.StatusOK); err != nil {
		log.Err(err).Msg("error occurred during writing response")
	}
}
