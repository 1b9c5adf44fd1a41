package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"trip_map_system/internal/db/models"
	"trip_map_system/internal/services"

	"github.com/go-pg/pg/v10"
)

type credentialsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type sessionResponse struct {
	Profile *models.Profile     `json:"profile"`
	Tokens  *services.TokenPair `json:"tokens"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var request credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Email == "" || request.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	profile, tokens, err := s.authService.SignUp(request.Email, request.Password, request.DisplayName)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		s.logger.Errorw("failed to sign up", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to sign up")
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{Profile: profile, Tokens: tokens})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var request credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	profile, tokens, err := s.authService.SignIn(request.Email, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		s.logger.Errorw("failed to sign in", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Profile: profile, Tokens: tokens})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var request refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	tokens, err := s.authService.Refresh(request.RefreshToken)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.profileRepository.GetOne(UserID(r))
	if err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.logger.Errorw("failed to load profile", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

type updateProfileRequest struct {
	DisplayName string `json:"display_name"`
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var request updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	profile, err := s.authService.UpdateDisplayName(UserID(r), request.DisplayName)
	if err != nil {
		s.logger.Errorw("failed to update display name", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
