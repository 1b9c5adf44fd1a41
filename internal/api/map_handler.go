package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"trip_map_system/internal/db/models"
	"trip_map_system/internal/mapdata"
	"trip_map_system/internal/mapview"
	"trip_map_system/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type bootstrapResponse struct {
	MapView    mapdata.MapView    `json:"map_view"`
	Categories []mapdata.Category `json:"categories"`
	Regions    []mapdata.Region   `json:"regions"`
	Pins       []mapdata.Pin      `json:"pins"`
	Filter     mapview.State      `json:"filter"`
	Groups     []*models.Group    `json:"groups,omitempty"`
	LastGroup  *uuid.UUID         `json:"last_group_id,omitempty"`
}

// handleBootstrap returns everything the client needs for first paint.
// ?categories=Name1,Name2 overrides the default active set.
func (s *Server) handleBootstrap(w http.ResponseWriter, r *http.Request) {
	var override []string
	if raw := r.URL.Query().Get("categories"); raw != "" {
		override = strings.Split(raw, ",")
	}

	filter := mapview.NewFilter(s.registry, override, s.logger)
	bundle := s.registry.Bundle()

	response := &bootstrapResponse{
		MapView:    bundle.MapView,
		Categories: bundle.Categories,
		Regions:    bundle.Regions,
		Pins:       bundle.Pins,
		Filter:     filter.Snapshot(),
	}

	if userID := UserID(r); userID != uuid.Nil && s.accountsEnabled() {
		groups, err := s.groupService.GroupsForUser(userID)
		if err != nil {
			s.logger.Errorw("failed to load user groups for bootstrap", "error", err)
		} else {
			response.Groups = groups
		}

		profile, err := s.profileRepository.GetOne(userID)
		if err == nil {
			response.LastGroup = profile.LastGroupID
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// handleVisible evaluates the filter engine for a posted filter state and
// returns the ids of pins that should be drawn.
func (s *Server) handleVisible(w http.ResponseWriter, r *http.Request) {
	var state mapview.State
	if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
		writeError(w, http.StatusBadRequest, "invalid filter state")
		return
	}

	filter := mapview.FilterFromState(s.registry, state, s.logger)

	visible := make([]uuid.UUID, 0)
	for _, pin := range filter.VisiblePins() {
		visible = append(visible, pin.ID)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"visible_pin_ids": visible,
		"filter":          filter.Snapshot(),
	})
}

func (s *Server) handlePins(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Bundle().Pins)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	matches := mapview.Search(s.registry.Bundle().Pins, query)
	if matches == nil {
		matches = []mapdata.Pin{}
	}

	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	pinID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pin id")
		return
	}

	points, err := s.trackService.Track(pinID)
	if err != nil {
		if errors.Is(err, services.ErrPinNotFound) || errors.Is(err, pg.ErrNoRows) {
			writeError(w, http.StatusNotFound, "pin not found")
			return
		}
		s.logger.Errorw("failed to load track", "error", err, "pinID", pinID)
		writeError(w, http.StatusInternalServerError, "failed to load track")
		return
	}

	if points == nil {
		points = []services.TrackPoint{}
	}
	writeJSON(w, http.StatusOK, points)
}

type planRouteRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (s *Server) handlePlanRoute(w http.ResponseWriter, r *http.Request) {
	var request planRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid route request")
		return
	}

	route, err := s.routingService.Plan(request.From, request.To)
	if err != nil {
		if errors.Is(err, services.ErrPinNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.Errorw("failed to plan route", "error", err)
		writeError(w, http.StatusBadGateway, "routing engine unavailable")
		return
	}

	writeJSON(w, http.StatusOK, route)
}
