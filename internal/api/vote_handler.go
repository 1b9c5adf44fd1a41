package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"trip_map_system/internal/db/models"
	"trip_map_system/internal/services"

	"github.com/google/uuid"
)

type submitVoteRequest struct {
	PinID   uuid.UUID       `json:"pin_id"`
	GroupID uuid.UUID       `json:"group_id"`
	Tier    models.VoteTier `json:"tier"`
}

func (s *Server) handleSubmitVote(w http.ResponseWriter, r *http.Request) {
	var request submitVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid vote request")
		return
	}

	outcome, err := s.voteService.Submit(UserID(r), request.PinID, request.GroupID, request.Tier)
	if err != nil {
		s.writeVoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"outcome": outcome})
}

// handleRetractVote removes the caller's vote outright, as opposed to the
// toggle-off path through submit.
func (s *Server) handleRetractVote(w http.ResponseWriter, r *http.Request) {
	pinID, err := uuid.Parse(r.URL.Query().Get("pin_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "pin_id is required")
		return
	}
	groupID, err := uuid.Parse(r.URL.Query().Get("group_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "group_id is required")
		return
	}

	if err := s.voteService.Retract(UserID(r), pinID, groupID); err != nil {
		s.writeVoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"outcome": services.VoteOutcomeRemoved})
}

// handleGetVotes covers both the raw vote state and the tallies view; the
// payload carries per-pin tallies plus the caller's own tiers.
func (s *Server) handleGetVotes(w http.ResponseWriter, r *http.Request) {
	groupID, err := uuid.Parse(r.URL.Query().Get("group_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "group_id is required")
		return
	}

	state, err := s.voteService.GroupState(UserID(r), groupID)
	if err != nil {
		s.writeVoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleOutcomes(w http.ResponseWriter, r *http.Request) {
	groupID, err := uuid.Parse(r.URL.Query().Get("group_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "group_id is required")
		return
	}

	outcomes, err := s.voteService.Outcomes(groupID)
	if err != nil {
		s.writeVoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outcomes)
}

func (s *Server) writeVoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrVotingNotPermitted),
		errors.Is(err, services.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNoGroupSelected),
		errors.Is(err, services.ErrInvalidTier):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrPinNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Errorw("vote operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "vote operation failed")
	}
}
