package api

import (
	"encoding/json"
	"net/http"
	"trip_map_system/internal/db/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleGetPolls(w http.ResponseWriter, r *http.Request) {
	groupID, err := uuid.Parse(r.URL.Query().Get("group_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "group_id is required")
		return
	}

	polls, err := s.pollService.GroupPolls(UserID(r), groupID)
	if err != nil {
		s.writeVoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, polls)
}

type createPollRequest struct {
	GroupID     uuid.UUID `json:"group_id"`
	Question    string    `json:"question"`
	Description string    `json:"description"`
}

func (s *Server) handleCreatePoll(w http.ResponseWriter, r *http.Request) {
	var request createPollRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Question == "" {
		writeError(w, http.StatusBadRequest, "a question is required")
		return
	}

	poll, err := s.pollService.Create(UserID(r), request.GroupID, request.Question, request.Description)
	if err != nil {
		s.writeVoteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, poll)
}

func (s *Server) handleDeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	if err := s.pollService.Delete(UserID(r), pollID); err != nil {
		s.writeVoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

type reorderPollsRequest struct {
	GroupID    uuid.UUID   `json:"group_id"`
	OrderedIDs []uuid.UUID `json:"ordered_ids"`
}

func (s *Server) handleReorderPolls(w http.ResponseWriter, r *http.Request) {
	var request reorderPollsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid reorder request")
		return
	}

	if err := s.pollService.Reorder(UserID(r), request.GroupID, request.OrderedIDs); err != nil {
		s.writeVoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

type pollVoteRequest struct {
	Tier models.VoteTier `json:"tier"`
}

func (s *Server) handlePollVote(w http.ResponseWriter, r *http.Request) {
	pollID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid poll id")
		return
	}

	var request pollVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid vote request")
		return
	}

	outcome, err := s.pollService.Vote(UserID(r), pollID, request.Tier)
	if err != nil {
		s.writeVoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"outcome": outcome})
}
