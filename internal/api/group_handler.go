package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"trip_map_system/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"
)

type createGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var request createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Name == "" {
		writeError(w, http.StatusBadRequest, "a group name is required")
		return
	}

	group, err := s.groupService.Create(UserID(r), request.Name, request.Description)
	if err != nil {
		s.logger.Errorw("failed to create group", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create group")
		return
	}

	writeJSON(w, http.StatusCreated, group)
}

func (s *Server) handleMyGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groupService.GroupsForUser(UserID(r))
	if err != nil {
		s.logger.Errorw("failed to load groups", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load groups")
		return
	}

	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleGroupMembers(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	members, err := s.groupService.Members(UserID(r), groupID)
	if err != nil {
		s.writeGroupError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (s *Server) handleJoinGroup(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	member, err := s.groupService.RequestJoin(UserID(r), groupID)
	if err != nil {
		s.writeGroupError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, member)
}

type memberActionRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

func (s *Server) handleApproveMember(w http.ResponseWriter, r *http.Request) {
	s.resolveMember(w, r, true)
}

func (s *Server) handleDenyMember(w http.ResponseWriter, r *http.Request) {
	s.resolveMember(w, r, false)
}

func (s *Server) resolveMember(w http.ResponseWriter, r *http.Request, approve bool) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	var request memberActionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	action := s.groupService.Deny
	if approve {
		action = s.groupService.Approve
	}

	member, err := action(UserID(r), groupID, request.UserID)
	if err != nil {
		s.writeGroupError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, member)
}

func (s *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := s.groupService.RemoveMember(UserID(r), groupID, userID); err != nil {
		s.writeGroupError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

func (s *Server) handleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	groupID, ok := groupIDParam(w, r)
	if !ok {
		return
	}

	if err := s.groupService.Delete(UserID(r), groupID); err != nil {
		s.writeGroupError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, nil)
}

type selectGroupRequest struct {
	GroupID *uuid.UUID `json:"group_id"`
}

func (s *Server) handleSelectGroup(w http.ResponseWriter, r *http.Request) {
	var request selectGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	profile, err := s.groupService.SelectGroup(UserID(r), request.GroupID)
	if err != nil {
		s.writeGroupError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func groupIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	groupID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid group id")
		return uuid.Nil, false
	}
	return groupID, true
}

func (s *Server) writeGroupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrAlreadyRequested),
		errors.Is(err, services.ErrAlreadyMember):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrMembershipNotFound),
		errors.Is(err, pg.ErrNoRows):
		writeError(w, http.StatusNotFound, "not found")
	default:
		s.logger.Errorw("group operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "group operation failed")
	}
}
