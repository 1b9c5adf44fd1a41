package services

import "errors"

var (
	ErrNotAuthorized      = errors.New("user is not allowed to perform this action")
	ErrNoGroupSelected    = errors.New("no group selected")
	ErrVotingNotPermitted = errors.New("voting requires an approved membership in the current group")
	ErrAlreadyRequested   = errors.New("a join request is already pending")
	ErrAlreadyMember      = errors.New("user is already an approved member")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrInvalidTier        = errors.New("invalid vote tier")
	ErrPinNotFound        = errors.New("pin not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)
