package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type VoteTier string

const (
	VoteTierHighlyInterested VoteTier = "highly_interested"
	VoteTierWouldDoWithGroup VoteTier = "would_do_with_group"
	VoteTierWantMoreInfo     VoteTier = "want_more_info"
	VoteTierNotInterested    VoteTier = "not_interested"
)

func (t VoteTier) String() string {
	return string(t)
}

// CapitalizedString renders the tier for display, e.g. "Highly Interested".
func (t VoteTier) CapitalizedString() string {
	return cases.Title(language.English).String(strings.ReplaceAll(t.String(), "_", " "))
}

// IsPositive reports whether the tier counts toward a target's interest score.
func (t VoteTier) IsPositive() bool {
	return t == VoteTierHighlyInterested || t == VoteTierWouldDoWithGroup
}

func (t VoteTier) IsValid() bool {
	switch t {
	case VoteTierHighlyInterested, VoteTierWouldDoWithGroup, VoteTierWantMoreInfo, VoteTierNotInterested:
		return true
	}
	return false
}

// Vote is a pin-scoped vote, unique per (user, pin, group).
type Vote struct {
	tableName struct{} `pg:"user_votes"`

	ID        uuid.UUID `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" pg:"type:uuid,notnull"`
	PinID     uuid.UUID `json:"pin_id" pg:"type:uuid,notnull"`
	GroupID   uuid.UUID `json:"group_id" pg:"type:uuid,notnull"`
	Tier      VoteTier  `json:"tier" pg:",notnull"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
	UpdatedAt time.Time `json:"updated_at" pg:"default:now()"`
}

// Tally is the aggregate for one vote target within one group.
type Tally struct {
	Positive int `json:"positive"`
	Total    int `json:"total"`
}
