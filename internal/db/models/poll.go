package models

import (
	"time"

	"github.com/google/uuid"
)

type Poll struct {
	ID          uuid.UUID `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	Question    string    `json:"question" pg:",notnull"`
	Description string    `json:"description"`
	GroupID     uuid.UUID `json:"group_id" pg:"type:uuid,notnull"`
	SortOrder   int       `json:"sort_order" pg:",notnull,use_zero"`
	CreatedBy   uuid.UUID `json:"created_by" pg:"type:uuid,notnull"`
	CreatedAt   time.Time `json:"created_at" pg:"default:now()"`
	Votes       []*PollVote `json:"votes" pg:"rel:has-many,fk:poll_id"`
}

// PollVote follows the same tier and uniqueness rules as a pin vote,
// keyed by poll instead of pin.
type PollVote struct {
	ID        uuid.UUID `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"user_id" pg:"type:uuid,notnull"`
	PollID    uuid.UUID `json:"poll_id" pg:"type:uuid,notnull"`
	GroupID   uuid.UUID `json:"group_id" pg:"type:uuid,notnull"`
	Tier      VoteTier  `json:"tier" pg:",notnull"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
	UpdatedAt time.Time `json:"updated_at" pg:"default:now()"`
}
