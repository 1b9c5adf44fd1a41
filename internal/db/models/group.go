package models

import (
	"time"

	"github.com/google/uuid"
)

type (
	MemberRole   string
	MemberStatus string
)

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"

	MemberStatusPending  MemberStatus = "pending"
	MemberStatusApproved MemberStatus = "approved"
	MemberStatusDenied   MemberStatus = "denied"
)

func (r MemberRole) String() string {
	return string(r)
}

func (s MemberStatus) String() string {
	return string(s)
}

type Group struct {
	ID          uuid.UUID      `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	Name        string         `json:"name" pg:",notnull"`
	Description string         `json:"description"`
	CreatedBy   uuid.UUID      `json:"created_by" pg:"type:uuid,notnull"`
	CreatedAt   time.Time      `json:"created_at" pg:"default:now()"`
	Members     []*GroupMember `json:"members" pg:"rel:has-many,fk:group_id"`
}

type GroupMember struct {
	ID          uuid.UUID    `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	GroupID     uuid.UUID    `json:"group_id" pg:"type:uuid,notnull"`
	UserID      uuid.UUID    `json:"user_id" pg:"type:uuid,notnull"`
	Role        MemberRole   `json:"role" pg:",notnull,default:'member'"`
	Status      MemberStatus `json:"status" pg:",notnull,default:'pending'"`
	RequestedAt time.Time    `json:"requested_at" pg:"default:now()"`
	ApprovedAt  *time.Time   `json:"approved_at"`
	ApprovedBy  *uuid.UUID   `json:"approved_by" pg:"type:uuid"`
}

// IsApproved reports whether the membership grants voting rights in its group.
func (m *GroupMember) IsApproved() bool {
	return m.Status == MemberStatusApproved
}

func (m *GroupMember) IsAdmin() bool {
	return m.Role == MemberRoleAdmin && m.Status == MemberStatusApproved
}
