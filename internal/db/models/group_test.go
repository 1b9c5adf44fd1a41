package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupMember_IsAdmin(t *testing.T) {
	admin := &GroupMember{Role: MemberRoleAdmin, Status: MemberStatusApproved}
	assert.True(t, admin.IsAdmin())

	pendingAdmin := &GroupMember{Role: MemberRoleAdmin, Status: MemberStatusPending}
	assert.False(t, pendingAdmin.IsAdmin())

	member := &GroupMember{Role: MemberRoleMember, Status: MemberStatusApproved}
	assert.False(t, member.IsAdmin())
}

func TestGroupMember_IsApproved(t *testing.T) {
	assert.True(t, (&GroupMember{Status: MemberStatusApproved}).IsApproved())
	assert.False(t, (&GroupMember{Status: MemberStatusDenied}).IsApproved())
}
