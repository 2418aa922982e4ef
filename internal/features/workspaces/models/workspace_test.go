package workspaces_models

import (
	"errors"
	"testing"

	workspaces_enums "teamspace-backend/internal/features/workspaces/enums"
	"teamspace-backend/internal/util/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestWorkspace(ownerID uuid.UUID) *Workspace {
	return &Workspace{
		ID:      uuid.New(),
		Name:    "Test Workspace",
		Slug:    "test-workspace",
		OwnerID: ownerID,
	}
}

func Test_AddMember_Duplicate_ReturnsConflict(t *testing.T) {
	workspace := newTestWorkspace(uuid.New())
	userID := uuid.New()

	err := workspace.AddMember(userID, workspaces_enums.WorkspaceMemberRoleMember, "hi team")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(workspace.Members))
	assert.Equal(t, "hi team", workspace.Members[0].JoinMessage)
	assert.False(t, workspace.Members[0].JoinedAt.IsZero())

	err = workspace.AddMember(userID, workspaces_enums.WorkspaceMemberRoleAdmin, "")
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, 1, len(workspace.Members))
}

func Test_AddMember_Owner_ReturnsConflict(t *testing.T) {
	ownerID := uuid.New()
	workspace := newTestWorkspace(ownerID)

	err := workspace.AddMember(ownerID, workspaces_enums.WorkspaceMemberRoleMember, "")

	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Empty(t, workspace.Members)
}

func Test_RemoveMember_Owner_AlwaysFails(t *testing.T) {
	ownerID := uuid.New()
	workspace := newTestWorkspace(ownerID)

	// regardless of prior state
	err := workspace.RemoveMember(ownerID)
	assert.True(t, errors.Is(err, apperrors.ErrBusinessRule))

	assert.NoError(
		t,
		workspace.AddMember(uuid.New(), workspaces_enums.WorkspaceMemberRoleAdmin, ""),
	)
	err = workspace.RemoveMember(ownerID)
	assert.True(t, errors.Is(err, apperrors.ErrBusinessRule))
}

func Test_RemoveMember_Absent_IsNoOp(t *testing.T) {
	workspace := newTestWorkspace(uuid.New())

	assert.NoError(t, workspace.RemoveMember(uuid.New()))
}

func Test_RemoveMember_Existing_RemovesRow(t *testing.T) {
	workspace := newTestWorkspace(uuid.New())
	userID := uuid.New()
	otherID := uuid.New()

	assert.NoError(t, workspace.AddMember(userID, workspaces_enums.WorkspaceMemberRoleMember, ""))
	assert.NoError(t, workspace.AddMember(otherID, workspaces_enums.WorkspaceMemberRoleAdmin, ""))

	assert.NoError(t, workspace.RemoveMember(userID))

	assert.Equal(t, 1, len(workspace.Members))
	assert.Equal(t, otherID, workspace.Members[0].UserID)
}

func Test_ChangeMemberRole_NotAMember_ReturnsNotFound(t *testing.T) {
	workspace := newTestWorkspace(uuid.New())

	err := workspace.ChangeMemberRole(uuid.New(), workspaces_enums.WorkspaceMemberRoleAdmin)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func Test_ChangeMemberRole_Existing_UpdatesRole(t *testing.T) {
	workspace := newTestWorkspace(uuid.New())
	userID := uuid.New()

	assert.NoError(t, workspace.AddMember(userID, workspaces_enums.WorkspaceMemberRoleMember, ""))
	assert.NoError(t, workspace.ChangeMemberRole(userID, workspaces_enums.WorkspaceMemberRoleAdmin))

	assert.Equal(t, workspaces_enums.WorkspaceMemberRoleAdmin, workspace.Members[0].Role)
}

func Test_MembershipPolicy_Predicates(t *testing.T) {
	ownerID := uuid.New()
	adminID := uuid.New()
	memberID := uuid.New()
	strangerID := uuid.New()

	workspace := newTestWorkspace(ownerID)
	assert.NoError(t, workspace.AddMember(adminID, workspaces_enums.WorkspaceMemberRoleAdmin, ""))
	assert.NoError(t, workspace.AddMember(memberID, workspaces_enums.WorkspaceMemberRoleMember, ""))

	assert.True(t, workspace.IsOwner(ownerID))
	assert.False(t, workspace.IsOwner(adminID))

	assert.True(t, workspace.IsAdmin(ownerID))
	assert.True(t, workspace.IsAdmin(adminID))
	assert.False(t, workspace.IsAdmin(memberID))

	assert.True(t, workspace.IsMember(ownerID))
	assert.True(t, workspace.IsMember(memberID))
	assert.False(t, workspace.IsMember(strangerID))

	assert.True(t, workspace.CanManageInvitations(ownerID))
	assert.True(t, workspace.CanManageInvitations(adminID))
	assert.False(t, workspace.CanManageInvitations(memberID))
	assert.False(t, workspace.CanManageInvitations(strangerID))
}

func Test_IsValidSlug_Patterns(t *testing.T) {
	tests := []struct {
		slug  string
		valid bool
	}{
		{"acme", true},
		{"acme-corp", true},
		{"a1-b2-c3", true},
		{"Acme", false},
		{"acme_corp", false},
		{"-acme", false},
		{"acme-", false},
		{"acme--corp", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidSlug(tt.slug))
		})
	}
}
