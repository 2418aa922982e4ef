package invitations_services_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	invitations_dto "teamspace-backend/internal/features/invitations/dto"
	invitations_enums "teamspace-backend/internal/features/invitations/enums"
	invitations_services "teamspace-backend/internal/features/invitations/services"
	invitations_testing "teamspace-backend/internal/features/invitations/testing"
	projects_enums "teamspace-backend/internal/features/projects/enums"
	projects_models "teamspace-backend/internal/features/projects/models"
	users_enums "teamspace-backend/internal/features/users/enums"
	users_models "teamspace-backend/internal/features/users/models"
	workspaces_enums "teamspace-backend/internal/features/workspaces/enums"
	workspaces_models "teamspace-backend/internal/features/workspaces/models"
	"teamspace-backend/internal/util/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service         *invitations_services.InvitationService
	invitationStore *invitations_testing.InMemoryInvitationStore
	workspaceStore  *invitations_testing.InMemoryWorkspaceStore
	projectStore    *invitations_testing.InMemoryProjectStore
	settingsStore   *invitations_testing.InMemorySettingsStore
	owner           *users_models.User
	workspace       *workspaces_models.Workspace
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	invitationStore := invitations_testing.NewInMemoryInvitationStore()
	workspaceStore := invitations_testing.NewInMemoryWorkspaceStore()
	projectStore := invitations_testing.NewInMemoryProjectStore()
	settingsStore := invitations_testing.NewInMemorySettingsStore()

	owner := &users_models.User{
		ID:    uuid.New(),
		Email: "owner@example.com",
		Role:  users_enums.UserRoleMember,
	}

	now := time.Now().UTC()
	workspace := &workspaces_models.Workspace{
		ID:        uuid.New(),
		Name:      "Acme",
		Slug:      "acme",
		OwnerID:   owner.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	workspaceStore.Workspaces[workspace.ID] = workspace

	service := invitations_services.NewInvitationService(
		invitationStore,
		workspaceStore,
		projectStore,
		settingsStore,
		slog.Default(),
	)

	return &fixture{
		service:         service,
		invitationStore: invitationStore,
		workspaceStore:  workspaceStore,
		projectStore:    projectStore,
		settingsStore:   settingsStore,
		owner:           owner,
		workspace:       workspace,
	}
}

func (f *fixture) addProject(teamLeadID *uuid.UUID) *projects_models.Project {
	now := time.Now().UTC()
	project := &projects_models.Project{
		ID:          uuid.New(),
		Name:        "Launch",
		Priority:    projects_enums.ProjectPriorityHigh,
		Status:      projects_enums.ProjectStatusActive,
		StartDate:   now,
		EndDate:     now.Add(30 * 24 * time.Hour),
		TeamLeadID:  teamLeadID,
		WorkspaceID: f.workspace.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.projectStore.Projects[project.ID] = project

	return project
}

func (f *fixture) inviteToWorkspace(
	t *testing.T,
	email string,
) *invitations_dto.InviteToWorkspaceRequestDTO {
	t.Helper()

	return &invitations_dto.InviteToWorkspaceRequestDTO{
		WorkspaceID: f.workspace.ID,
		Email:       email,
		Role:        workspaces_enums.WorkspaceMemberRoleMember,
	}
}

func Test_InviteToWorkspace_ByOwner_CreatesPendingInvitation(t *testing.T) {
	f := newFixture(t)

	invitation, err := f.service.InviteToWorkspace(
		f.inviteToWorkspace(t, "a@x.com"),
		f.owner,
	)
	require.NoError(t, err)

	assert.Equal(t, invitations_enums.InvitationStatusPending, invitation.Status)
	assert.Equal(t, "a@x.com", invitation.Email)
	assert.NotEmpty(t, invitation.Token)
	assert.Equal(t, f.workspace.ID, *invitation.WorkspaceID)
	assert.Nil(t, invitation.ProjectID)
	assert.WithinDuration(
		t,
		invitation.CreatedAt.Add(7*24*time.Hour),
		invitation.ExpiresAt,
		time.Second,
	)
}

func Test_InviteToWorkspace_ByPlainMember_Unauthorized(t *testing.T) {
	f := newFixture(t)

	member := &users_models.User{ID: uuid.New(), Role: users_enums.UserRoleMember}
	require.NoError(t, f.workspace.AddMember(
		member.ID,
		workspaces_enums.WorkspaceMemberRoleMember,
		"",
	))

	_, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), member)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func Test_InviteToWorkspace_ByWorkspaceAdmin_Succeeds(t *testing.T) {
	f := newFixture(t)

	admin := &users_models.User{ID: uuid.New(), Role: users_enums.UserRoleMember}
	require.NoError(t, f.workspace.AddMember(
		admin.ID,
		workspaces_enums.WorkspaceMemberRoleAdmin,
		"",
	))

	_, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), admin)
	assert.NoError(t, err)
}

func Test_InviteToWorkspace_InvitationsDisabled_Unauthorized(t *testing.T) {
	f := newFixture(t)
	f.settingsStore.Settings.IsAllowMemberInvitations = false

	_, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func Test_InviteToWorkspace_InvitationsDisabled_GlobalAdminStillAllowed(t *testing.T) {
	f := newFixture(t)
	f.settingsStore.Settings.IsAllowMemberInvitations = false

	admin := &users_models.User{ID: uuid.New(), Role: users_enums.UserRoleAdmin}
	invitation, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), admin)
	require.NoError(t, err)
	assert.Equal(t, invitations_enums.InvitationStatusPending, invitation.Status)
}

func Test_InviteToProject_InvitationsDisabled_Unauthorized(t *testing.T) {
	f := newFixture(t)
	f.settingsStore.Settings.IsAllowMemberInvitations = false

	teamLead := &users_models.User{ID: uuid.New(), Role: users_enums.UserRoleMember}
	project := f.addProject(&teamLead.ID)

	_, err := f.service.InviteToProject(&invitations_dto.InviteToProjectRequestDTO{
		ProjectID: project.ID,
		Email:     "dev@x.com",
	}, teamLead)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func Test_InviteToWorkspace_MissingWorkspace_NotFound(t *testing.T) {
	f := newFixture(t)

	request := f.inviteToWorkspace(t, "a@x.com")
	request.WorkspaceID = uuid.New()

	_, err := f.service.InviteToWorkspace(request, f.owner)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func Test_InviteToWorkspace_DuplicatePending_Conflict(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)

	_, err = f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func Test_Accept_WithUser_MaterializesWorkspaceMembership(t *testing.T) {
	f := newFixture(t)

	invitation, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)

	userID := uuid.New()
	accepted, err := f.service.Accept(invitation.Token, &userID)
	require.NoError(t, err)

	assert.Equal(t, invitations_enums.InvitationStatusAccepted, accepted.Status)
	assert.True(t, f.workspace.IsMember(userID))
	assert.False(t, f.workspace.IsAdmin(userID))
}

func Test_Accept_WithoutUser_MarksAcceptedWithoutMembership(t *testing.T) {
	f := newFixture(t)

	invitation, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)

	accepted, err := f.service.Accept(invitation.Token, nil)
	require.NoError(t, err)

	assert.Equal(t, invitations_enums.InvitationStatusAccepted, accepted.Status)
	assert.Empty(t, f.workspace.Members)
}

func Test_Accept_UnknownToken_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Accept("no-such-token", nil)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func Test_Accept_ExpiredInvitation_ConsumedAsExpired(t *testing.T) {
	f := newFixture(t)

	invitation, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)

	f.invitationStore.Invitations[invitation.ID].ExpiresAt =
		time.Now().UTC().Add(-time.Second)

	userID := uuid.New()
	_, err = f.service.Accept(invitation.Token, &userID)
	assert.True(t, errors.Is(err, apperrors.ErrExpired))

	stored, err := f.invitationStore.GetInvitationByID(invitation.ID)
	require.NoError(t, err)
	assert.Equal(t, invitations_enums.InvitationStatusExpired, stored.Status)
	assert.False(t, f.workspace.IsMember(userID))

	// the invitation is consumed; a retry is no longer valid
	_, err = f.service.Accept(invitation.Token, &userID)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func Test_Accept_ByExistingMember_SwallowsDuplicateMembership(t *testing.T) {
	f := newFixture(t)

	invitation, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)

	userID := uuid.New()
	require.NoError(t, f.workspace.AddMember(
		userID,
		workspaces_enums.WorkspaceMemberRoleMember,
		"",
	))

	accepted, err := f.service.Accept(invitation.Token, &userID)
	require.NoError(t, err)

	assert.Equal(t, invitations_enums.InvitationStatusAccepted, accepted.Status)
	assert.Len(t, f.workspace.Members, 1)
}

func Test_Revoke_PendingInvitation_ByOwner(t *testing.T) {
	f := newFixture(t)

	invitation, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)

	require.NoError(t, f.service.Revoke(invitation.ID, f.owner))

	stored, err := f.invitationStore.GetInvitationByID(invitation.ID)
	require.NoError(t, err)
	assert.Equal(t, invitations_enums.InvitationStatusRevoked, stored.Status)
}

func Test_Revoke_ByPlainMember_Unauthorized(t *testing.T) {
	f := newFixture(t)

	invitation, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)

	member := &users_models.User{ID: uuid.New(), Role: users_enums.UserRoleMember}
	err = f.service.Revoke(invitation.ID, member)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func Test_Revoke_NonPendingInvitation_Conflict(t *testing.T) {
	f := newFixture(t)

	invitation, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)

	_, err = f.service.Accept(invitation.Token, nil)
	require.NoError(t, err)

	err = f.service.Revoke(invitation.ID, f.owner)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func Test_InviteRevokeAccept_FullLifecycle(t *testing.T) {
	f := newFixture(t)

	invitation, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)
	assert.Equal(t, invitations_enums.InvitationStatusPending, invitation.Status)

	_, err = f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	require.NoError(t, f.service.Revoke(invitation.ID, f.owner))

	_, err = f.service.Accept(invitation.Token, nil)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func Test_InviteToProject_ByTeamLead_Succeeds(t *testing.T) {
	f := newFixture(t)

	teamLead := &users_models.User{ID: uuid.New(), Role: users_enums.UserRoleMember}
	project := f.addProject(&teamLead.ID)

	invitation, err := f.service.InviteToProject(&invitations_dto.InviteToProjectRequestDTO{
		ProjectID: project.ID,
		Email:     "dev@x.com",
	}, teamLead)
	require.NoError(t, err)

	assert.Equal(t, invitations_enums.InvitationTypeProject, invitation.Type)
	assert.Equal(t, project.ID, *invitation.ProjectID)
	assert.Nil(t, invitation.WorkspaceID)
}

func Test_InviteToProject_ByOutsider_Unauthorized(t *testing.T) {
	f := newFixture(t)
	project := f.addProject(nil)

	outsider := &users_models.User{ID: uuid.New(), Role: users_enums.UserRoleMember}
	_, err := f.service.InviteToProject(&invitations_dto.InviteToProjectRequestDTO{
		ProjectID: project.ID,
		Email:     "dev@x.com",
	}, outsider)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func Test_Accept_ProjectInvitation_MaterializesProjectMembership(t *testing.T) {
	f := newFixture(t)
	project := f.addProject(nil)

	invitation, err := f.service.InviteToProject(&invitations_dto.InviteToProjectRequestDTO{
		ProjectID: project.ID,
		Email:     "dev@x.com",
	}, f.owner)
	require.NoError(t, err)

	userID := uuid.New()
	_, err = f.service.Accept(invitation.Token, &userID)
	require.NoError(t, err)

	assert.True(t, project.IsMember(userID))
}

func Test_Revoke_ProjectInvitation_SkipsPermissionCheck(t *testing.T) {
	f := newFixture(t)
	project := f.addProject(nil)

	invitation, err := f.service.InviteToProject(&invitations_dto.InviteToProjectRequestDTO{
		ProjectID: project.ID,
		Email:     "dev@x.com",
	}, f.owner)
	require.NoError(t, err)

	outsider := &users_models.User{ID: uuid.New(), Role: users_enums.UserRoleMember}
	require.NoError(t, f.service.Revoke(invitation.ID, outsider))

	stored, err := f.invitationStore.GetInvitationByID(invitation.ID)
	require.NoError(t, err)
	assert.Equal(t, invitations_enums.InvitationStatusRevoked, stored.Status)
}

func Test_GetWorkspaceInvitations_RequiresManagePermission(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)

	member := &users_models.User{ID: uuid.New(), Role: users_enums.UserRoleMember}
	require.NoError(t, f.workspace.AddMember(
		member.ID,
		workspaces_enums.WorkspaceMemberRoleMember,
		"",
	))

	_, err = f.service.GetWorkspaceInvitations(f.workspace.ID, member, nil)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	response, err := f.service.GetWorkspaceInvitations(f.workspace.ID, f.owner, nil)
	require.NoError(t, err)
	assert.Len(t, response.Invitations, 1)
}

func Test_GetWorkspaceInvitations_NoFilter_ListsOnlyPending(t *testing.T) {
	f := newFixture(t)

	first, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)
	_, err = f.service.InviteToWorkspace(f.inviteToWorkspace(t, "b@x.com"), f.owner)
	require.NoError(t, err)

	require.NoError(t, f.service.Revoke(first.ID, f.owner))

	response, err := f.service.GetWorkspaceInvitations(f.workspace.ID, f.owner, nil)
	require.NoError(t, err)

	require.Len(t, response.Invitations, 1)
	assert.Equal(t, "b@x.com", response.Invitations[0].Email)

	revoked := invitations_enums.InvitationStatusRevoked
	response, err = f.service.GetWorkspaceInvitations(f.workspace.ID, f.owner, &revoked)
	require.NoError(t, err)

	require.Len(t, response.Invitations, 1)
	assert.Equal(t, "a@x.com", response.Invitations[0].Email)
}

func Test_GetWorkspaceInvitations_FiltersByStatus(t *testing.T) {
	f := newFixture(t)

	first, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)
	_, err = f.service.InviteToWorkspace(f.inviteToWorkspace(t, "b@x.com"), f.owner)
	require.NoError(t, err)

	require.NoError(t, f.service.Revoke(first.ID, f.owner))

	pending := invitations_enums.InvitationStatusPending
	response, err := f.service.GetWorkspaceInvitations(f.workspace.ID, f.owner, &pending)
	require.NoError(t, err)

	require.Len(t, response.Invitations, 1)
	assert.Equal(t, "b@x.com", response.Invitations[0].Email)
}

func Test_GetPendingForEmail_ReturnsOnlyPending(t *testing.T) {
	f := newFixture(t)

	first, err := f.service.InviteToWorkspace(f.inviteToWorkspace(t, "a@x.com"), f.owner)
	require.NoError(t, err)

	project := f.addProject(nil)
	_, err = f.service.InviteToProject(&invitations_dto.InviteToProjectRequestDTO{
		ProjectID: project.ID,
		Email:     "a@x.com",
	}, f.owner)
	require.NoError(t, err)

	require.NoError(t, f.service.Revoke(first.ID, f.owner))

	response, err := f.service.GetPendingForEmail("a@x.com")
	require.NoError(t, err)

	require.Len(t, response.Invitations, 1)
	assert.Equal(t, invitations_enums.InvitationTypeProject, response.Invitations[0].Type)
}
