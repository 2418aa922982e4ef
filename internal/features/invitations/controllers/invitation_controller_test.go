package invitations_controllers

import (
	"testing"

	invitations_dto "teamspace-backend/internal/features/invitations/dto"
	invitations_enums "teamspace-backend/internal/features/invitations/enums"
	invitations_models "teamspace-backend/internal/features/invitations/models"
	users_enums "teamspace-backend/internal/features/users/enums"
	users_testing "teamspace-backend/internal/features/users/testing"
	workspaces_controllers "teamspace-backend/internal/features/workspaces/controllers"
	workspaces_dto "teamspace-backend/internal/features/workspaces/dto"
	workspaces_testing "teamspace-backend/internal/features/workspaces/testing"
	test_utils "teamspace-backend/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createInvitationTestRouter() *gin.Engine {
	router := workspaces_testing.CreateTestRouter(
		workspaces_controllers.GetWorkspaceController(),
		workspaces_controllers.GetMembershipController(),
		GetInvitationController(),
	)

	// invitee-facing endpoints live outside the auth middleware
	public := router.Group("/api/v1")
	GetInvitationController().RegisterPublicRoutes(public)

	return router
}

func Test_InviteAcceptFlow_InviteeBecomesMember(t *testing.T) {
	router := createInvitationTestRouter()

	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	invitee := users_testing.CreateTestUser(users_enums.UserRoleMember)

	workspace, ownerToken := workspaces_testing.CreateTestWorkspaceViaAPI(
		"Invite flow test",
		owner,
		router,
	)

	var invitation invitations_models.Invitation
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invitations/workspace",
		"Bearer "+ownerToken,
		invitations_dto.InviteToWorkspaceRequestDTO{
			WorkspaceID: workspace.ID,
			Email:       invitee.Email,
			Role:        "MEMBER",
		},
		200,
		&invitation,
	)
	assert.Equal(t, invitations_enums.InvitationStatusPending, invitation.Status)

	var accepted invitations_models.Invitation
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invitations/accept/"+invitation.Token,
		"Bearer "+invitee.Token,
		nil,
		200,
		&accepted,
	)
	assert.Equal(t, invitations_enums.InvitationStatusAccepted, accepted.Status)

	var members workspaces_dto.GetMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members",
		"Bearer "+ownerToken,
		200,
		&members,
	)

	require.Len(t, members.Members, 1)
	assert.Equal(t, invitee.UserID, members.Members[0].UserID)
}

func Test_InviteTwice_SecondRequestConflicts(t *testing.T) {
	router := createInvitationTestRouter()

	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace, ownerToken := workspaces_testing.CreateTestWorkspaceViaAPI(
		"Duplicate invite test",
		owner,
		router,
	)

	request := invitations_dto.InviteToWorkspaceRequestDTO{
		WorkspaceID: workspace.ID,
		Email:       "pending@example.com",
		Role:        "MEMBER",
	}

	test_utils.MakePostRequest(
		t, router, "/api/v1/invitations/workspace", "Bearer "+ownerToken, request, 200,
	)
	test_utils.MakePostRequest(
		t, router, "/api/v1/invitations/workspace", "Bearer "+ownerToken, request, 409,
	)
}

func Test_RevokedInvitation_CannotBeAccepted(t *testing.T) {
	router := createInvitationTestRouter()

	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace, ownerToken := workspaces_testing.CreateTestWorkspaceViaAPI(
		"Revoke flow test",
		owner,
		router,
	)

	var invitation invitations_models.Invitation
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invitations/workspace",
		"Bearer "+ownerToken,
		invitations_dto.InviteToWorkspaceRequestDTO{
			WorkspaceID: workspace.ID,
			Email:       "revoked@example.com",
			Role:        "MEMBER",
		},
		200,
		&invitation,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invitations/revoke/"+invitation.ID.String(),
		"Bearer "+ownerToken,
		nil,
		200,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invitations/accept/"+invitation.Token,
		"",
		nil,
		409,
	)
}

func Test_PendingInvitations_QueryableByEmailWithoutAuth(t *testing.T) {
	router := createInvitationTestRouter()

	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace, ownerToken := workspaces_testing.CreateTestWorkspaceViaAPI(
		"Pending query test",
		owner,
		router,
	)

	email := "lurker@example.com"
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invitations/workspace",
		"Bearer "+ownerToken,
		invitations_dto.InviteToWorkspaceRequestDTO{
			WorkspaceID: workspace.ID,
			Email:       email,
			Role:        "MEMBER",
		},
		200,
	)

	var response invitations_dto.ListInvitationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invitations/pending?email="+email,
		"",
		200,
		&response,
	)

	require.Len(t, response.Invitations, 1)
	assert.Equal(t, email, response.Invitations[0].Email)
}
