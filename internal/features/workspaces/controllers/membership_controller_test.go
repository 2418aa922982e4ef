package workspaces_controllers

import (
	"testing"

	users_enums "teamspace-backend/internal/features/users/enums"
	users_testing "teamspace-backend/internal/features/users/testing"
	workspaces_dto "teamspace-backend/internal/features/workspaces/dto"
	workspaces_enums "teamspace-backend/internal/features/workspaces/enums"
	workspaces_testing "teamspace-backend/internal/features/workspaces/testing"
	test_utils "teamspace-backend/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AddMember_ByOwner_MemberAppearsInList(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)

	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	workspace, ownerToken := workspaces_testing.CreateTestWorkspaceViaAPI(
		"Members test",
		owner,
		router,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members",
		"Bearer "+ownerToken,
		workspaces_dto.AddMemberRequestDTO{
			Email: member.Email,
			Role:  workspaces_enums.WorkspaceMemberRoleMember,
		},
		200,
	)

	var response workspaces_dto.GetMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members",
		"Bearer "+ownerToken,
		200,
		&response,
	)

	require.Len(t, response.Members, 1)
	assert.Equal(t, member.UserID, response.Members[0].UserID)
	assert.Equal(t, workspaces_enums.WorkspaceMemberRoleMember, response.Members[0].Role)
}

func Test_AddMember_Twice_SecondCallConflicts(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)

	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	workspace, ownerToken := workspaces_testing.CreateTestWorkspaceViaAPI(
		"Duplicate member test",
		owner,
		router,
	)

	request := workspaces_dto.AddMemberRequestDTO{
		Email: member.Email,
		Role:  workspaces_enums.WorkspaceMemberRoleMember,
	}
	memberPath := "/api/v1/workspaces/" + workspace.ID.String() + "/members"

	test_utils.MakePostRequest(t, router, memberPath, "Bearer "+ownerToken, request, 200)
	test_utils.MakePostRequest(t, router, memberPath, "Bearer "+ownerToken, request, 409)
}

func Test_AddMember_UnknownEmail_NotFound(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)

	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace, ownerToken := workspaces_testing.CreateTestWorkspaceViaAPI(
		"Unknown email test",
		owner,
		router,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members",
		"Bearer "+ownerToken,
		workspaces_dto.AddMemberRequestDTO{
			Email: "nobody@example.com",
			Role:  workspaces_enums.WorkspaceMemberRoleMember,
		},
		404,
	)
}

func Test_AddMember_MemberInvitationsDisabled_Forbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)

	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	workspace, ownerToken := workspaces_testing.CreateTestWorkspaceViaAPI(
		"Invitations toggle test",
		owner,
		router,
	)

	users_testing.DisableMemberInvitations()
	defer users_testing.ResetSettingsToDefaults()

	request := workspaces_dto.AddMemberRequestDTO{
		Email: member.Email,
		Role:  workspaces_enums.WorkspaceMemberRoleMember,
	}
	memberPath := "/api/v1/workspaces/" + workspace.ID.String() + "/members"

	test_utils.MakePostRequest(t, router, memberPath, "Bearer "+ownerToken, request, 403)

	users_testing.EnableMemberInvitations()
	test_utils.MakePostRequest(t, router, memberPath, "Bearer "+ownerToken, request, 200)
}

func Test_AddMember_ByPlainMember_Forbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)

	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)
	other := users_testing.CreateTestUser(users_enums.UserRoleMember)

	workspace, _ := workspaces_testing.CreateTestWorkspaceViaAPI(
		"Forbidden add test",
		owner,
		router,
	)
	workspaces_testing.AddMemberToWorkspaceViaOwner(
		workspace,
		member,
		workspaces_enums.WorkspaceMemberRoleMember,
		router,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members",
		"Bearer "+member.Token,
		workspaces_dto.AddMemberRequestDTO{
			Email: other.Email,
			Role:  workspaces_enums.WorkspaceMemberRoleMember,
		},
		403,
	)
}

func Test_ChangeMemberRole_ThenRemove(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)

	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	member := users_testing.CreateTestUser(users_enums.UserRoleMember)

	workspace, ownerToken := workspaces_testing.CreateTestWorkspaceViaAPI(
		"Role change test",
		owner,
		router,
	)
	workspaces_testing.AddMemberToWorkspaceViaOwner(
		workspace,
		member,
		workspaces_enums.WorkspaceMemberRoleMember,
		router,
	)

	memberPath := "/api/v1/workspaces/" + workspace.ID.String() +
		"/members/" + member.UserID.String()

	test_utils.MakePutRequest(
		t,
		router,
		memberPath+"/role",
		"Bearer "+ownerToken,
		workspaces_dto.ChangeMemberRoleRequestDTO{
			Role: workspaces_enums.WorkspaceMemberRoleAdmin,
		},
		200,
	)

	test_utils.MakeDeleteRequest(t, router, memberPath, "Bearer "+ownerToken, 200)

	var response workspaces_dto.GetMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members",
		"Bearer "+ownerToken,
		200,
		&response,
	)
	assert.Empty(t, response.Members)
}

func Test_RemoveMember_OwnerTargeted_Fails(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(
		GetWorkspaceController(),
		GetMembershipController(),
	)

	owner := users_testing.CreateTestUser(users_enums.UserRoleMember)
	workspace, ownerToken := workspaces_testing.CreateTestWorkspaceViaAPI(
		"Owner removal test",
		owner,
		router,
	)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/workspaces/"+workspace.ID.String()+"/members/"+owner.UserID.String(),
		"Bearer "+ownerToken,
		400,
	)
}
