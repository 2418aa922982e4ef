package workspaces_services

import (
	"fmt"

	"teamspace-backend/internal/features/audit_logs"
	users_enums "teamspace-backend/internal/features/users/enums"
	users_models "teamspace-backend/internal/features/users/models"
	users_services "teamspace-backend/internal/features/users/services"
	workspaces_dto "teamspace-backend/internal/features/workspaces/dto"
	workspaces_enums "teamspace-backend/internal/features/workspaces/enums"
	workspaces_models "teamspace-backend/internal/features/workspaces/models"
	workspaces_repositories "teamspace-backend/internal/features/workspaces/repositories"
	"teamspace-backend/internal/util/apperrors"

	"github.com/google/uuid"
)

type MembershipService struct {
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	workspaceService    *WorkspaceService
	userService         *users_services.UserService
	settingsService     *users_services.SettingsService
	auditLogService     *audit_logs.AuditLogService
}

func (s *MembershipService) GetMembers(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*workspaces_dto.GetMembersResponseDTO, error) {
	workspace, err := s.workspaceService.loadWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	if !s.workspaceService.canAccess(workspace, user) {
		return nil, apperrors.Unauthorized("insufficient permissions to view workspace members")
	}

	members, err := s.workspaceRepository.GetWorkspaceMembers(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace members: %w", err)
	}

	membersList := make([]workspaces_dto.WorkspaceMemberResponseDTO, len(members))
	for i, member := range members {
		membersList[i] = *member
	}

	return &workspaces_dto.GetMembersResponseDTO{
		Members: membersList,
	}, nil
}

// AddMember attaches an existing user to the workspace. Unknown emails
// are not auto-invited here; the invitation flow owns that path.
func (s *MembershipService) AddMember(
	workspaceID uuid.UUID,
	request *workspaces_dto.AddMemberRequestDTO,
	addedBy *users_models.User,
) error {
	workspace, err := s.loadManagedWorkspace(workspaceID, addedBy)
	if err != nil {
		return err
	}

	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !addedBy.CanInviteUsers(settings) {
		return apperrors.Unauthorized("member invitations are disabled")
	}

	targetUser, err := s.userService.GetUserByEmail(request.Email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if targetUser == nil {
		return apperrors.NotFound(
			"user with this email does not exist, send an invitation instead",
		)
	}

	if err := workspace.AddMember(targetUser.ID, request.Role, request.JoinMessage); err != nil {
		return err
	}

	if err := s.workspaceRepository.SaveAggregate(workspace); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User added to workspace: %s as %s", targetUser.Email, request.Role),
		&addedBy.ID,
		&workspaceID,
	)

	return nil
}

func (s *MembershipService) ChangeMemberRole(
	workspaceID uuid.UUID,
	memberUserID uuid.UUID,
	request *workspaces_dto.ChangeMemberRoleRequestDTO,
	changedBy *users_models.User,
) error {
	workspace, err := s.loadManagedWorkspace(workspaceID, changedBy)
	if err != nil {
		return err
	}

	if memberUserID == changedBy.ID {
		return apperrors.BusinessRule("cannot change your own role")
	}

	if err := workspace.ChangeMemberRole(memberUserID, request.Role); err != nil {
		return err
	}

	if err := s.workspaceRepository.SaveAggregate(workspace); err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Member role changed to %s for user %s", request.Role, memberUserID),
		&changedBy.ID,
		&workspaceID,
	)

	return nil
}

func (s *MembershipService) RemoveMember(
	workspaceID uuid.UUID,
	memberUserID uuid.UUID,
	removedBy *users_models.User,
) error {
	workspace, err := s.loadManagedWorkspace(workspaceID, removedBy)
	if err != nil {
		return err
	}

	// demoting or removing another admin is reserved for the owner
	if s.isAdminRow(workspace, memberUserID) &&
		removedBy.Role != users_enums.UserRoleAdmin &&
		!workspace.IsOwner(removedBy.ID) {
		return apperrors.Unauthorized("only workspace owner can remove admins")
	}

	if err := workspace.RemoveMember(memberUserID); err != nil {
		return err
	}

	if err := s.workspaceRepository.SaveAggregate(workspace); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Member removed from workspace: %s", memberUserID),
		&removedBy.ID,
		&workspaceID,
	)

	return nil
}

func (s *MembershipService) loadManagedWorkspace(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.workspaceService.loadWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	if user.Role != users_enums.UserRoleAdmin && !workspace.CanManageInvitations(user.ID) {
		return nil, apperrors.Unauthorized("insufficient permissions to manage members")
	}

	return workspace, nil
}

func (s *MembershipService) isAdminRow(
	workspace *workspaces_models.Workspace,
	userID uuid.UUID,
) bool {
	for _, member := range workspace.Members {
		if member.UserID == userID {
			return member.Role == workspaces_enums.WorkspaceMemberRoleAdmin
		}
	}

	return false
}
