package workspaces_services

import (
	"fmt"
	"time"

	"teamspace-backend/internal/features/audit_logs"
	users_enums "teamspace-backend/internal/features/users/enums"
	users_models "teamspace-backend/internal/features/users/models"
	users_services "teamspace-backend/internal/features/users/services"
	workspaces_dto "teamspace-backend/internal/features/workspaces/dto"
	workspaces_models "teamspace-backend/internal/features/workspaces/models"
	workspaces_repositories "teamspace-backend/internal/features/workspaces/repositories"
	"teamspace-backend/internal/util/apperrors"

	"github.com/google/uuid"
)

type WorkspaceService struct {
	workspaceRepository *workspaces_repositories.WorkspaceRepository
	settingsService     *users_services.SettingsService
	auditLogService     *audit_logs.AuditLogService
}

func (s *WorkspaceService) CreateWorkspace(
	request *workspaces_dto.CreateWorkspaceRequestDTO,
	creator *users_models.User,
) (*workspaces_dto.WorkspaceResponseDTO, error) {
	settings, err := s.settingsService.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if !creator.CanCreateWorkspaces(settings) {
		return nil, apperrors.Unauthorized("insufficient permissions to create workspaces")
	}

	if !workspaces_models.IsValidSlug(request.Slug) {
		return nil, apperrors.BusinessRule(
			"slug must be lowercase alphanumeric with single hyphens",
		)
	}

	existing, err := s.workspaceRepository.GetWorkspaceBySlug(request.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("workspace with this slug already exists")
	}

	now := time.Now().UTC()
	workspace := &workspaces_models.Workspace{
		ID:          uuid.New(),
		Name:        request.Name,
		Slug:        request.Slug,
		Description: request.Description,
		OwnerID:     creator.ID,
		Settings:    request.Settings,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.workspaceRepository.CreateWorkspace(workspace); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace created: %s", workspace.Name),
		&creator.ID,
		&workspace.ID,
	)

	response := workspaces_dto.ToWorkspaceResponse(workspace)
	return &response, nil
}

func (s *WorkspaceService) GetWorkspace(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.loadWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	if !s.canAccess(workspace, user) {
		return nil, apperrors.Unauthorized("insufficient permissions to view workspace")
	}

	return workspace, nil
}

func (s *WorkspaceService) GetUserWorkspaces(
	user *users_models.User,
) (*workspaces_dto.ListWorkspacesResponseDTO, error) {
	workspaces, err := s.workspaceRepository.GetUserWorkspaces(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user workspaces: %w", err)
	}

	responses := make([]workspaces_dto.WorkspaceResponseDTO, len(workspaces))
	for i, workspace := range workspaces {
		responses[i] = workspaces_dto.ToWorkspaceResponse(workspace)
	}

	return &workspaces_dto.ListWorkspacesResponseDTO{
		Workspaces: responses,
	}, nil
}

func (s *WorkspaceService) UpdateWorkspace(
	workspaceID uuid.UUID,
	request *workspaces_dto.UpdateWorkspaceRequestDTO,
	user *users_models.User,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.loadWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	if !s.canManage(workspace, user) {
		return nil, apperrors.Unauthorized("insufficient permissions to update workspace")
	}

	workspace.Name = request.Name
	workspace.Description = request.Description
	if request.Settings != nil {
		workspace.Settings = request.Settings
	}
	workspace.UpdatedAt = time.Now().UTC()

	if err := s.workspaceRepository.SaveAggregate(workspace); err != nil {
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace updated: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return workspace, nil
}

func (s *WorkspaceService) DeleteWorkspace(workspaceID uuid.UUID, user *users_models.User) error {
	workspace, err := s.loadWorkspace(workspaceID)
	if err != nil {
		return err
	}

	if user.Role != users_enums.UserRoleAdmin && !workspace.IsOwner(user.ID) {
		return apperrors.Unauthorized("only workspace owner or admin can delete workspace")
	}

	if err := s.workspaceRepository.DeleteWorkspace(workspaceID); err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Workspace deleted: %s", workspace.Name),
		&user.ID,
		&workspaceID,
	)

	return nil
}

func (s *WorkspaceService) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	user *users_models.User,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	workspace, err := s.loadWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	if !s.canAccess(workspace, user) {
		return nil, apperrors.Unauthorized("insufficient permissions to view workspace audit logs")
	}

	return s.auditLogService.GetWorkspaceAuditLogs(workspaceID, request)
}

func (s *WorkspaceService) GetWorkspaceByID(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	return s.loadWorkspace(workspaceID)
}

func (s *WorkspaceService) loadWorkspace(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	if workspace == nil {
		return nil, apperrors.NotFound("workspace not found")
	}

	return workspace, nil
}

// Global admins can see and manage everything; everyone else goes
// through the aggregate's membership policy.

func (s *WorkspaceService) canAccess(
	workspace *workspaces_models.Workspace,
	user *users_models.User,
) bool {
	return user.Role == users_enums.UserRoleAdmin || workspace.IsMember(user.ID)
}

func (s *WorkspaceService) canManage(
	workspace *workspaces_models.Workspace,
	user *users_models.User,
) bool {
	return user.Role == users_enums.UserRoleAdmin || workspace.IsAdmin(user.ID)
}
