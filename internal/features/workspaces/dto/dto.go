package workspaces_dto

import (
	"time"

	workspaces_enums "teamspace-backend/internal/features/workspaces/enums"
	workspaces_models "teamspace-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
)

// Workspace DTOs
type CreateWorkspaceRequestDTO struct {
	Name        string                              `json:"name"        binding:"required,min=1,max=255"`
	Slug        string                              `json:"slug"        binding:"required,min=1,max=100"`
	Description *string                             `json:"description"`
	Settings    workspaces_models.WorkspaceSettings `json:"settings"`
}

type UpdateWorkspaceRequestDTO struct {
	Name        string                              `json:"name"        binding:"required,min=1,max=255"`
	Description *string                             `json:"description"`
	Settings    workspaces_models.WorkspaceSettings `json:"settings"`
}

type WorkspaceResponseDTO struct {
	ID          uuid.UUID                           `json:"id"`
	Name        string                              `json:"name"`
	Slug        string                              `json:"slug"`
	Description *string                             `json:"description"`
	OwnerID     uuid.UUID                           `json:"ownerId"`
	Settings    workspaces_models.WorkspaceSettings `json:"settings"`
	CreatedAt   time.Time                           `json:"createdAt"`
	UpdatedAt   time.Time                           `json:"updatedAt"`
}

type ListWorkspacesResponseDTO struct {
	Workspaces []WorkspaceResponseDTO `json:"workspaces"`
}

// Membership DTOs
type AddMemberRequestDTO struct {
	Email       string                               `json:"email"       binding:"required,email"`
	Role        workspaces_enums.WorkspaceMemberRole `json:"role"        binding:"required"`
	JoinMessage string                               `json:"joinMessage"`
}

type ChangeMemberRoleRequestDTO struct {
	Role workspaces_enums.WorkspaceMemberRole `json:"role" binding:"required"`
}

type WorkspaceMemberResponseDTO struct {
	ID          uuid.UUID                            `json:"id"`
	UserID      uuid.UUID                            `json:"userId"`
	Email       string                               `json:"email"` // populated from user join
	Name        string                               `json:"name"`  // populated from user join
	Role        workspaces_enums.WorkspaceMemberRole `json:"role"`
	JoinMessage string                               `json:"joinMessage"`
	JoinedAt    time.Time                            `json:"joinedAt"`
}

type GetMembersResponseDTO struct {
	Members []WorkspaceMemberResponseDTO `json:"members"`
}

func ToWorkspaceResponse(workspace *workspaces_models.Workspace) WorkspaceResponseDTO {
	return WorkspaceResponseDTO{
		ID:          workspace.ID,
		Name:        workspace.Name,
		Slug:        workspace.Slug,
		Description: workspace.Description,
		OwnerID:     workspace.OwnerID,
		Settings:    workspace.Settings,
		CreatedAt:   workspace.CreatedAt,
		UpdatedAt:   workspace.UpdatedAt,
	}
}
