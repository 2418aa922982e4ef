package invitations_dto

import (
	invitations_models "teamspace-backend/internal/features/invitations/models"
	workspaces_enums "teamspace-backend/internal/features/workspaces/enums"

	"github.com/google/uuid"
)

type InviteToWorkspaceRequestDTO struct {
	WorkspaceID uuid.UUID                            `json:"workspaceId" binding:"required"`
	Email       string                               `json:"email"       binding:"required,email"`
	Role        workspaces_enums.WorkspaceMemberRole `json:"role"        binding:"required"`
}

type InviteToProjectRequestDTO struct {
	ProjectID uuid.UUID `json:"projectId" binding:"required"`
	Email     string    `json:"email"     binding:"required,email"`
}

type ListInvitationsResponseDTO struct {
	Invitations []*invitations_models.Invitation `json:"invitations"`
}
