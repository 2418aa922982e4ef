package invitations_interfaces

import (
	invitations_enums "teamspace-backend/internal/features/invitations/enums"
	invitations_models "teamspace-backend/internal/features/invitations/models"
	projects_models "teamspace-backend/internal/features/projects/models"
	users_models "teamspace-backend/internal/features/users/models"
	workspaces_models "teamspace-backend/internal/features/workspaces/models"

	"github.com/google/uuid"
)

// InvitationStore is the persistence boundary for invitations. Lookup
// methods return nil without error when no row matches.
type InvitationStore interface {
	CreateInvitation(invitation *invitations_models.Invitation) error
	UpdateInvitation(invitation *invitations_models.Invitation) error
	GetInvitationByID(invitationID uuid.UUID) (*invitations_models.Invitation, error)
	GetInvitationByToken(token string) (*invitations_models.Invitation, error)
	FindPendingInvitation(
		email string,
		workspaceID *uuid.UUID,
		projectID *uuid.UUID,
	) (*invitations_models.Invitation, error)
	GetWorkspaceInvitations(
		workspaceID uuid.UUID,
		status *invitations_enums.InvitationStatus,
	) ([]*invitations_models.Invitation, error)
	GetPendingInvitationsForEmail(email string) ([]*invitations_models.Invitation, error)
}

type WorkspaceStore interface {
	GetWorkspaceByID(workspaceID uuid.UUID) (*workspaces_models.Workspace, error)
	SaveAggregate(workspace *workspaces_models.Workspace) error
}

type ProjectStore interface {
	GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error)
	SaveAggregate(project *projects_models.Project) error
}

type SettingsStore interface {
	GetSettings() (*users_models.UsersSettings, error)
}
