package invitations_testing

import (
	"sort"

	invitations_enums "teamspace-backend/internal/features/invitations/enums"
	invitations_models "teamspace-backend/internal/features/invitations/models"
	projects_models "teamspace-backend/internal/features/projects/models"
	users_models "teamspace-backend/internal/features/users/models"
	workspaces_models "teamspace-backend/internal/features/workspaces/models"
	"teamspace-backend/internal/util/apperrors"

	"github.com/google/uuid"
)

// In-memory stores mirroring the persistence contracts, so the
// invitation lifecycle can be exercised without a database.

type InMemoryInvitationStore struct {
	Invitations map[uuid.UUID]*invitations_models.Invitation
}

func NewInMemoryInvitationStore() *InMemoryInvitationStore {
	return &InMemoryInvitationStore{
		Invitations: make(map[uuid.UUID]*invitations_models.Invitation),
	}
}

func (s *InMemoryInvitationStore) CreateInvitation(
	invitation *invitations_models.Invitation,
) error {
	for _, existing := range s.Invitations {
		if existing.Status == invitations_enums.InvitationStatusPending &&
			existing.Email == invitation.Email &&
			sameTarget(existing, invitation) {
			return apperrors.Conflict("email already has a pending invitation")
		}
	}

	copied := *invitation
	s.Invitations[invitation.ID] = &copied

	return nil
}

func (s *InMemoryInvitationStore) UpdateInvitation(
	invitation *invitations_models.Invitation,
) error {
	copied := *invitation
	s.Invitations[invitation.ID] = &copied

	return nil
}

func (s *InMemoryInvitationStore) GetInvitationByID(
	invitationID uuid.UUID,
) (*invitations_models.Invitation, error) {
	invitation, ok := s.Invitations[invitationID]
	if !ok {
		return nil, nil
	}

	copied := *invitation
	return &copied, nil
}

func (s *InMemoryInvitationStore) GetInvitationByToken(
	token string,
) (*invitations_models.Invitation, error) {
	for _, invitation := range s.Invitations {
		if invitation.Token == token {
			copied := *invitation
			return &copied, nil
		}
	}

	return nil, nil
}

func (s *InMemoryInvitationStore) FindPendingInvitation(
	email string,
	workspaceID *uuid.UUID,
	projectID *uuid.UUID,
) (*invitations_models.Invitation, error) {
	probe := &invitations_models.Invitation{
		WorkspaceID: workspaceID,
		ProjectID:   projectID,
	}

	for _, invitation := range s.Invitations {
		if invitation.Status == invitations_enums.InvitationStatusPending &&
			invitation.Email == email &&
			sameTarget(invitation, probe) {
			copied := *invitation
			return &copied, nil
		}
	}

	return nil, nil
}

func (s *InMemoryInvitationStore) GetWorkspaceInvitations(
	workspaceID uuid.UUID,
	status *invitations_enums.InvitationStatus,
) ([]*invitations_models.Invitation, error) {
	var result []*invitations_models.Invitation

	for _, invitation := range s.Invitations {
		if invitation.WorkspaceID == nil || *invitation.WorkspaceID != workspaceID {
			continue
		}
		if status != nil && invitation.Status != *status {
			continue
		}

		copied := *invitation
		result = append(result, &copied)
	}

	sortByCreatedAtDesc(result)

	return result, nil
}

func (s *InMemoryInvitationStore) GetPendingInvitationsForEmail(
	email string,
) ([]*invitations_models.Invitation, error) {
	var result []*invitations_models.Invitation

	for _, invitation := range s.Invitations {
		if invitation.Email == email &&
			invitation.Status == invitations_enums.InvitationStatusPending {
			copied := *invitation
			result = append(result, &copied)
		}
	}

	sortByCreatedAtDesc(result)

	return result, nil
}

func sameTarget(a *invitations_models.Invitation, b *invitations_models.Invitation) bool {
	if a.WorkspaceID != nil && b.WorkspaceID != nil {
		return *a.WorkspaceID == *b.WorkspaceID
	}
	if a.ProjectID != nil && b.ProjectID != nil {
		return *a.ProjectID == *b.ProjectID
	}

	return false
}

func sortByCreatedAtDesc(invitations []*invitations_models.Invitation) {
	sort.Slice(invitations, func(i, j int) bool {
		return invitations[i].CreatedAt.After(invitations[j].CreatedAt)
	})
}

type InMemoryWorkspaceStore struct {
	Workspaces map[uuid.UUID]*workspaces_models.Workspace
}

func NewInMemoryWorkspaceStore() *InMemoryWorkspaceStore {
	return &InMemoryWorkspaceStore{
		Workspaces: make(map[uuid.UUID]*workspaces_models.Workspace),
	}
}

func (s *InMemoryWorkspaceStore) GetWorkspaceByID(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	workspace, ok := s.Workspaces[workspaceID]
	if !ok {
		return nil, nil
	}

	return workspace, nil
}

func (s *InMemoryWorkspaceStore) SaveAggregate(
	workspace *workspaces_models.Workspace,
) error {
	s.Workspaces[workspace.ID] = workspace
	return nil
}

type InMemoryProjectStore struct {
	Projects map[uuid.UUID]*projects_models.Project
}

func NewInMemoryProjectStore() *InMemoryProjectStore {
	return &InMemoryProjectStore{
		Projects: make(map[uuid.UUID]*projects_models.Project),
	}
}

func (s *InMemoryProjectStore) GetProjectByID(
	projectID uuid.UUID,
) (*projects_models.Project, error) {
	project, ok := s.Projects[projectID]
	if !ok {
		return nil, nil
	}

	return project, nil
}

func (s *InMemoryProjectStore) SaveAggregate(project *projects_models.Project) error {
	s.Projects[project.ID] = project
	return nil
}

type InMemorySettingsStore struct {
	Settings *users_models.UsersSettings
}

func NewInMemorySettingsStore() *InMemorySettingsStore {
	return &InMemorySettingsStore{
		Settings: &users_models.UsersSettings{
			IsAllowExternalRegistrations:      true,
			IsAllowMemberInvitations:          true,
			IsMemberAllowedToCreateWorkspaces: true,
		},
	}
}

func (s *InMemorySettingsStore) GetSettings() (*users_models.UsersSettings, error) {
	copied := *s.Settings
	return &copied, nil
}
