package invitations_services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	invitations_dto "teamspace-backend/internal/features/invitations/dto"
	invitations_enums "teamspace-backend/internal/features/invitations/enums"
	invitations_interfaces "teamspace-backend/internal/features/invitations/interfaces"
	invitations_models "teamspace-backend/internal/features/invitations/models"
	users_enums "teamspace-backend/internal/features/users/enums"
	users_interfaces "teamspace-backend/internal/features/users/interfaces"
	users_models "teamspace-backend/internal/features/users/models"
	workspaces_enums "teamspace-backend/internal/features/workspaces/enums"
	"teamspace-backend/internal/util/apperrors"
	"teamspace-backend/internal/util/tokens"

	"github.com/google/uuid"
)

// InvitationService drives the invitation lifecycle:
// PENDING moves to exactly one of ACCEPTED, EXPIRED or REVOKED.
// Expiry is evaluated lazily at accept time; there is no background sweep.
type InvitationService struct {
	invitationStore invitations_interfaces.InvitationStore
	workspaceStore  invitations_interfaces.WorkspaceStore
	projectStore    invitations_interfaces.ProjectStore
	settingsStore   invitations_interfaces.SettingsStore
	logger          *slog.Logger
	auditLogWriter  users_interfaces.AuditLogWriter
}

func NewInvitationService(
	invitationStore invitations_interfaces.InvitationStore,
	workspaceStore invitations_interfaces.WorkspaceStore,
	projectStore invitations_interfaces.ProjectStore,
	settingsStore invitations_interfaces.SettingsStore,
	logger *slog.Logger,
) *InvitationService {
	return &InvitationService{
		invitationStore: invitationStore,
		workspaceStore:  workspaceStore,
		projectStore:    projectStore,
		settingsStore:   settingsStore,
		logger:          logger,
	}
}

func (s *InvitationService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *InvitationService) InviteToWorkspace(
	request *invitations_dto.InviteToWorkspaceRequestDTO,
	invitedBy *users_models.User,
) (*invitations_models.Invitation, error) {
	workspace, err := s.workspaceStore.GetWorkspaceByID(request.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if workspace == nil {
		return nil, apperrors.NotFound("workspace not found")
	}

	if invitedBy.Role != users_enums.UserRoleAdmin &&
		!workspace.CanManageInvitations(invitedBy.ID) {
		return nil, apperrors.Unauthorized("insufficient permissions to invite to workspace")
	}

	if err := s.checkInvitationsEnabled(invitedBy); err != nil {
		return nil, err
	}

	if !request.Role.IsValid() {
		return nil, apperrors.BusinessRule("invalid workspace member role")
	}

	invitation, err := s.createInvitation(
		invitations_enums.InvitationTypeWorkspace,
		&request.WorkspaceID,
		nil,
		request.Email,
		invitedBy.ID,
	)
	if err != nil {
		return nil, err
	}

	s.writeAuditLog(
		fmt.Sprintf("Invitation sent to %s for workspace %s", request.Email, workspace.Name),
		&invitedBy.ID,
		&workspace.ID,
	)

	return invitation, nil
}

func (s *InvitationService) InviteToProject(
	request *invitations_dto.InviteToProjectRequestDTO,
	invitedBy *users_models.User,
) (*invitations_models.Invitation, error) {
	project, err := s.projectStore.GetProjectByID(request.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if project == nil {
		return nil, apperrors.NotFound("project not found")
	}

	workspace, err := s.workspaceStore.GetWorkspaceByID(project.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if workspace == nil {
		return nil, apperrors.NotFound("workspace not found")
	}

	if invitedBy.Role != users_enums.UserRoleAdmin &&
		!workspace.CanManageInvitations(invitedBy.ID) &&
		!project.IsTeamLead(invitedBy.ID) {
		return nil, apperrors.Unauthorized("insufficient permissions to invite to project")
	}

	if err := s.checkInvitationsEnabled(invitedBy); err != nil {
		return nil, err
	}

	invitation, err := s.createInvitation(
		invitations_enums.InvitationTypeProject,
		nil,
		&request.ProjectID,
		request.Email,
		invitedBy.ID,
	)
	if err != nil {
		return nil, err
	}

	s.writeAuditLog(
		fmt.Sprintf("Invitation sent to %s for project %s", request.Email, project.Name),
		&invitedBy.ID,
		&workspace.ID,
	)

	return invitation, nil
}

// checkInvitationsEnabled enforces the installation-wide member
// invitation toggle. Global admins are exempt.
func (s *InvitationService) checkInvitationsEnabled(invitedBy *users_models.User) error {
	settings, err := s.settingsStore.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !invitedBy.CanInviteUsers(settings) {
		return apperrors.Unauthorized("member invitations are disabled")
	}

	return nil
}

func (s *InvitationService) createInvitation(
	invitationType invitations_enums.InvitationType,
	workspaceID *uuid.UUID,
	projectID *uuid.UUID,
	email string,
	invitedByID uuid.UUID,
) (*invitations_models.Invitation, error) {
	existing, err := s.invitationStore.FindPendingInvitation(email, workspaceID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("email already has a pending invitation")
	}

	token, err := tokens.GenerateInviteToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	now := time.Now().UTC()
	invitation := &invitations_models.Invitation{
		ID:          uuid.New(),
		Email:       email,
		Token:       token,
		Type:        invitationType,
		WorkspaceID: workspaceID,
		ProjectID:   projectID,
		InvitedByID: invitedByID,
		Status:      invitations_enums.InvitationStatusPending,
		ExpiresAt:   now.Add(invitations_models.InvitationTTL),
		CreatedAt:   now,
	}

	if err := s.invitationStore.CreateInvitation(invitation); err != nil {
		return nil, err
	}

	// TODO: send the invitation email once outbound delivery is wired up
	s.logger.Info(
		"invitation created, email delivery skipped",
		"invitationId", invitation.ID,
		"email", email,
	)

	return invitation, nil
}

// Accept consumes an invitation by token. An expired invitation is
// transitioned to EXPIRED by this call even though acceptance fails.
// When userID is nil the invitation is still marked ACCEPTED without
// creating a membership, so an invitee can accept before signing up.
func (s *InvitationService) Accept(
	token string,
	userID *uuid.UUID,
) (*invitations_models.Invitation, error) {
	invitation, err := s.invitationStore.GetInvitationByToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	if invitation == nil {
		return nil, apperrors.NotFound("invitation not found")
	}

	if !invitation.IsPending() {
		return nil, apperrors.Conflict("invitation is no longer valid")
	}

	if invitation.IsExpiredAt(time.Now().UTC()) {
		invitation.Status = invitations_enums.InvitationStatusExpired
		if err := s.invitationStore.UpdateInvitation(invitation); err != nil {
			return nil, fmt.Errorf("failed to expire invitation: %w", err)
		}

		return nil, apperrors.Expired("invitation has expired")
	}

	if userID != nil {
		if err := s.materializeMembership(invitation, *userID); err != nil {
			return nil, err
		}
	}

	invitation.Status = invitations_enums.InvitationStatusAccepted
	if err := s.invitationStore.UpdateInvitation(invitation); err != nil {
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	s.writeAuditLog(
		fmt.Sprintf("Invitation accepted by %s", invitation.Email),
		userID,
		invitation.WorkspaceID,
	)

	return invitation, nil
}

func (s *InvitationService) materializeMembership(
	invitation *invitations_models.Invitation,
	userID uuid.UUID,
) error {
	switch invitation.Type {
	case invitations_enums.InvitationTypeWorkspace:
		workspace, err := s.workspaceStore.GetWorkspaceByID(*invitation.WorkspaceID)
		if err != nil {
			return fmt.Errorf("failed to get workspace: %w", err)
		}
		if workspace == nil {
			return apperrors.NotFound("workspace not found")
		}

		if err := workspace.AddMember(
			userID,
			workspaces_enums.WorkspaceMemberRoleMember,
			"",
		); err != nil {
			// membership already existing does not block acceptance
			if errors.Is(err, apperrors.ErrConflict) {
				s.logger.Warn(
					"invitation accepted by an existing member",
					"invitationId", invitation.ID,
					"userId", userID,
				)

				return nil
			}

			return err
		}

		if err := s.workspaceStore.SaveAggregate(workspace); err != nil {
			return fmt.Errorf("failed to save workspace: %w", err)
		}

	case invitations_enums.InvitationTypeProject:
		project, err := s.projectStore.GetProjectByID(*invitation.ProjectID)
		if err != nil {
			return fmt.Errorf("failed to get project: %w", err)
		}
		if project == nil {
			return apperrors.NotFound("project not found")
		}

		if err := project.AddMember(userID); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				s.logger.Warn(
					"invitation accepted by an existing member",
					"invitationId", invitation.ID,
					"userId", userID,
				)

				return nil
			}

			return err
		}

		if err := s.projectStore.SaveAggregate(project); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}
	}

	return nil
}

func (s *InvitationService) Revoke(invitationID uuid.UUID, user *users_models.User) error {
	invitation, err := s.invitationStore.GetInvitationByID(invitationID)
	if err != nil {
		return fmt.Errorf("failed to get invitation: %w", err)
	}
	if invitation == nil {
		return apperrors.NotFound("invitation not found")
	}

	if !invitation.IsPending() {
		return apperrors.Conflict("only pending invitations can be revoked")
	}

	if invitation.Type == invitations_enums.InvitationTypeWorkspace {
		workspace, err := s.workspaceStore.GetWorkspaceByID(*invitation.WorkspaceID)
		if err != nil {
			return fmt.Errorf("failed to get workspace: %w", err)
		}
		if workspace == nil {
			return apperrors.NotFound("workspace not found")
		}

		if user.Role != users_enums.UserRoleAdmin &&
			!workspace.CanManageInvitations(user.ID) {
			return apperrors.Unauthorized("insufficient permissions to revoke invitation")
		}
	}
	// TODO: project revocations skip the permission check above; align
	// them with the workspace path after the product decision on who may
	// revoke project invitations

	invitation.Status = invitations_enums.InvitationStatusRevoked
	if err := s.invitationStore.UpdateInvitation(invitation); err != nil {
		return fmt.Errorf("failed to revoke invitation: %w", err)
	}

	s.writeAuditLog(
		fmt.Sprintf("Invitation for %s revoked", invitation.Email),
		&user.ID,
		invitation.WorkspaceID,
	)

	return nil
}

func (s *InvitationService) GetWorkspaceInvitations(
	workspaceID uuid.UUID,
	user *users_models.User,
	status *invitations_enums.InvitationStatus,
) (*invitations_dto.ListInvitationsResponseDTO, error) {
	workspace, err := s.workspaceStore.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	if workspace == nil {
		return nil, apperrors.NotFound("workspace not found")
	}

	if user.Role != users_enums.UserRoleAdmin &&
		!workspace.CanManageInvitations(user.ID) {
		return nil, apperrors.Unauthorized("insufficient permissions to view invitations")
	}

	// without an explicit filter only pending invitations are listed
	if status == nil {
		pending := invitations_enums.InvitationStatusPending
		status = &pending
	}

	invitations, err := s.invitationStore.GetWorkspaceInvitations(workspaceID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace invitations: %w", err)
	}

	return &invitations_dto.ListInvitationsResponseDTO{Invitations: invitations}, nil
}

// GetPendingForEmail is intentionally unauthenticated so an invitee can
// check for invitations before having an account.
func (s *InvitationService) GetPendingForEmail(
	email string,
) (*invitations_dto.ListInvitationsResponseDTO, error) {
	invitations, err := s.invitationStore.GetPendingInvitationsForEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending invitations: %w", err)
	}

	return &invitations_dto.ListInvitationsResponseDTO{Invitations: invitations}, nil
}

func (s *InvitationService) writeAuditLog(
	message string,
	userID *uuid.UUID,
	workspaceID *uuid.UUID,
) {
	if s.auditLogWriter == nil {
		return
	}

	s.auditLogWriter.WriteAuditLog(message, userID, workspaceID)
}
