package invitations_repositories

import (
	"errors"

	invitations_enums "teamspace-backend/internal/features/invitations/enums"
	invitations_models "teamspace-backend/internal/features/invitations/models"
	"teamspace-backend/internal/storage"
	"teamspace-backend/internal/util/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type InvitationRepository struct{}

// CreateInvitation inserts a new invitation. A partial unique index on
// (email, workspace_id/project_id) over PENDING rows closes the
// check-then-insert race; its violation surfaces as Conflict.
func (r *InvitationRepository) CreateInvitation(
	invitation *invitations_models.Invitation,
) error {
	err := storage.GetDb().Create(invitation).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.Conflict("email already has a pending invitation")
		}

		return err
	}

	return nil
}

func (r *InvitationRepository) UpdateInvitation(
	invitation *invitations_models.Invitation,
) error {
	return storage.GetDb().Save(invitation).Error
}

func (r *InvitationRepository) GetInvitationByID(
	invitationID uuid.UUID,
) (*invitations_models.Invitation, error) {
	var invitation invitations_models.Invitation

	err := storage.GetDb().
		Where("id = ?", invitationID).
		First(&invitation).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invitation, nil
}

func (r *InvitationRepository) GetInvitationByToken(
	token string,
) (*invitations_models.Invitation, error) {
	var invitation invitations_models.Invitation

	err := storage.GetDb().
		Where("token = ?", token).
		First(&invitation).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invitation, nil
}

func (r *InvitationRepository) FindPendingInvitation(
	email string,
	workspaceID *uuid.UUID,
	projectID *uuid.UUID,
) (*invitations_models.Invitation, error) {
	var invitation invitations_models.Invitation

	query := storage.GetDb().
		Where("email = ?", email).
		Where("status = ?", invitations_enums.InvitationStatusPending)

	if workspaceID != nil {
		query = query.Where("workspace_id = ?", *workspaceID)
	}
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	err := query.First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invitation, nil
}

func (r *InvitationRepository) GetWorkspaceInvitations(
	workspaceID uuid.UUID,
	status *invitations_enums.InvitationStatus,
) ([]*invitations_models.Invitation, error) {
	var invitations []*invitations_models.Invitation

	query := storage.GetDb().
		Where("workspace_id = ?", workspaceID)

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	err := query.
		Order("created_at DESC").
		Find(&invitations).Error

	return invitations, err
}

func (r *InvitationRepository) GetPendingInvitationsForEmail(
	email string,
) ([]*invitations_models.Invitation, error) {
	var invitations []*invitations_models.Invitation

	err := storage.GetDb().
		Where("email = ?", email).
		Where("status = ?", invitations_enums.InvitationStatusPending).
		Order("created_at DESC").
		Find(&invitations).Error

	return invitations, err
}
