package workspaces_repositories

import (
	"errors"

	workspaces_dto "teamspace-backend/internal/features/workspaces/dto"
	workspaces_models "teamspace-backend/internal/features/workspaces/models"
	"teamspace-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceRepository struct{}

func (r *WorkspaceRepository) CreateWorkspace(workspace *workspaces_models.Workspace) error {
	return storage.GetDb().Omit("Members").Create(workspace).Error
}

// GetWorkspaceByID loads the full aggregate including its member set.
// Returns nil when the workspace does not exist.
func (r *WorkspaceRepository) GetWorkspaceByID(
	workspaceID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	err := storage.GetDb().
		Preload("Members").
		Where("id = ?", workspaceID).
		First(&workspace).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &workspace, nil
}

func (r *WorkspaceRepository) GetWorkspaceBySlug(
	slug string,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	err := storage.GetDb().
		Preload("Members").
		Where("slug = ?", slug).
		First(&workspace).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &workspace, nil
}

// SaveAggregate persists the workspace row and reconciles the member
// set with the in-memory aggregate in one transaction.
func (r *WorkspaceRepository) SaveAggregate(workspace *workspaces_models.Workspace) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Members").Save(workspace).Error; err != nil {
			return err
		}

		memberIDs := make([]uuid.UUID, 0, len(workspace.Members))
		for _, member := range workspace.Members {
			memberIDs = append(memberIDs, member.ID)
		}

		query := tx.Where("workspace_id = ?", workspace.ID)
		if len(memberIDs) > 0 {
			query = query.Where("id NOT IN ?", memberIDs)
		}
		if err := query.Delete(&workspaces_models.WorkspaceMember{}).Error; err != nil {
			return err
		}

		for i := range workspace.Members {
			if err := tx.Save(&workspace.Members[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *WorkspaceRepository) DeleteWorkspace(workspaceID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workspace_id = ?", workspaceID).
			Delete(&workspaces_models.WorkspaceMember{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", workspaceID).
			Delete(&workspaces_models.Workspace{}).Error
	})
}

// GetUserWorkspaces returns workspaces the user owns or belongs to.
func (r *WorkspaceRepository) GetUserWorkspaces(
	userID uuid.UUID,
) ([]*workspaces_models.Workspace, error) {
	var workspaces []*workspaces_models.Workspace

	err := storage.GetDb().
		Preload("Members").
		Where(
			"owner_id = ? OR id IN (SELECT workspace_id FROM workspace_members WHERE user_id = ?)",
			userID,
			userID,
		).
		Order("name ASC").
		Find(&workspaces).Error

	return workspaces, err
}

// GetWorkspaceMembers returns member rows joined with user identity for
// listing; the aggregate itself only carries ids.
func (r *WorkspaceRepository) GetWorkspaceMembers(
	workspaceID uuid.UUID,
) ([]*workspaces_dto.WorkspaceMemberResponseDTO, error) {
	var members []*workspaces_dto.WorkspaceMemberResponseDTO

	err := storage.GetDb().
		Table("workspace_members wm").
		Select("wm.id, wm.user_id, u.email, u.name, wm.role, wm.join_message, wm.joined_at").
		Joins("JOIN users u ON wm.user_id = u.id").
		Where("wm.workspace_id = ?", workspaceID).
		Order("wm.joined_at ASC").
		Scan(&members).Error

	return members, err
}
