package projects_repositories

import (
	"errors"

	projects_dto "teamspace-backend/internal/features/projects/dto"
	projects_models "teamspace-backend/internal/features/projects/models"
	"teamspace-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(project *projects_models.Project) error {
	return storage.GetDb().Omit("Members", "Tasks").Create(project).Error
}

// GetProjectByID loads the full aggregate including members and tasks.
// Returns nil when the project does not exist.
func (r *ProjectRepository) GetProjectByID(
	projectID uuid.UUID,
) (*projects_models.Project, error) {
	var project projects_models.Project

	err := storage.GetDb().
		Preload("Members").
		Preload("Tasks").
		Where("id = ?", projectID).
		First(&project).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

// SaveAggregate persists the project row and reconciles members and
// tasks with the in-memory aggregate in one transaction.
func (r *ProjectRepository) SaveAggregate(project *projects_models.Project) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Members", "Tasks").Save(project).Error; err != nil {
			return err
		}

		memberIDs := make([]uuid.UUID, 0, len(project.Members))
		for _, member := range project.Members {
			memberIDs = append(memberIDs, member.ID)
		}

		memberQuery := tx.Where("project_id = ?", project.ID)
		if len(memberIDs) > 0 {
			memberQuery = memberQuery.Where("id NOT IN ?", memberIDs)
		}
		if err := memberQuery.Delete(&projects_models.ProjectMember{}).Error; err != nil {
			return err
		}

		for i := range project.Members {
			if err := tx.Save(&project.Members[i]).Error; err != nil {
				return err
			}
		}

		for i := range project.Tasks {
			if err := tx.Save(&project.Tasks[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *ProjectRepository) DeleteProject(projectID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).
			Delete(&projects_models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", projectID).
			Delete(&projects_models.ProjectMember{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", projectID).
			Delete(&projects_models.Project{}).Error
	})
}

func (r *ProjectRepository) GetWorkspaceProjects(
	workspaceID uuid.UUID,
) ([]*projects_models.Project, error) {
	var projects []*projects_models.Project

	err := storage.GetDb().
		Preload("Members").
		Preload("Tasks").
		Where("workspace_id = ?", workspaceID).
		Order("name ASC").
		Find(&projects).Error

	return projects, err
}

func (r *ProjectRepository) GetProjectMembers(
	projectID uuid.UUID,
) ([]*projects_dto.ProjectMemberResponseDTO, error) {
	var members []*projects_dto.ProjectMemberResponseDTO

	err := storage.GetDb().
		Table("project_members pm").
		Select("pm.id, pm.user_id, u.email, u.name, pm.added_at").
		Joins("JOIN users u ON pm.user_id = u.id").
		Where("pm.project_id = ?", projectID).
		Order("pm.added_at ASC").
		Scan(&members).Error

	return members, err
}
