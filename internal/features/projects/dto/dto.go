package projects_dto

import (
	"time"

	projects_enums "teamspace-backend/internal/features/projects/enums"
	projects_models "teamspace-backend/internal/features/projects/models"

	"github.com/google/uuid"
)

type CreateProjectRequestDTO struct {
	Name        string                         `json:"name"        binding:"required,min=1,max=255"`
	Description *string                        `json:"description"`
	Priority    projects_enums.ProjectPriority `json:"priority"    binding:"required"`
	StartDate   time.Time                      `json:"startDate"   binding:"required"`
	EndDate     time.Time                      `json:"endDate"     binding:"required"`
	TeamLeadID  *uuid.UUID                     `json:"teamLeadId"`
	WorkspaceID uuid.UUID                      `json:"workspaceId" binding:"required"`
}

type UpdateProjectRequestDTO struct {
	Name        string                         `json:"name"        binding:"required,min=1,max=255"`
	Description *string                        `json:"description"`
	Priority    projects_enums.ProjectPriority `json:"priority"    binding:"required"`
	StartDate   time.Time                      `json:"startDate"   binding:"required"`
	EndDate     time.Time                      `json:"endDate"     binding:"required"`
	TeamLeadID  *uuid.UUID                     `json:"teamLeadId"`
}

type ChangeProjectStatusRequestDTO struct {
	Status projects_enums.ProjectStatus `json:"status" binding:"required"`
}

type AddProjectMemberRequestDTO struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}

type CreateTaskRequestDTO struct {
	Title       string     `json:"title"       binding:"required,min=1,max=255"`
	Description *string    `json:"description"`
	AssigneeID  *uuid.UUID `json:"assigneeId"`
}

type UpdateTaskStatusRequestDTO struct {
	Status projects_enums.TaskStatus `json:"status" binding:"required"`
}

type ProjectResponseDTO struct {
	ID          uuid.UUID                      `json:"id"`
	Name        string                         `json:"name"`
	Description *string                        `json:"description"`
	Priority    projects_enums.ProjectPriority `json:"priority"`
	Status      projects_enums.ProjectStatus   `json:"status"`
	StartDate   time.Time                      `json:"startDate"`
	EndDate     time.Time                      `json:"endDate"`
	TeamLeadID  *uuid.UUID                     `json:"teamLeadId"`
	WorkspaceID uuid.UUID                      `json:"workspaceId"`
	Progress    int                            `json:"progress"`
	CreatedAt   time.Time                      `json:"createdAt"`
	UpdatedAt   time.Time                      `json:"updatedAt"`
}

type ListProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}

type ProjectMemberResponseDTO struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"userId"`
	Email   string    `json:"email"` // populated from user join
	Name    string    `json:"name"`  // populated from user join
	AddedAt time.Time `json:"addedAt"`
}

type GetProjectMembersResponseDTO struct {
	Members []ProjectMemberResponseDTO `json:"members"`
}

func ToProjectResponse(project *projects_models.Project) ProjectResponseDTO {
	return ProjectResponseDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Priority:    project.Priority,
		Status:      project.Status,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		TeamLeadID:  project.TeamLeadID,
		WorkspaceID: project.WorkspaceID,
		Progress:    project.Progress,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
