package projects_models

import (
	"time"

	projects_enums "teamspace-backend/internal/features/projects/enums"
	"teamspace-backend/internal/util/apperrors"

	"github.com/google/uuid"
)

// Project is the aggregate root for project membership and tasks.
// Member and task mutations go through its methods so progress and
// uniqueness invariants hold after every change.
type Project struct {
	ID          uuid.UUID                    `json:"id"          gorm:"type:uuid;primaryKey"`
	Name        string                       `json:"name"        gorm:"not null"`
	Description *string                      `json:"description"`
	Priority    projects_enums.ProjectPriority `json:"priority"  gorm:"type:varchar(20);not null"`
	Status      projects_enums.ProjectStatus `json:"status"      gorm:"type:varchar(20);not null"`
	StartDate   time.Time                    `json:"startDate"   gorm:"not null"`
	EndDate     time.Time                    `json:"endDate"     gorm:"not null"`
	TeamLeadID  *uuid.UUID                   `json:"teamLeadId"  gorm:"type:uuid"`
	WorkspaceID uuid.UUID                    `json:"workspaceId" gorm:"type:uuid;not null;index"`
	Progress    int                          `json:"progress"    gorm:"not null;default:0"`
	CreatedAt   time.Time                    `json:"createdAt"   gorm:"not null"`
	UpdatedAt   time.Time                    `json:"updatedAt"   gorm:"not null"`

	Members []ProjectMember `json:"members" gorm:"foreignKey:ProjectID"`
	Tasks   []Task          `json:"tasks"   gorm:"foreignKey:ProjectID"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) IsTeamLead(userID uuid.UUID) bool {
	return p.TeamLeadID != nil && *p.TeamLeadID == userID
}

func (p *Project) IsMember(userID uuid.UUID) bool {
	if p.IsTeamLead(userID) {
		return true
	}

	for _, member := range p.Members {
		if member.UserID == userID {
			return true
		}
	}

	return false
}

func (p *Project) AddMember(userID uuid.UUID) error {
	for _, member := range p.Members {
		if member.UserID == userID {
			return apperrors.Conflict("user is already a member of this project")
		}
	}

	p.Members = append(p.Members, ProjectMember{
		ID:        uuid.New(),
		UserID:    userID,
		ProjectID: p.ID,
		AddedAt:   time.Now().UTC(),
	})

	return nil
}

func (p *Project) RemoveMember(userID uuid.UUID) error {
	if p.IsTeamLead(userID) {
		return apperrors.BusinessRule("team lead cannot be removed from the project")
	}

	for i, member := range p.Members {
		if member.UserID == userID {
			p.Members = append(p.Members[:i], p.Members[i+1:]...)
			return nil
		}
	}

	return nil
}

func (p *Project) AddTask(task Task) error {
	if task.ProjectID != p.ID {
		return apperrors.BusinessRule("task does not belong to this project")
	}

	p.Tasks = append(p.Tasks, task)
	p.updateProgress()

	return nil
}

func (p *Project) UpdateTaskStatus(taskID uuid.UUID, status projects_enums.TaskStatus) error {
	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			p.Tasks[i].Status = status
			p.Tasks[i].UpdatedAt = time.Now().UTC()
			p.updateProgress()

			return nil
		}
	}

	return apperrors.NotFound("task not found in this project")
}

// updateProgress recomputes completion as done/total scaled to 100
// with integer truncation. A project without tasks sits at 0.
func (p *Project) updateProgress() {
	if len(p.Tasks) == 0 {
		p.Progress = 0
		return
	}

	done := 0
	for _, task := range p.Tasks {
		if task.Status == projects_enums.TaskStatusDone {
			done++
		}
	}

	p.Progress = done * 100 / len(p.Tasks)
}

// ChangeStatus allows every transition except reopening a completed
// project back to planning.
func (p *Project) ChangeStatus(status projects_enums.ProjectStatus) error {
	if p.Status == projects_enums.ProjectStatusCompleted &&
		status == projects_enums.ProjectStatusPlanning {
		return apperrors.BusinessRule("completed project cannot return to planning")
	}

	p.Status = status
	p.UpdatedAt = time.Now().UTC()

	return nil
}

type TaskStatistics struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
	Blocked    int `json:"blocked"`
}

func (p *Project) GetTaskStatistics() TaskStatistics {
	stats := TaskStatistics{Total: len(p.Tasks)}

	for _, task := range p.Tasks {
		switch task.Status {
		case projects_enums.TaskStatusTodo:
			stats.Todo++
		case projects_enums.TaskStatusInProgress:
			stats.InProgress++
		case projects_enums.TaskStatusDone:
			stats.Done++
		case projects_enums.TaskStatusBlocked:
			stats.Blocked++
		}
	}

	return stats
}

func ValidateDates(startDate time.Time, endDate time.Time) error {
	if !startDate.Before(endDate) {
		return apperrors.BusinessRule("start date must be before end date")
	}

	return nil
}
