package projects_models

import (
	"time"

	projects_enums "teamspace-backend/internal/features/projects/enums"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID                 `json:"id"          gorm:"type:uuid;primaryKey"`
	ProjectID   uuid.UUID                 `json:"projectId"   gorm:"type:uuid;not null;index"`
	Title       string                    `json:"title"       gorm:"not null"`
	Description *string                   `json:"description"`
	Status      projects_enums.TaskStatus `json:"status"      gorm:"type:varchar(20);not null"`
	AssigneeID  *uuid.UUID                `json:"assigneeId"  gorm:"type:uuid"`
	CreatedAt   time.Time                 `json:"createdAt"   gorm:"not null"`
	UpdatedAt   time.Time                 `json:"updatedAt"   gorm:"not null"`
}

func (Task) TableName() string {
	return "tasks"
}
