package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectMember struct {
	ID        uuid.UUID `json:"id"        gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId"    gorm:"type:uuid;not null;uniqueIndex:idx_project_members_user_project"`
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_project_members_user_project"`
	AddedAt   time.Time `json:"addedAt"   gorm:"not null"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}
