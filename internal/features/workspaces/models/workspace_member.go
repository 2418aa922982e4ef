package workspaces_models

import (
	"time"

	workspaces_enums "teamspace-backend/internal/features/workspaces/enums"

	"github.com/google/uuid"
)

type WorkspaceMember struct {
	ID          uuid.UUID                            `json:"id"          gorm:"column:id"`
	UserID      uuid.UUID                            `json:"userId"      gorm:"column:user_id"`
	WorkspaceID uuid.UUID                            `json:"workspaceId" gorm:"column:workspace_id"`
	Role        workspaces_enums.WorkspaceMemberRole `json:"role"        gorm:"column:role"`
	JoinMessage string                               `json:"joinMessage" gorm:"column:join_message"`
	JoinedAt    time.Time                            `json:"joinedAt"    gorm:"column:joined_at"`
}

func (WorkspaceMember) TableName() string {
	return "workspace_members"
}
