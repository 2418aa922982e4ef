package invitations_models

import (
	"time"

	invitations_enums "teamspace-backend/internal/features/invitations/enums"

	"github.com/google/uuid"
)

// InvitationTTL is how long an invitation stays acceptable after creation.
const InvitationTTL = 7 * 24 * time.Hour

// Invitation is a time-bounded join credential for a workspace or a
// project. Exactly one of WorkspaceID/ProjectID is set, matching Type.
type Invitation struct {
	ID          uuid.UUID                         `json:"id"          gorm:"type:uuid;primaryKey"`
	Email       string                            `json:"email"       gorm:"not null;index"`
	Token       string                            `json:"token"       gorm:"not null;uniqueIndex"`
	Type        invitations_enums.InvitationType  `json:"type"        gorm:"type:varchar(20);not null"`
	WorkspaceID *uuid.UUID                        `json:"workspaceId" gorm:"type:uuid"`
	ProjectID   *uuid.UUID                        `json:"projectId"   gorm:"type:uuid"`
	InvitedByID uuid.UUID                         `json:"invitedById" gorm:"type:uuid;not null"`
	Status      invitations_enums.InvitationStatus `json:"status"     gorm:"type:varchar(20);not null"`
	ExpiresAt   time.Time                         `json:"expiresAt"   gorm:"not null"`
	CreatedAt   time.Time                         `json:"createdAt"   gorm:"not null"`
}

func (Invitation) TableName() string {
	return "invitations"
}

func (i *Invitation) IsPending() bool {
	return i.Status == invitations_enums.InvitationStatusPending
}

func (i *Invitation) IsExpiredAt(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}
