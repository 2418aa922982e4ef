package workspaces_models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	workspaces_enums "teamspace-backend/internal/features/workspaces/enums"
	"teamspace-backend/internal/util/apperrors"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// WorkspaceSettings is an opaque blob the backend stores without
// interpreting; the UI owns its shape.
type WorkspaceSettings map[string]any

func (s WorkspaceSettings) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}

	return json.Marshal(s)
}

func (s *WorkspaceSettings) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported settings column type %T", value)
	}
}

// Workspace is the aggregate root for workspace membership. The owner
// is implicit: OwnerID never appears in Members, and every mutation
// keeps the member set free of duplicates.
type Workspace struct {
	ID          uuid.UUID         `json:"id"          gorm:"column:id"`
	Name        string            `json:"name"        gorm:"column:name"`
	Slug        string            `json:"slug"        gorm:"column:slug"`
	Description *string           `json:"description" gorm:"column:description"`
	OwnerID     uuid.UUID         `json:"ownerId"     gorm:"column:owner_id"`
	Settings    WorkspaceSettings `json:"settings"    gorm:"column:settings"`
	CreatedAt   time.Time         `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time         `json:"updatedAt"   gorm:"column:updated_at"`

	Members []WorkspaceMember `json:"members" gorm:"foreignKey:WorkspaceID"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// Membership policy: pure predicates over the loaded aggregate.

func (w *Workspace) IsOwner(userID uuid.UUID) bool {
	return w.OwnerID == userID
}

func (w *Workspace) IsAdmin(userID uuid.UUID) bool {
	if w.OwnerID == userID {
		return true
	}

	for _, member := range w.Members {
		if member.UserID == userID && member.Role == workspaces_enums.WorkspaceMemberRoleAdmin {
			return true
		}
	}

	return false
}

func (w *Workspace) IsMember(userID uuid.UUID) bool {
	if w.OwnerID == userID {
		return true
	}

	return w.findMember(userID) != nil
}

func (w *Workspace) CanManageInvitations(userID uuid.UUID) bool {
	return w.IsOwner(userID) || w.IsAdmin(userID)
}

// Aggregate mutations.

func (w *Workspace) AddMember(
	userID uuid.UUID,
	role workspaces_enums.WorkspaceMemberRole,
	joinMessage string,
) error {
	if userID == w.OwnerID {
		return apperrors.Conflict("workspace owner is already implicitly a member")
	}

	if w.findMember(userID) != nil {
		return apperrors.Conflict("user is already a member of this workspace")
	}

	w.Members = append(w.Members, WorkspaceMember{
		ID:          uuid.New(),
		UserID:      userID,
		WorkspaceID: w.ID,
		Role:        role,
		JoinMessage: joinMessage,
		JoinedAt:    time.Now().UTC(),
	})

	return nil
}

func (w *Workspace) RemoveMember(userID uuid.UUID) error {
	if userID == w.OwnerID {
		return apperrors.BusinessRule("workspace owner cannot be removed")
	}

	for i, member := range w.Members {
		if member.UserID == userID {
			w.Members = append(w.Members[:i], w.Members[i+1:]...)
			return nil
		}
	}

	// removing an absent member is a no-op
	return nil
}

func (w *Workspace) ChangeMemberRole(
	userID uuid.UUID,
	newRole workspaces_enums.WorkspaceMemberRole,
) error {
	member := w.findMember(userID)
	if member == nil {
		return apperrors.NotFound("user is not a member of this workspace")
	}

	member.Role = newRole
	return nil
}

func (w *Workspace) findMember(userID uuid.UUID) *WorkspaceMember {
	for i := range w.Members {
		if w.Members[i].UserID == userID {
			return &w.Members[i]
		}
	}

	return nil
}
