package workspaces_enums

type WorkspaceMemberRole string

const (
	WorkspaceMemberRoleMember WorkspaceMemberRole = "MEMBER"
	WorkspaceMemberRoleAdmin  WorkspaceMemberRole = "ADMIN"
)

// IsValid validates the WorkspaceMemberRole
func (r WorkspaceMemberRole) IsValid() bool {
	switch r {
	case WorkspaceMemberRoleMember, WorkspaceMemberRoleAdmin:
		return true
	default:
		return false
	}
}
