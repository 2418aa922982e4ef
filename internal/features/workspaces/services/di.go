package workspaces_services

import (
	"teamspace-backend/internal/features/audit_logs"
	users_services "teamspace-backend/internal/features/users/services"
	workspaces_repositories "teamspace-backend/internal/features/workspaces/repositories"
)

var workspaceService = &WorkspaceService{
	workspaces_repositories.GetWorkspaceRepository(),
	users_services.GetSettingsService(),
	audit_logs.GetAuditLogService(),
}

var membershipService = &MembershipService{
	workspaces_repositories.GetWorkspaceRepository(),
	workspaceService,
	users_services.GetUserService(),
	users_services.GetSettingsService(),
	audit_logs.GetAuditLogService(),
}

func GetWorkspaceService() *WorkspaceService {
	return workspaceService
}

func GetMembershipService() *MembershipService {
	return membershipService
}
