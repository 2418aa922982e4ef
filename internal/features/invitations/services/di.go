package invitations_services

import (
	"teamspace-backend/internal/features/audit_logs"
	invitations_repositories "teamspace-backend/internal/features/invitations/repositories"
	projects_repositories "teamspace-backend/internal/features/projects/repositories"
	users_services "teamspace-backend/internal/features/users/services"
	workspaces_repositories "teamspace-backend/internal/features/workspaces/repositories"
	"teamspace-backend/internal/util/logger"
)

var invitationService = newDefaultInvitationService()

func newDefaultInvitationService() *InvitationService {
	service := NewInvitationService(
		invitations_repositories.GetInvitationRepository(),
		workspaces_repositories.GetWorkspaceRepository(),
		projects_repositories.GetProjectRepository(),
		users_services.GetSettingsService(),
		logger.GetLogger(),
	)
	service.SetAuditLogWriter(audit_logs.GetAuditLogService())

	return service
}

func GetInvitationService() *InvitationService {
	return invitationService
}
