package projects_services

import (
	"teamspace-backend/internal/features/audit_logs"
	projects_repositories "teamspace-backend/internal/features/projects/repositories"
	workspaces_services "teamspace-backend/internal/features/workspaces/services"
)

var projectService = &ProjectService{
	projects_repositories.GetProjectRepository(),
	workspaces_services.GetWorkspaceService(),
	audit_logs.GetAuditLogService(),
}

func GetProjectService() *ProjectService {
	return projectService
}
