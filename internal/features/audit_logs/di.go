package audit_logs

import (
	users_services "teamspace-backend/internal/features/users/services"
	"teamspace-backend/internal/util/logger"
)

var auditLogRepository = &AuditLogRepository{}

var auditLogService = &AuditLogService{
	auditLogRepository,
	logger.GetLogger(),
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

// SetupDependencies attaches the audit log writer to the users service.
// Users cannot import this package directly without a cycle.
func SetupDependencies() {
	users_services.GetUserService().SetAuditLogWriter(auditLogService)
}
