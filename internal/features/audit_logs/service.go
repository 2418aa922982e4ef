package audit_logs

import (
	"log/slog"

	"github.com/google/uuid"
)

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	logger             *slog.Logger
}

// WriteAuditLog is fire-and-forget: a failed write is logged, never
// propagated to the calling operation.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	workspaceID *uuid.UUID,
) {
	auditLog := &AuditLog{
		UserID:      userID,
		WorkspaceID: workspaceID,
		Message:     message,
	}

	if err := s.auditLogRepository.Create(auditLog); err != nil {
		s.logger.Error("Failed to write audit log", "error", err, "message", message)
	}
}

func (s *AuditLogService) GetWorkspaceAuditLogs(
	workspaceID uuid.UUID,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	if request.Limit <= 0 || request.Limit > 100 {
		request.Limit = 50
	}
	if request.Offset < 0 {
		request.Offset = 0
	}

	logs, total, err := s.auditLogRepository.GetWorkspaceAuditLogs(workspaceID, request)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: logs,
		Total:     total,
		Limit:     request.Limit,
		Offset:    request.Offset,
	}, nil
}
