package projects_services

import (
	"fmt"
	"time"

	"teamspace-backend/internal/features/audit_logs"
	projects_dto "teamspace-backend/internal/features/projects/dto"
	projects_enums "teamspace-backend/internal/features/projects/enums"
	projects_models "teamspace-backend/internal/features/projects/models"
	projects_repositories "teamspace-backend/internal/features/projects/repositories"
	users_enums "teamspace-backend/internal/features/users/enums"
	users_models "teamspace-backend/internal/features/users/models"
	workspaces_models "teamspace-backend/internal/features/workspaces/models"
	workspaces_services "teamspace-backend/internal/features/workspaces/services"
	"teamspace-backend/internal/util/apperrors"

	"github.com/google/uuid"
)

type ProjectService struct {
	projectRepository *projects_repositories.ProjectRepository
	workspaceService  *workspaces_services.WorkspaceService
	auditLogService   *audit_logs.AuditLogService
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	workspace, err := s.workspaceService.GetWorkspaceByID(request.WorkspaceID)
	if err != nil {
		return nil, err
	}

	if !s.canManageWorkspace(workspace, creator) {
		return nil, apperrors.Unauthorized("insufficient permissions to create projects")
	}

	if !request.Priority.IsValid() {
		return nil, apperrors.BusinessRule("invalid project priority")
	}

	if err := projects_models.ValidateDates(request.StartDate, request.EndDate); err != nil {
		return nil, err
	}

	if request.TeamLeadID != nil && !workspace.IsMember(*request.TeamLeadID) {
		return nil, apperrors.BusinessRule("team lead must be a workspace member")
	}

	now := time.Now().UTC()
	project := &projects_models.Project{
		ID:          uuid.New(),
		Name:        request.Name,
		Description: request.Description,
		Priority:    request.Priority,
		Status:      projects_enums.ProjectStatusPlanning,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		TeamLeadID:  request.TeamLeadID,
		WorkspaceID: request.WorkspaceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Name),
		&creator.ID,
		&workspace.ID,
	)

	response := projects_dto.ToProjectResponse(project)
	return &response, nil
}

func (s *ProjectService) GetProject(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_models.Project, error) {
	project, _, err := s.loadAccessibleProject(projectID, user)
	return project, err
}

func (s *ProjectService) GetWorkspaceProjects(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*projects_dto.ListProjectsResponseDTO, error) {
	workspace, err := s.workspaceService.GetWorkspaceByID(workspaceID)
	if err != nil {
		return nil, err
	}

	if !s.canAccessWorkspace(workspace, user) {
		return nil, apperrors.Unauthorized("insufficient permissions to view workspace projects")
	}

	projects, err := s.projectRepository.GetWorkspaceProjects(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace projects: %w", err)
	}

	responses := make([]projects_dto.ProjectResponseDTO, len(projects))
	for i, project := range projects {
		responses[i] = projects_dto.ToProjectResponse(project)
	}

	return &projects_dto.ListProjectsResponseDTO{Projects: responses}, nil
}

func (s *ProjectService) UpdateProject(
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
	user *users_models.User,
) (*projects_models.Project, error) {
	project, workspace, err := s.loadManagedProject(projectID, user)
	if err != nil {
		return nil, err
	}

	if !request.Priority.IsValid() {
		return nil, apperrors.BusinessRule("invalid project priority")
	}

	if err := projects_models.ValidateDates(request.StartDate, request.EndDate); err != nil {
		return nil, err
	}

	if request.TeamLeadID != nil && !workspace.IsMember(*request.TeamLeadID) {
		return nil, apperrors.BusinessRule("team lead must be a workspace member")
	}

	project.Name = request.Name
	project.Description = request.Description
	project.Priority = request.Priority
	project.StartDate = request.StartDate
	project.EndDate = request.EndDate
	project.TeamLeadID = request.TeamLeadID
	project.UpdatedAt = time.Now().UTC()

	if err := s.projectRepository.SaveAggregate(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project updated: %s", project.Name),
		&user.ID,
		&project.WorkspaceID,
	)

	return project, nil
}

func (s *ProjectService) ChangeProjectStatus(
	projectID uuid.UUID,
	request *projects_dto.ChangeProjectStatusRequestDTO,
	user *users_models.User,
) (*projects_models.Project, error) {
	project, _, err := s.loadManagedProject(projectID, user)
	if err != nil {
		return nil, err
	}

	if !request.Status.IsValid() {
		return nil, apperrors.BusinessRule("invalid project status")
	}

	if err := project.ChangeStatus(request.Status); err != nil {
		return nil, err
	}

	if err := s.projectRepository.SaveAggregate(project); err != nil {
		return nil, fmt.Errorf("failed to change project status: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project status changed to %s: %s", project.Status, project.Name),
		&user.ID,
		&project.WorkspaceID,
	)

	return project, nil
}

func (s *ProjectService) DeleteProject(projectID uuid.UUID, user *users_models.User) error {
	project, _, err := s.loadManagedProject(projectID, user)
	if err != nil {
		return err
	}

	if err := s.projectRepository.DeleteProject(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project deleted: %s", project.Name),
		&user.ID,
		&project.WorkspaceID,
	)

	return nil
}

func (s *ProjectService) GetProjectMembers(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.GetProjectMembersResponseDTO, error) {
	if _, _, err := s.loadAccessibleProject(projectID, user); err != nil {
		return nil, err
	}

	members, err := s.projectRepository.GetProjectMembers(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project members: %w", err)
	}

	membersList := make([]projects_dto.ProjectMemberResponseDTO, len(members))
	for i, member := range members {
		membersList[i] = *member
	}

	return &projects_dto.GetProjectMembersResponseDTO{Members: membersList}, nil
}

func (s *ProjectService) AddProjectMember(
	projectID uuid.UUID,
	request *projects_dto.AddProjectMemberRequestDTO,
	addedBy *users_models.User,
) error {
	project, workspace, err := s.loadLedProject(projectID, addedBy)
	if err != nil {
		return err
	}

	if !workspace.IsMember(request.UserID) {
		return apperrors.BusinessRule("user must be a workspace member to join a project")
	}

	if err := project.AddMember(request.UserID); err != nil {
		return err
	}

	if err := s.projectRepository.SaveAggregate(project); err != nil {
		return fmt.Errorf("failed to add project member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User %s added to project: %s", request.UserID, project.Name),
		&addedBy.ID,
		&project.WorkspaceID,
	)

	return nil
}

func (s *ProjectService) RemoveProjectMember(
	projectID uuid.UUID,
	memberUserID uuid.UUID,
	removedBy *users_models.User,
) error {
	project, _, err := s.loadLedProject(projectID, removedBy)
	if err != nil {
		return err
	}

	if err := project.RemoveMember(memberUserID); err != nil {
		return err
	}

	if err := s.projectRepository.SaveAggregate(project); err != nil {
		return fmt.Errorf("failed to remove project member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User %s removed from project: %s", memberUserID, project.Name),
		&removedBy.ID,
		&project.WorkspaceID,
	)

	return nil
}

func (s *ProjectService) CreateTask(
	projectID uuid.UUID,
	request *projects_dto.CreateTaskRequestDTO,
	creator *users_models.User,
) (*projects_models.Task, error) {
	project, _, err := s.loadAccessibleProject(projectID, creator)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := projects_models.Task{
		ID:          uuid.New(),
		ProjectID:   project.ID,
		Title:       request.Title,
		Description: request.Description,
		Status:      projects_enums.TaskStatusTodo,
		AssigneeID:  request.AssigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := project.AddTask(task); err != nil {
		return nil, err
	}

	if err := s.projectRepository.SaveAggregate(project); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &project.Tasks[len(project.Tasks)-1], nil
}

func (s *ProjectService) UpdateTaskStatus(
	projectID uuid.UUID,
	taskID uuid.UUID,
	request *projects_dto.UpdateTaskStatusRequestDTO,
	user *users_models.User,
) (*projects_models.Project, error) {
	project, _, err := s.loadAccessibleProject(projectID, user)
	if err != nil {
		return nil, err
	}

	if !request.Status.IsValid() {
		return nil, apperrors.BusinessRule("invalid task status")
	}

	if err := project.UpdateTaskStatus(taskID, request.Status); err != nil {
		return nil, err
	}

	if err := s.projectRepository.SaveAggregate(project); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return project, nil
}

func (s *ProjectService) GetTaskStatistics(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_models.TaskStatistics, error) {
	project, _, err := s.loadAccessibleProject(projectID, user)
	if err != nil {
		return nil, err
	}

	stats := project.GetTaskStatistics()
	return &stats, nil
}

func (s *ProjectService) GetProjectByID(
	projectID uuid.UUID,
) (*projects_models.Project, error) {
	return s.loadProject(projectID)
}

func (s *ProjectService) loadProject(projectID uuid.UUID) (*projects_models.Project, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if project == nil {
		return nil, apperrors.NotFound("project not found")
	}

	return project, nil
}

// Access to a project requires workspace membership; management of the
// project itself requires workspace admin rights, while member and task
// management additionally opens up to the project's team lead.

func (s *ProjectService) loadAccessibleProject(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_models.Project, *workspaces_models.Workspace, error) {
	project, err := s.loadProject(projectID)
	if err != nil {
		return nil, nil, err
	}

	workspace, err := s.workspaceService.GetWorkspaceByID(project.WorkspaceID)
	if err != nil {
		return nil, nil, err
	}

	if !s.canAccessWorkspace(workspace, user) {
		return nil, nil, apperrors.Unauthorized("insufficient permissions to view project")
	}

	return project, workspace, nil
}

func (s *ProjectService) loadManagedProject(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_models.Project, *workspaces_models.Workspace, error) {
	project, err := s.loadProject(projectID)
	if err != nil {
		return nil, nil, err
	}

	workspace, err := s.workspaceService.GetWorkspaceByID(project.WorkspaceID)
	if err != nil {
		return nil, nil, err
	}

	if !s.canManageWorkspace(workspace, user) {
		return nil, nil, apperrors.Unauthorized("insufficient permissions to manage project")
	}

	return project, workspace, nil
}

func (s *ProjectService) loadLedProject(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_models.Project, *workspaces_models.Workspace, error) {
	project, err := s.loadProject(projectID)
	if err != nil {
		return nil, nil, err
	}

	workspace, err := s.workspaceService.GetWorkspaceByID(project.WorkspaceID)
	if err != nil {
		return nil, nil, err
	}

	if !s.canManageWorkspace(workspace, user) && !project.IsTeamLead(user.ID) {
		return nil, nil, apperrors.Unauthorized(
			"insufficient permissions to manage project members",
		)
	}

	return project, workspace, nil
}

func (s *ProjectService) canAccessWorkspace(
	workspace *workspaces_models.Workspace,
	user *users_models.User,
) bool {
	return user.Role == users_enums.UserRoleAdmin || workspace.IsMember(user.ID)
}

func (s *ProjectService) canManageWorkspace(
	workspace *workspaces_models.Workspace,
	user *users_models.User,
) bool {
	return user.Role == users_enums.UserRoleAdmin || workspace.IsAdmin(user.ID)
}
