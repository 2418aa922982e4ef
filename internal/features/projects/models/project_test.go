package projects_models

import (
	"errors"
	"testing"
	"time"

	projects_enums "teamspace-backend/internal/features/projects/enums"
	"teamspace-backend/internal/util/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProject() *Project {
	now := time.Now().UTC()

	return &Project{
		ID:          uuid.New(),
		Name:        "Test project",
		Priority:    projects_enums.ProjectPriorityMedium,
		Status:      projects_enums.ProjectStatusPlanning,
		StartDate:   now,
		EndDate:     now.Add(30 * 24 * time.Hour),
		WorkspaceID: uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newTask(project *Project, status projects_enums.TaskStatus) Task {
	now := time.Now().UTC()

	return Task{
		ID:        uuid.New(),
		ProjectID: project.ID,
		Title:     "Task",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func Test_AddMember_Duplicate_ReturnsConflict(t *testing.T) {
	project := newTestProject()
	userID := uuid.New()

	require.NoError(t, project.AddMember(userID))

	err := project.AddMember(userID)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Len(t, project.Members, 1)
}

func Test_RemoveMember_TeamLead_AlwaysFails(t *testing.T) {
	project := newTestProject()
	teamLeadID := uuid.New()
	project.TeamLeadID = &teamLeadID

	err := project.RemoveMember(teamLeadID)
	assert.True(t, errors.Is(err, apperrors.ErrBusinessRule))
}

func Test_RemoveMember_AbsentUser_IsNoOp(t *testing.T) {
	project := newTestProject()

	assert.NoError(t, project.RemoveMember(uuid.New()))
}

func Test_RemoveMember_ExistingMember_Removes(t *testing.T) {
	project := newTestProject()
	userID := uuid.New()

	require.NoError(t, project.AddMember(userID))
	require.NoError(t, project.RemoveMember(userID))

	assert.Empty(t, project.Members)
	assert.False(t, project.IsMember(userID))
}

func Test_AddTask_ForeignProjectID_Fails(t *testing.T) {
	project := newTestProject()
	task := newTask(project, projects_enums.TaskStatusTodo)
	task.ProjectID = uuid.New()

	err := project.AddTask(task)
	assert.True(t, errors.Is(err, apperrors.ErrBusinessRule))
	assert.Empty(t, project.Tasks)
}

func Test_UpdateTaskStatus_AbsentTask_ReturnsNotFound(t *testing.T) {
	project := newTestProject()

	err := project.UpdateTaskStatus(uuid.New(), projects_enums.TaskStatusDone)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func Test_Progress_NoTasks_IsZero(t *testing.T) {
	project := newTestProject()
	project.updateProgress()

	assert.Equal(t, 0, project.Progress)
}

func Test_Progress_Truncates(t *testing.T) {
	project := newTestProject()

	require.NoError(t, project.AddTask(newTask(project, projects_enums.TaskStatusDone)))
	require.NoError(t, project.AddTask(newTask(project, projects_enums.TaskStatusTodo)))
	require.NoError(t, project.AddTask(newTask(project, projects_enums.TaskStatusInProgress)))
	assert.Equal(t, 33, project.Progress)

	require.NoError(
		t,
		project.UpdateTaskStatus(project.Tasks[1].ID, projects_enums.TaskStatusDone),
	)
	assert.Equal(t, 66, project.Progress)

	require.NoError(
		t,
		project.UpdateTaskStatus(project.Tasks[2].ID, projects_enums.TaskStatusDone),
	)
	assert.Equal(t, 100, project.Progress)
}

func Test_ChangeStatus_CompletedToPlanning_Fails(t *testing.T) {
	project := newTestProject()

	require.NoError(t, project.ChangeStatus(projects_enums.ProjectStatusCompleted))

	err := project.ChangeStatus(projects_enums.ProjectStatusPlanning)
	assert.True(t, errors.Is(err, apperrors.ErrBusinessRule))
	assert.Equal(t, projects_enums.ProjectStatusCompleted, project.Status)
}

func Test_ChangeStatus_CompletedToOnHold_Succeeds(t *testing.T) {
	project := newTestProject()

	require.NoError(t, project.ChangeStatus(projects_enums.ProjectStatusCompleted))
	require.NoError(t, project.ChangeStatus(projects_enums.ProjectStatusOnHold))

	assert.Equal(t, projects_enums.ProjectStatusOnHold, project.Status)
}

func Test_GetTaskStatistics_CountsByStatus(t *testing.T) {
	project := newTestProject()

	require.NoError(t, project.AddTask(newTask(project, projects_enums.TaskStatusTodo)))
	require.NoError(t, project.AddTask(newTask(project, projects_enums.TaskStatusTodo)))
	require.NoError(t, project.AddTask(newTask(project, projects_enums.TaskStatusInProgress)))
	require.NoError(t, project.AddTask(newTask(project, projects_enums.TaskStatusDone)))
	require.NoError(t, project.AddTask(newTask(project, projects_enums.TaskStatusBlocked)))

	stats := project.GetTaskStatistics()
	assert.Equal(t, TaskStatistics{
		Total:      5,
		Todo:       2,
		InProgress: 1,
		Done:       1,
		Blocked:    1,
	}, stats)
}

func Test_IsTeamLead_And_IsMember(t *testing.T) {
	project := newTestProject()
	teamLeadID := uuid.New()
	memberID := uuid.New()
	outsiderID := uuid.New()

	project.TeamLeadID = &teamLeadID
	require.NoError(t, project.AddMember(memberID))

	assert.True(t, project.IsTeamLead(teamLeadID))
	assert.False(t, project.IsTeamLead(memberID))

	assert.True(t, project.IsMember(teamLeadID))
	assert.True(t, project.IsMember(memberID))
	assert.False(t, project.IsMember(outsiderID))
}

func Test_ValidateDates(t *testing.T) {
	now := time.Now().UTC()

	assert.NoError(t, ValidateDates(now, now.Add(time.Hour)))

	err := ValidateDates(now, now)
	assert.True(t, errors.Is(err, apperrors.ErrBusinessRule))

	err = ValidateDates(now.Add(time.Hour), now)
	assert.True(t, errors.Is(err, apperrors.ErrBusinessRule))
}
