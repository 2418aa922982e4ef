package projects_repositories

var projectRepository = &ProjectRepository{}

func GetProjectRepository() *ProjectRepository {
	return projectRepository
}
