package projects_controllers

import (
	projects_services "teamspace-backend/internal/features/projects/services"
)

var projectController = &ProjectController{
	projects_services.GetProjectService(),
}

func GetProjectController() *ProjectController {
	return projectController
}
