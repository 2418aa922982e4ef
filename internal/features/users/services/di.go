package users_services

import (
	users_repositories "teamspace-backend/internal/features/users/repositories"
)

var settingsService = &SettingsService{
	users_repositories.GetUsersSettingsRepository(),
}

var userService = &UserService{
	users_repositories.GetUserRepository(),
	settingsService,
	nil, // audit log writer is attached in main to avoid an import cycle
}

func GetUserService() *UserService {
	return userService
}

func GetSettingsService() *SettingsService {
	return settingsService
}
