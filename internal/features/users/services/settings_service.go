package users_services

import (
	"fmt"

	users_models "teamspace-backend/internal/features/users/models"
	users_repositories "teamspace-backend/internal/features/users/repositories"
	"teamspace-backend/internal/util/apperrors"

	users_enums "teamspace-backend/internal/features/users/enums"
)

type SettingsService struct {
	settingsRepository *users_repositories.UsersSettingsRepository
}

func (s *SettingsService) GetSettings() (*users_models.UsersSettings, error) {
	return s.settingsRepository.GetSettings()
}

func (s *SettingsService) UpdateSettings(
	settings *users_models.UsersSettings,
	updatedBy *users_models.User,
) error {
	if updatedBy.Role != users_enums.UserRoleAdmin {
		return apperrors.Unauthorized("only admins can update settings")
	}

	existing, err := s.settingsRepository.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	existing.IsAllowExternalRegistrations = settings.IsAllowExternalRegistrations
	existing.IsAllowMemberInvitations = settings.IsAllowMemberInvitations
	existing.IsMemberAllowedToCreateWorkspaces = settings.IsMemberAllowedToCreateWorkspaces

	return s.settingsRepository.UpdateSettings(existing)
}
