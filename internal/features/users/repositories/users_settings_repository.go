package users_repositories

import (
	users_models "teamspace-backend/internal/features/users/models"
	"teamspace-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsersSettingsRepository struct{}

func (r *UsersSettingsRepository) GetSettings() (*users_models.UsersSettings, error) {
	var settings users_models.UsersSettings

	if err := storage.GetDb().First(&settings).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			settings = users_models.UsersSettings{
				ID:                                uuid.New(),
				IsAllowExternalRegistrations:      true,
				IsAllowMemberInvitations:          true,
				IsMemberAllowedToCreateWorkspaces: true,
			}

			if err := storage.GetDb().Create(&settings).Error; err != nil {
				return nil, err
			}

			return &settings, nil
		}

		return nil, err
	}

	return &settings, nil
}

func (r *UsersSettingsRepository) UpdateSettings(settings *users_models.UsersSettings) error {
	return storage.GetDb().Save(settings).Error
}
