package users_controllers

import (
	"net/http"

	users_middleware "teamspace-backend/internal/features/users/middleware"
	users_models "teamspace-backend/internal/features/users/models"
	users_services "teamspace-backend/internal/features/users/services"
	http_errors "teamspace-backend/internal/util/httperrors"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settingsService *users_services.SettingsService
}

func (c *SettingsController) RegisterRoutes(router *gin.RouterGroup) {
	settingsRoutes := router.Group("/settings")

	settingsRoutes.GET("", c.GetSettings)
	settingsRoutes.PUT("", c.UpdateSettings)
}

// GetSettings
// @Summary Get installation settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_models.UsersSettings
// @Failure 401 {object} map[string]string
// @Router /settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	_, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	settings, err := c.settingsService.GetSettings()
	if err != nil {
		http_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// UpdateSettings
// @Summary Update installation settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_models.UsersSettings true "Settings"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /settings [put]
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request users_models.UsersSettings
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.settingsService.UpdateSettings(&request, user); err != nil {
		http_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Settings updated successfully"})
}
