package invitations_controllers

import (
	"net/http"
	"strings"

	invitations_dto "teamspace-backend/internal/features/invitations/dto"
	invitations_enums "teamspace-backend/internal/features/invitations/enums"
	invitations_services "teamspace-backend/internal/features/invitations/services"
	users_middleware "teamspace-backend/internal/features/users/middleware"
	users_models "teamspace-backend/internal/features/users/models"
	users_services "teamspace-backend/internal/features/users/services"
	http_errors "teamspace-backend/internal/util/httperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvitationController struct {
	invitationService *invitations_services.InvitationService
	userService       *users_services.UserService
}

func (c *InvitationController) RegisterRoutes(router *gin.RouterGroup) {
	invitationRoutes := router.Group("/invitations")

	invitationRoutes.POST("/workspace", c.InviteToWorkspace)
	invitationRoutes.POST("/project", c.InviteToProject)
	invitationRoutes.POST("/revoke/:id", c.RevokeInvitation)
	invitationRoutes.GET("/workspace/:id", c.GetWorkspaceInvitations)
}

// RegisterPublicRoutes exposes the endpoints an invitee can use before
// having an account.
func (c *InvitationController) RegisterPublicRoutes(router *gin.RouterGroup) {
	invitationRoutes := router.Group("/invitations")

	invitationRoutes.POST("/accept/:token", c.AcceptInvitation)
	invitationRoutes.GET("/pending", c.GetPendingForEmail)
}

// InviteToWorkspace
// @Summary Invite an email to a workspace
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body invitations_dto.InviteToWorkspaceRequestDTO true "Invitation data"
// @Success 200 {object} invitations_models.Invitation
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invitations/workspace [post]
func (c *InvitationController) InviteToWorkspace(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request invitations_dto.InviteToWorkspaceRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	invitation, err := c.invitationService.InviteToWorkspace(&request, user)
	if err != nil {
		http_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, invitation)
}

// InviteToProject
// @Summary Invite an email to a project
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body invitations_dto.InviteToProjectRequestDTO true "Invitation data"
// @Success 200 {object} invitations_models.Invitation
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invitations/project [post]
func (c *InvitationController) InviteToProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request invitations_dto.InviteToProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	invitation, err := c.invitationService.InviteToProject(&request, user)
	if err != nil {
		http_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, invitation)
}

// AcceptInvitation
// @Summary Accept an invitation by token
// @Description Works without authentication; when a bearer token is supplied the membership is created for that user
// @Tags invitations
// @Produce json
// @Param token path string true "Invitation token"
// @Success 200 {object} invitations_models.Invitation
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /invitations/accept/{token} [post]
func (c *InvitationController) AcceptInvitation(ctx *gin.Context) {
	token := ctx.Param("token")

	var userID *uuid.UUID
	if user := c.resolveOptionalUser(ctx); user != nil {
		userID = &user.ID
	}

	invitation, err := c.invitationService.Accept(token, userID)
	if err != nil {
		http_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, invitation)
}

// RevokeInvitation
// @Summary Revoke a pending invitation
// @Tags invitations
// @Security BearerAuth
// @Param id path string true "Invitation ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /invitations/revoke/{id} [post]
func (c *InvitationController) RevokeInvitation(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	invitationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	if err := c.invitationService.Revoke(invitationID, user); err != nil {
		http_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invitation revoked successfully"})
}

// GetWorkspaceInvitations
// @Summary List invitations for a workspace
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Workspace ID"
// @Param status query string false "Filter by status (defaults to PENDING)"
// @Success 200 {object} invitations_dto.ListInvitationsResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invitations/workspace/{id} [get]
func (c *InvitationController) GetWorkspaceInvitations(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid workspace ID"})
		return
	}

	var status *invitations_enums.InvitationStatus
	if raw := ctx.Query("status"); raw != "" {
		candidate := invitations_enums.InvitationStatus(strings.ToUpper(raw))
		if !candidate.IsValid() {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation status"})
			return
		}
		status = &candidate
	}

	response, err := c.invitationService.GetWorkspaceInvitations(workspaceID, user, status)
	if err != nil {
		http_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetPendingForEmail
// @Summary List pending invitations for an email
// @Description Intentionally unauthenticated so invitees can check before signing up
// @Tags invitations
// @Produce json
// @Param email query string true "Invitee email"
// @Success 200 {object} invitations_dto.ListInvitationsResponseDTO
// @Failure 400 {object} map[string]string
// @Router /invitations/pending [get]
func (c *InvitationController) GetPendingForEmail(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	response, err := c.invitationService.GetPendingForEmail(email)
	if err != nil {
		http_errors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// resolveOptionalUser reads the bearer token when one is supplied on a
// public route. An invalid token is treated as anonymous rather than
// rejected, because acceptance works without an account.
func (c *InvitationController) resolveOptionalUser(
	ctx *gin.Context,
) *users_models.User {
	header := ctx.GetHeader("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil
	}

	user, err := c.userService.GetUserFromToken(token)
	if err != nil {
		return nil
	}

	return user
}
