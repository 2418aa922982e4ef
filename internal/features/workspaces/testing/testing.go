package workspaces_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"teamspace-backend/internal/features/audit_logs"
	users_middleware "teamspace-backend/internal/features/users/middleware"
	users_services "teamspace-backend/internal/features/users/services"
	users_testing "teamspace-backend/internal/features/users/testing"
	workspaces_dto "teamspace-backend/internal/features/workspaces/dto"
	workspaces_enums "teamspace-backend/internal/features/workspaces/enums"
	workspaces_models "teamspace-backend/internal/features/workspaces/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	audit_logs.SetupDependencies()

	return router
}

func MakeAPIRequest(
	router *gin.Engine,
	method string,
	path string,
	authHeader string,
	body any,
) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func CreateTestWorkspace(
	name string,
	owner *users_testing.TestUser,
	router *gin.Engine,
) *workspaces_models.Workspace {
	workspace, _ := CreateTestWorkspaceViaAPI(name, owner, router)
	return workspace
}

func CreateTestWorkspaceViaAPI(
	name string,
	owner *users_testing.TestUser,
	router *gin.Engine,
) (*workspaces_models.Workspace, string) {
	users_testing.EnableMemberWorkspaceCreation()
	defer users_testing.ResetSettingsToDefaults()

	request := workspaces_dto.CreateWorkspaceRequestDTO{
		Name: name,
		Slug: slugify(name),
	}
	w := MakeAPIRequest(router, "POST", "/api/v1/workspaces", "Bearer "+owner.Token, request)

	if w.Code != http.StatusOK {
		panic(
			fmt.Sprintf(
				"Failed to create workspace. Status: %d, Body: %s",
				w.Code,
				w.Body.String(),
			),
		)
	}

	var response workspaces_dto.WorkspaceResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	workspace := &workspaces_models.Workspace{
		ID:      response.ID,
		Name:    response.Name,
		Slug:    response.Slug,
		OwnerID: owner.UserID,
	}

	return workspace, owner.Token
}

func AddMemberToWorkspace(
	workspace *workspaces_models.Workspace,
	member *users_testing.TestUser,
	role workspaces_enums.WorkspaceMemberRole,
	ownerToken string,
	router *gin.Engine,
) {
	request := workspaces_dto.AddMemberRequestDTO{
		Email: member.Email,
		Role:  role,
	}

	w := MakeAPIRequest(
		router,
		"POST",
		"/api/v1/workspaces/"+workspace.ID.String()+"/members",
		"Bearer "+ownerToken,
		request,
	)

	if w.Code != http.StatusOK {
		panic("Failed to add member to workspace via API: " + w.Body.String())
	}
}

func AddMemberToWorkspaceViaOwner(
	workspace *workspaces_models.Workspace,
	member *users_testing.TestUser,
	role workspaces_enums.WorkspaceMemberRole,
	router *gin.Engine,
) {
	userService := users_services.GetUserService()

	owner, err := userService.GetUserByID(workspace.OwnerID)
	if err != nil {
		panic("Failed to get owner user: " + err.Error())
	}

	tokenResponse, err := userService.GenerateAccessToken(owner)
	if err != nil {
		panic("Failed to generate owner token: " + err.Error())
	}

	AddMemberToWorkspace(workspace, member, role, tokenResponse.Token, router)
}

func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, slug)
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")

	// uniqueness across test runs
	suffix := uuid.NewString()[:8]
	if slug == "" {
		return suffix
	}

	return slug + "-" + suffix
}
