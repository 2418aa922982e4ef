package users_testing

import (
	"time"

	users_enums "teamspace-backend/internal/features/users/enums"
	users_models "teamspace-backend/internal/features/users/models"
	users_repositories "teamspace-backend/internal/features/users/repositories"
	users_services "teamspace-backend/internal/features/users/services"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type TestUser struct {
	UserID uuid.UUID
	Email  string
	Token  string
	User   *users_models.User
}

// CreateTestUser inserts an active user straight into the database and
// returns it together with a signed access token.
func CreateTestUser(role users_enums.UserRole) *TestUser {
	repository := users_repositories.GetUserRepository()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	hashedPasswordStr := string(hashedPassword)

	user := &users_models.User{
		ID:                   uuid.New(),
		Email:                "user-" + uuid.New().String() + "@example.com",
		Name:                 "Test User",
		HashedPassword:       &hashedPasswordStr,
		PasswordCreationTime: time.Now().UTC(),
		Role:                 role,
		Status:               users_enums.UserStatusActive,
		CreatedAt:            time.Now().UTC(),
	}

	if err := repository.CreateUser(user); err != nil {
		panic(err)
	}

	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	return &TestUser{
		UserID: user.ID,
		Email:  user.Email,
		Token:  response.Token,
		User:   user,
	}
}
