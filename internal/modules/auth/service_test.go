package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio/internal/database"
	"portfolio/internal/domain"
	jwtsvc "portfolio/internal/pkg/jwt"
	"portfolio/internal/repository"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	return NewService(repository.NewUserRepository(db), jwtsvc.New("test-secret", time.Hour)), db
}

func TestLoginCreatesUserOnFirstSync(t *testing.T) {
	svc, db := setupService(t)

	user, token, result, err := svc.Login(context.Background(), LoginRequest{
		OpenID:      "ext-123",
		Name:        "Ahmed Mahmoud",
		Email:       "Ahmed@Example.com",
		LoginMethod: "google",
	})
	require.NoError(t, err)
	require.Equal(t, ResultCreated, result)
	require.NotEmpty(t, token)
	require.Equal(t, domain.RoleUser, user.Role)
	require.False(t, user.LastSignedIn.IsZero())

	var row domain.User
	require.NoError(t, db.First(&row, user.ID).Error)
	require.Equal(t, "ext-123", row.OpenID)
	require.Equal(t, "ahmed@example.com", row.Email, "emails are stored lowercased")
}

func TestLoginUpdatesExistingUser(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	first, _, _, err := svc.Login(ctx, LoginRequest{OpenID: "ext-123", Name: "Old Name", Email: "old@example.com"})
	require.NoError(t, err)

	second, token, result, err := svc.Login(ctx, LoginRequest{OpenID: "ext-123", Name: "New Name", LoginMethod: "github"})
	require.NoError(t, err)
	require.Equal(t, ResultUpdated, result)
	require.NotEmpty(t, token)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "New Name", second.Name)
	require.Equal(t, "old@example.com", second.Email, "blank fields never overwrite stored values")
	require.Equal(t, "github", second.LoginMethod)
	require.False(t, second.LastSignedIn.Before(first.LastSignedIn))

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count, "re-login must not create a second row")
}

func TestLoginTokenCarriesIdentity(t *testing.T) {
	svc, _ := setupService(t)

	user, token, _, err := svc.Login(context.Background(), LoginRequest{OpenID: "ext-123"})
	require.NoError(t, err)

	claims, err := jwtsvc.New("test-secret", time.Hour).ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, string(domain.RoleUser), claims.Role)
}

func TestMe(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	user, _, _, err := svc.Login(ctx, LoginRequest{OpenID: "ext-123", Name: "Ahmed"})
	require.NoError(t, err)

	got, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "Ahmed", got.Name)

	_, err = svc.Me(ctx, 999)
	require.ErrorIs(t, err, ErrUserNotFound)
}
