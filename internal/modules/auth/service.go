package auth

import (
	"context"
	"time"

	"portfolio/internal/domain"
	"portfolio/internal/repository"

	jwtsvc "portfolio/internal/pkg/jwt"
)

type SyncResult string

const (
	ResultCreated SyncResult = "created"
	ResultUpdated SyncResult = "updated"
)

// Service syncs users from the external login provider and issues API
// tokens. Users are created on first login and refreshed on every
// subsequent one; they are never deleted here.
type Service struct {
	users *repository.UserRepository
	jwt   *jwtsvc.Service
}

func NewService(users *repository.UserRepository, jwt *jwtsvc.Service) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login upserts the user by external identifier and returns a signed
// token for the API.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, SyncResult, error) {
	user, err := s.users.GetByOpenID(ctx, req.OpenID)
	if err != nil {
		return nil, "", "", err
	}

	now := time.Now()
	result := ResultUpdated

	if user == nil {
		user = &domain.User{
			OpenID:       req.OpenID,
			Name:         req.Name,
			Email:        req.Email,
			LoginMethod:  req.LoginMethod,
			Role:         domain.RoleUser,
			LastSignedIn: now,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, "", "", err
		}
		result = ResultCreated
	} else {
		if req.Name != "" {
			user.Name = req.Name
		}
		if req.Email != "" {
			user.Email = req.Email
		}
		if req.LoginMethod != "" {
			user.LoginMethod = req.LoginMethod
		}
		user.LastSignedIn = now
		if err := s.users.Update(ctx, user); err != nil {
			return nil, "", "", err
		}
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", "", err
	}

	return user, token, result, nil
}

// Me returns the user behind an authenticated request.
func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
