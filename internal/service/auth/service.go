package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cyberclub/staffhub-backend-go/internal/domain/auth"
	"github.com/cyberclub/staffhub-backend-go/internal/domain/employee"
	"github.com/cyberclub/staffhub-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo     auth.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(userRepo auth.UserRepository, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenPairResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenPairResponse{}, err
	}

	user, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenPairResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokenPair(user)
}

// Refresh implements auth.AuthService. The used refresh token is
// revoked; each token is good for one rotation.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenPairResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.TokenPairResponse{}, auth.ErrTokenRevoked
	}

	token, err := a.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.TokenPairResponse{}, auth.ErrInvalidToken
	}

	user, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenPairResponse{}, err
	}

	a.jwtService.RevokeToken(refreshToken)

	return a.issueTokenPair(user)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, accessToken string) error {
	a.jwtService.RevokeToken(accessToken)
	return nil
}

// Register implements auth.AuthService. Manager-only operation, enforced
// at the routing layer.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	if req.EmployeeID != nil {
		if _, err := a.employeeRepo.GetByID(ctx, *req.EmployeeID); err != nil {
			return auth.UserResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.userRepo.Create(ctx, auth.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         auth.Role(req.Role),
		EmployeeID:   req.EmployeeID,
	})
	if err != nil {
		return auth.UserResponse{}, err
	}

	return auth.UserResponse{
		ID:         created.ID,
		Email:      created.Email,
		Role:       string(created.Role),
		EmployeeID: created.EmployeeID,
	}, nil
}

func (a *AuthServiceImpl) issueTokenPair(user auth.User) (auth.TokenPairResponse, error) {
	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(user.ID, user.Email, user.EmployeeID, user.Role)
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := a.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return auth.TokenPairResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenPairResponse{
		AccessToken:  accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
	}, nil
}
