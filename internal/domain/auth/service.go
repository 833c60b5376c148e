package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPairResponse, error)
	Logout(ctx context.Context, accessToken string) error
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
}
