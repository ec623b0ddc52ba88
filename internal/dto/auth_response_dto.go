package dto

import "github.com/SscSPs/todo_backend/internal/core/domain"

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func ToLoginResponse(session *domain.Session) LoginResponse {
	return LoginResponse{
		User:         ToUserResponse(session.User),
		AccessToken:  session.AccessToken.Value,
		RefreshToken: session.RefreshToken.Value,
	}
}

func ToRefreshTokenResponse(session *domain.Session) RefreshTokenResponse {
	return RefreshTokenResponse{
		AccessToken:  session.AccessToken.Value,
		RefreshToken: session.RefreshToken.Value,
	}
}
