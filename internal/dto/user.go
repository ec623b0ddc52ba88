package dto

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,notblank,max=255"`
	Email    string `json:"email" binding:"required,email,max=320"`
	Password string `json:"password" binding:"required,max=72"`
}

// LoginRequest holds the credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name *string `json:"name" binding:"omitempty,notblank,max=255"` // Only name is updatable for now
}

// RefreshTokenRequest carries the refresh token when the client does not use cookies.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}
