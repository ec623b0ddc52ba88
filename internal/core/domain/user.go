package domain

import "time"

// User represents a registered account in the domain.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`

	// The single live refresh token, stored as a digest. Nil when there is no session.
	RefreshTokenHash       *string    `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
}

// HasActiveSession reports whether a refresh token is stored and has not yet expired.
func (u *User) HasActiveSession(now time.Time) bool {
	if u.RefreshTokenHash == nil || *u.RefreshTokenHash == "" {
		return false
	}
	if u.RefreshTokenExpiryTime != nil && !now.Before(*u.RefreshTokenExpiryTime) {
		return false
	}
	return true
}
