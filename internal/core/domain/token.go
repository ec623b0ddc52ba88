package domain

import "time"

// IssuedToken is a signed token together with the instant it stops being valid.
type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
}

// Session is the result of a successful login or refresh.
type Session struct {
	User         *User
	AccessToken  IssuedToken
	RefreshToken IssuedToken
}
