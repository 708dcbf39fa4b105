package entity

import "time"

// AuthToken is a server-side session created by a successful login
type AuthToken struct {
	Token     string
	UserID    uint64
	UserType  UserType
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token is no longer valid at now
func (t *AuthToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Profile is what a client learns about itself after login
type Profile struct {
	Token     string
	ExpiresOn time.Time
	UserID    uint64
	UserType  UserType
	FirstName string
	LastName  string
	Email     string
}

// NewProfile combines a user with the session that authenticated it
func NewProfile(user *User, token *AuthToken) *Profile {
	profile := &Profile{
		UserID:    user.ID,
		UserType:  user.UserType,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
	if token != nil {
		profile.Token = token.Token
		profile.ExpiresOn = token.ExpiresAt
	}
	return profile
}
