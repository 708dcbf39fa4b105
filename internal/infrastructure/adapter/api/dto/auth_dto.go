package dto

import (
	"time"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
)

// LoginRequest holds login credentials. Email is accepted as an alias of login.
type LoginRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// LoginName returns the first non empty login field
func (r LoginRequest) LoginName() string {
	for _, v := range []string{r.Login, r.Email, r.UserName} {
		if v != "" {
			return v
		}
	}
	return ""
}

// ProfileResponse is the authenticated user
type ProfileResponse struct {
	Token     string `json:"token,omitempty"`
	ExpiresOn string `json:"expires_on,omitempty"`
	UserID    uint64 `json:"user_id"`
	UserType  string `json:"user_type"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// NewProfileResponse renders a profile
func NewProfileResponse(p *entity.Profile) ProfileResponse {
	resp := ProfileResponse{
		Token:     p.Token,
		UserID:    p.UserID,
		UserType:  string(p.UserType),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
	if !p.ExpiresOn.IsZero() {
		resp.ExpiresOn = p.ExpiresOn.UTC().Format(time.RFC3339)
	}
	return resp
}
