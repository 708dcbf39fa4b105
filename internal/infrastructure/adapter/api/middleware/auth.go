package middleware

import (
	"net/http"
	"strings"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/usecase"
	"github.com/gin-gonic/gin"
)

const profileKey = "smores.profile"

// tokenHeaders are checked in order; the first non empty one is used
var tokenHeaders = []string{"X_AUTHORIZATION", "X-Authorization", "Authorization"}

// AuthOptions controls the Auth middleware
type AuthOptions struct {
	Enabled           bool
	ImpersonateUserID uint64
}

// Auth resolves the session token of a request into a profile. With security
// switched off every request runs as the impersonated user.
func Auth(auth usecase.AuthUseCase, opts AuthOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			profile *entity.Profile
			err     error
		)
		if opts.Enabled {
			token := RequestToken(c)
			if token == "" {
				Abort(c, errs.ErrMissingToken)
				return
			}
			profile, err = auth.Authenticate(ctx, token)
		} else {
			profile, err = auth.Impersonate(ctx, opts.ImpersonateUserID)
		}
		if err != nil {
			Abort(c, err)
			return
		}

		c.Set(profileKey, profile)
		c.Next()
	}
}

// RequireUserType rejects sessions of any other user type with 403. It must
// run after Auth.
func RequireUserType(userType entity.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, ok := CurrentProfile(c)
		if !ok {
			Abort(c, errs.ErrMissingToken)
			return
		}
		if profile.UserType != userType {
			Abort(c, errs.NewHTTPError(http.StatusForbidden, "You are not allowed to access this resource", errs.CodeForbidden).
				WithDev("Only "+string(userType)+" sessions may use this route").
				WithCause(errs.ErrForbidden))
			return
		}
		c.Next()
	}
}

// CurrentProfile returns the profile stored by Auth
func CurrentProfile(c *gin.Context) (*entity.Profile, bool) {
	v, ok := c.Get(profileKey)
	if !ok {
		return nil, false
	}
	profile, ok := v.(*entity.Profile)
	return profile, ok && profile != nil
}

// RequestToken extracts the session token from the request headers.
// "Token: x", "Token x" and "Bearer x" are all accepted.
func RequestToken(c *gin.Context) string {
	for _, name := range tokenHeaders {
		if token := parseToken(c.GetHeader(name)); token != "" {
			return token
		}
	}
	return ""
}

func parseToken(value string) string {
	value = strings.TrimSpace(value)
	for _, scheme := range []string{"token", "bearer"} {
		if len(value) >= len(scheme) && strings.EqualFold(value[:len(scheme)], scheme) {
			rest := value[len(scheme):]
			if rest == "" || (rest[0] != ':' && rest[0] != ' ') {
				continue
			}
			return strings.TrimSpace(strings.TrimPrefix(rest, ":"))
		}
	}
	return value
}
