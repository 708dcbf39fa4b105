package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/smores-api/internal/domain/entity"
	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

const profileEnvelopeKey = "profile"

// AuthHandler handles login sessions
type AuthHandler struct {
	auth     usecase.AuthUseCase
	renderer *Renderer
	logger   coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(auth usecase.AuthUseCase, renderer *Renderer, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		renderer: renderer,
		logger:   logger,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := middleware.BindBody(c, "user", &req); err != nil {
		middleware.Abort(c, err)
		return
	}

	fields := make(map[string]string)
	if req.LoginName() == "" {
		fields["email"] = "Email is required"
	}
	if req.Password == "" {
		fields["password"] = "Password is required"
	}
	if len(fields) > 0 {
		middleware.Abort(c, errs.NewValidationError("Please provide a login and password", errs.CodeInvalidRequest, fields))
		return
	}

	profile, err := h.auth.Login(c.Request.Context(), req.LoginName(), req.Password)
	if err != nil {
		h.logger.Info("Login rejected", map[string]any{
			"login": req.LoginName(),
			"ip":    c.ClientIP(),
		})
		middleware.Abort(c, err)
		return
	}

	h.renderer.Envelope(c, http.StatusOK, profileEnvelope(profile))
}

// Logout handles GET and POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.RequestToken(c)
	if token == "" {
		middleware.Abort(c, errs.ErrMissingToken)
		return
	}

	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		middleware.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Profile handles GET /auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	profile, ok := middleware.CurrentProfile(c)
	if !ok {
		middleware.Abort(c, errs.ErrMissingToken)
		return
	}

	h.renderer.Envelope(c, http.StatusOK, profileEnvelope(profile))
}

func profileEnvelope(profile *entity.Profile) dto.Envelope {
	env := dto.Envelope{profileEnvelopeKey: []dto.ProfileResponse{dto.NewProfileResponse(profile)}}
	env.SetMeta(dto.Meta{TotalRecordCount: 1, ReturnedRecordCount: 1, Page: 1, PerPage: 1})
	return env
}
