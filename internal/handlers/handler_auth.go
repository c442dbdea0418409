package handlers

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/freightops/freight_broker_app/internal/apperrors"
	portssvc "github.com/freightops/freight_broker_app/internal/core/ports/services"
	"github.com/freightops/freight_broker_app/internal/dto"
	"github.com/freightops/freight_broker_app/internal/middleware"
	"github.com/freightops/freight_broker_app/internal/platform/config"
)

// authHandler handles authentication requests, both local credentials and
// the Google OAuth exchange.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	googleOAuth  portssvc.GoogleOAuthHandlerSvcFacade
}

// registerAuthRoutes sets up the public authentication routes. Login is
// rate limited per client IP to slow down credential stuffing.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := &authHandler{
		userService:  services.User,
		tokenService: services.Token,
		googleOAuth:  services.GoogleOAuth,
	}

	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitLogin := middleware.RateLimit(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitLogin, h.login)
		auth.GET("/google/login", h.googleLoginURL)
		auth.POST("/google/exchange-code", limitLogin, h.googleExchangeCode)
	}
}

// login godoc
// @Summary User login
// @Description Authenticates with email and password and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewInvalidArgumentError("email and password are required"))
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(*user),
	})
}

// googleLoginURL godoc
// @Summary Start the Google OAuth flow
// @Description Returns the Google consent URL and the CSRF state to echo back.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.GoogleLoginURLResponse
// @Router /auth/google/login [get]
func (h *authHandler) googleLoginURL(c *gin.Context) {
	state, err := h.googleOAuth.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, dto.GoogleLoginURLResponse{
		URL:   h.googleOAuth.GetGoogleLoginURL(c.Request.Context(), state),
		State: state,
	})
}

// googleExchangeCode godoc
// @Summary Exchange a Google authorization code for an access token
// @Description Exchanges the code with Google, provisions or links the user, and returns an application JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.GoogleExchangeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid or expired authorization code"
// @Failure 401 {object} map[string]string "Google rejected the credentials"
// @Router /auth/google/exchange-code [post]
func (h *authHandler) googleExchangeCode(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromContext(c)

	var req dto.GoogleExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewInvalidArgumentError("authorization code is required"))
		return
	}

	oauthToken, err := h.googleOAuth.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			respondError(c, apperrors.NewInvalidArgumentError("invalid or expired authorization code"))
			return
		}
		respondError(c, err)
		return
	}

	info, err := h.googleOAuth.GetUserInfo(ctx, oauthToken)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	if info.Email == "" || info.ID == "" {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	user, err := h.userService.FindOrCreateUserFromGoogle(ctx, *info)
	if err != nil {
		respondError(c, err)
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User authenticated via Google", slog.String("user_id", user.UserID))
	respondOK(c, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(*user),
	})
}
