package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/lesnaszkolka/ino-backend/internal/core/ports/services"
	"github.com/lesnaszkolka/ino-backend/internal/dto"
	"github.com/lesnaszkolka/ino-backend/internal/middleware"
)

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(authService portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: authService}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)

	// Rate limit logins: 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/azure-login", limitMiddleware, h.azureLogin)
		auth.GET("/login-url", h.loginURL)
		auth.GET("/me", middleware.RequireAuth(authService), h.me)
	}
}

// azureLogin godoc
// @Summary Log in with an Azure AD token
// @Description Verifies the posted Azure AD token, provisions the user on first sight, and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.AzureLoginRequest true "Azure AD token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /auth/azure-login [post]
func (h *authHandler) azureLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AzureLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for azure login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.authService.VerifyAzureToken(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("Azure AD login failed", slog.String("error", err.Error()))
		// Login failures use the uniform envelope rather than an HTTP error;
		// the frontend renders the message as-is.
		c.JSON(http.StatusOK, dto.LoginResponse{
			Success: false,
			Message: "Azure AD authorization failed",
		})
		return
	}

	token, _, err := h.authService.GenerateToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate session token", slog.String("error", err.Error()))
		c.JSON(http.StatusOK, dto.LoginResponse{
			Success: false,
			Message: "Failed to generate session token",
		})
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	userResp := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Logged in successfully",
		Token:   &token,
		User:    &userResp,
	})
}

// loginURL godoc
// @Summary Azure AD authorization URL
// @Description Returns the authorization endpoint URL for the configured Azure AD client.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginURLResponse
// @Failure 500 {object} map[string]string
// @Router /auth/login-url [get]
func (h *authHandler) loginURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	url, err := h.authService.GetLoginURL(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build login URL", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build login URL"})
		return
	}
	c.JSON(http.StatusOK, dto.LoginURLResponse{URL: url})
}

// me godoc
// @Summary Current user
// @Description Returns the authenticated user's projection.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
