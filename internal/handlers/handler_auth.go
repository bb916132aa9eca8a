package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/dto"
	"github.com/SscSPs/officeflow/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles the public sign-in flows.
type authHandler struct {
	identityService portssvc.IdentitySignInSvc
}

func newAuthHandler(is portssvc.IdentitySignInSvc) *authHandler {
	return &authHandler{identityService: is}
}

// registerAuthRoutes registers sign-up, login and Google sign-in behind the login rate limiter.
func registerAuthRoutes(rg *gin.RouterGroup, identityService portssvc.IdentitySignInSvc, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(identityService)

	auth := rg.Group("/auth", middleware.RateLimit(loginLimiter))
	{
		auth.POST("/signup", h.signUp)
		auth.POST("/login", h.login)
		auth.POST("/google", h.googleSignIn)
	}
}

// signUp godoc
// @Summary Sign up with email and password
// @Description Creates a local identity and returns an access token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.SignUpRequest true "Sign-up details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or email already registered"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to sign up"
// @Router /auth/signup [post]
func (h *authHandler) signUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	identity, token, err := h.identityService.SignUp(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		handleServiceError(c, err, "Failed to sign up")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Identity signed up", slog.String("uid", identity.UID))
	c.JSON(http.StatusCreated, dto.ToAuthResponse(identity, token))
}

// login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	identity, token, err := h.identityService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(c, err, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(identity, token))
}

// googleSignIn godoc
// @Summary Sign in with a Google ID token
// @Description Validates the ID token against the configured client ID, creating the identity on first use
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   token body dto.GoogleSignInRequest true "Google ID token"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Invalid Google token"
// @Failure 500 {object} dto.ErrorResponse "Google sign-in failed"
// @Router /auth/google [post]
func (h *authHandler) googleSignIn(c *gin.Context) {
	var req dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	identity, token, err := h.identityService.GoogleSignIn(c.Request.Context(), req.IDToken)
	if err != nil {
		handleServiceError(c, err, "Google sign-in failed")
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(identity, token))
}

// legacyEndpointGone answers the retired form endpoints.
func legacyEndpointGone(c *gin.Context) {
	c.JSON(http.StatusGone, dto.NewErrorResponse("This endpoint has been removed. Use /api/auth/signup and /api/auth/register instead."))
}
