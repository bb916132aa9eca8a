package handlers

import (
	"fmt"

	"github.com/SscSPs/officeflow/cmd/docs"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/middleware"
	"github.com/SscSPs/officeflow/internal/platform/config"
	"github.com/SscSPs/officeflow/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) error {
	useJSONFieldNames()

	loginLimiter, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid login rate limit %q: %w", cfg.LoginRateLimit, err)
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Form based endpoints replaced by /api/auth
	r.POST("/register-form-api", legacyEndpointGone)
	r.POST("/login-form-api", legacyEndpointGone)

	api := r.Group("/api")

	// Public routes
	company := newCompanyHandler(services.Company, services.User)
	api.POST("/verify-company-code", company.verifyCompanyCode)
	registerAuthRoutes(api, services.Identity, loginLimiter)

	setupProtectedRoutes(api, services, analytics, company)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupProtectedRoutes configures the authenticated part of /api. Registration
// only needs a verified token; everything else needs a directory record too.
func setupProtectedRoutes(
	api *gin.RouterGroup,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
	company *companyHandler,
) {
	authed := api.Group("", middleware.Authenticate(services.Identity), middleware.PosthogMiddleware(analytics))
	authed.POST("/auth/register", company.register)

	registered := authed.Group("", middleware.LoadCurrentUser(services.User))

	registerUserRoutes(registered, services.User, services.Provisioning)
	registerCompanyRoutes(registered, services.Company, services.User)
	registerRequestRoutes(registered, services.Request, services.Approval)
	registerAdminRoutes(registered, services.Provisioning)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
