package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/cmd/docs"
	portssvc "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/ports/services"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through service interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if err := registerCustomValidators(); err != nil {
		return err
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	root := r.Group("")
	registerTransactionRoutes(root, services.Ledger)
	registerStatementRoutes(root, services.Statement)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
