// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "careerhub-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"careerhub-backend/internal/career"
	"careerhub-backend/internal/middleware"
	"careerhub-backend/internal/organization"
)

const maxSubmissionBytes = 1 << 20 // 1 MiB covers the largest multi-step draft

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	careerController := career.NewController(s.DB)
	orgController := organization.NewController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins, // Add your frontend URL
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader())

	r.GET("/", s.HelloHandler)
	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		careerRoute := v1.Group("/careers")
		{
			careerRoute.GET("", careerController.GetCareers)
			careerRoute.GET(":id", careerController.GetCareerByID)
			careerRoute.POST("",
				middleware.EnvRateLimitMiddleware(),
				middleware.SizeLimit(maxSubmissionBytes),
				careerController.AddCareer)
			careerRoute.PATCH(":id",
				middleware.SizeLimit(maxSubmissionBytes),
				careerController.UpdateCareer)
			careerRoute.DELETE(":id", careerController.DeactivateCareer)
		}

		orgRoute := v1.Group("/organizations")
		{
			orgRoute.POST("", orgController.CreateOrganization)
			orgRoute.GET(":id", orgController.GetOrganization)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloHandler handle request by returning the service name
func (s *Server) HelloHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "CareerHub API"

	c.JSON(http.StatusOK, resp)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
