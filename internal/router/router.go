package router

import (
	"time"

	"github.com/deliverydesk/deliverydesk/internal/handlers"
	"github.com/deliverydesk/deliverydesk/internal/middleware"
	"github.com/deliverydesk/deliverydesk/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterUser)
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/logout", handlers.LogoutUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		protected := api.Group("", middleware.AuthMiddleware())
		{
			protected.GET("/users", handlers.ListUsers)

			protected.GET("/clients", handlers.ListClients)
			protected.POST("/clients", handlers.CreateClient)

			protected.GET("/projects", handlers.ListProjects)
			protected.POST("/projects", handlers.CreateProject)

			protected.GET("/deliveries", handlers.ListDeliveries)
			protected.POST("/deliveries", handlers.CreateDelivery)
			protected.PUT("/deliveries/:id", handlers.UpdateDelivery)
			protected.DELETE("/deliveries/:id", handlers.DeleteDelivery)

			protected.GET("/summary", handlers.GetMonthlySummary)

			protected.GET("/targets", handlers.GetTargets)
			protected.POST("/targets", handlers.SetTarget)

			protected.GET("/overview", handlers.GetFinancialOverview)
			protected.GET("/stats", handlers.GetSystemStats)

			protected.GET("/export", handlers.ExportDeliveries)

			protected.POST("/seed", handlers.SeedData)
		}
	}

	return r
}
