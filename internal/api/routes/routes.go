package routes

import (
	"net/http"

	"studioops/internal/api/handlers"
	"studioops/internal/api/middleware"
	"studioops/internal/config"
	"studioops/internal/sim"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, session *sim.Session) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())

	// Mutating endpoints share one rate limiter.
	limited := middleware.RateLimit(cfg)

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(session))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(session))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		// Talent market routes
		market := v1.Group("/market")
		{
			market.GET("", handlers.MarketHandler(session))
			market.POST("/refresh", handlers.RefreshMarketHandler(session), limited)
			market.GET("/:id/fee", handlers.QuoteFeeHandler(session))
			market.POST("/:id/hire", handlers.HireFromMarketHandler(session), limited)
		}

		// Job posting routes
		postings := v1.Group("/postings")
		{
			postings.POST("", handlers.CreatePostingHandler(session), limited)
			postings.GET("", handlers.ListPostingsHandler(session))
			postings.GET("/:id", handlers.GetPostingHandler(session))
			postings.POST("/:id/pause", handlers.PausePostingHandler(session), limited)
			postings.POST("/:id/resume", handlers.ResumePostingHandler(session), limited)
			postings.POST("/:id/close", handlers.ClosePostingHandler(session), limited)
			postings.POST("/:id/applicants/:applicantID/interview", handlers.InterviewHandler(session), limited)
			postings.POST("/:id/applicants/:applicantID/hire", handlers.HireApplicantHandler(session), limited)
		}

		// Support desk routes
		support := v1.Group("/support")
		{
			support.GET("/complaints", handlers.ListComplaintsHandler(session))
			support.GET("/stats", handlers.ComplaintStatsHandler(session))
			support.POST("/complaints/:id/assign", handlers.AssignComplaintHandler(session), limited)
			support.POST("/complaints/:id/unassign", handlers.UnassignComplaintHandler(session), limited)
			support.POST("/auto-assign", handlers.AutoAssignHandler(session), limited)
		}

		// Company routes
		company := v1.Group("/company")
		{
			company.GET("", handlers.CompanyHandler(session))
			company.GET("/employees", handlers.ListEmployeesHandler(session))
			company.DELETE("/employees/:id", handlers.DismissEmployeeHandler(session), limited)
			company.POST("/products", handlers.AddProductHandler(session), limited)
		}

		// Simulation clock routes
		simulation := v1.Group("/simulation")
		{
			simulation.POST("/day", handlers.AdvanceDayHandler(session), limited)
			simulation.POST("/month", handlers.AdvanceMonthHandler(session), limited)
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "StudioOps Workforce Engine",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
