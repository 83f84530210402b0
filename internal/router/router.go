// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuscell/placement-backend/internal/config"
	"github.com/campuscell/placement-backend/internal/handlers"
	"github.com/campuscell/placement-backend/internal/middleware"
	"github.com/campuscell/placement-backend/internal/models"
	"github.com/campuscell/placement-backend/internal/services"
	"github.com/campuscell/placement-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	auditService := services.NewAuditService(db)
	notificationService := services.NewNotificationService(db, cfg)
	visibilityService := services.NewVisibilityService(db)

	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db, visibilityService, auditService)
	internshipService := services.NewInternshipService(db, visibilityService, notificationService, auditService)
	applicationService := services.NewApplicationService(db, visibilityService, notificationService, auditService)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, userService)
	internshipHandler := handlers.NewInternshipHandler(internshipService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	studentHandler := handlers.NewStudentHandler(userService)
	mentorHandler := handlers.NewMentorHandler(userService)
	recruiterHandler := handlers.NewRecruiterHandler(internshipService)
	adminHandler := handlers.NewAdminHandler(adminService, userService, auditService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Frontend.BaseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Total-Count", "X-Page", "X-Per-Page", "X-Total-Pages"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.AuthRateLimit(), authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/verify", middleware.AuthRequired(), authHandler.Verify)
			auth.GET("/profile", middleware.AuthRequired(), authHandler.GetProfile)
			auth.PUT("/profile", middleware.AuthRequired(), authHandler.UpdateProfile)
		}

		// Internship routes
		internships := v1.Group("/internships")
		{
			internships.GET("", middleware.OptionalAuth(), internshipHandler.List)
			internships.GET("/recommended", middleware.AuthRequired(), middleware.RoleRequired(models.RoleStudent), internshipHandler.Recommended)
			internships.GET("/:id", middleware.OptionalAuth(), internshipHandler.Get)
			internships.POST("/submit", middleware.AuthRequired(), middleware.RoleRequired(models.RoleRecruiter), internshipHandler.Submit)

			// Recruiters manage their own postings; the service enforces ownership.
			owner := internships.Group("")
			owner.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin, models.RoleRecruiter))
			{
				owner.PUT("/:id", internshipHandler.Update)
				owner.DELETE("/:id", internshipHandler.Delete)
			}

			admin := internships.Group("")
			admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				admin.POST("", internshipHandler.Create)
				admin.POST("/:id/approve", internshipHandler.Approve)
				admin.POST("/:id/reject", internshipHandler.Reject)
				admin.POST("/:id/deactivate", internshipHandler.Deactivate)
				admin.POST("/:id/reactivate", internshipHandler.Reactivate)
			}
		}

		// Application routes
		applications := v1.Group("/applications")
		applications.Use(middleware.AuthRequired())
		{
			applications.POST("", middleware.RoleRequired(models.RoleStudent), applicationHandler.Create)
			applications.GET("", applicationHandler.List)
			applications.GET("/pending", middleware.RoleRequired(models.RoleMentor), applicationHandler.Pending)
			applications.GET("/:id", applicationHandler.Get)
			applications.PUT("/:id/status", middleware.RoleRequired(models.RoleMentor, models.RoleAdmin), applicationHandler.UpdateStatus)
		}

		// Student routes
		students := v1.Group("/students")
		students.Use(middleware.AuthRequired())
		{
			students.GET("", middleware.RoleRequired(models.RoleAdmin, models.RoleMentor, models.RoleRecruiter), studentHandler.List)
			students.GET("/:id", studentHandler.Get)
			students.PUT("/:id", middleware.AdminRequired(), studentHandler.Update)
			students.PUT("/:id/placement", middleware.AdminRequired(), studentHandler.SetPlacement)
		}

		// Mentor routes
		mentors := v1.Group("/mentors")
		mentors.Use(middleware.AuthRequired())
		{
			mentors.GET("", mentorHandler.List)
		}

		// Recruiter routes
		recruiters := v1.Group("/recruiters")
		recruiters.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRecruiter))
		{
			recruiters.GET("/internships", recruiterHandler.Internships)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.POST("/users", adminHandler.CreateUser)
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/analytics/applications", adminHandler.ApplicationAnalytics)
			admin.GET("/analytics/internships", adminHandler.InternshipStats)
			admin.GET("/audit", adminHandler.AuditLog)
		}
	}

	return r
}
