package routes

import (
	"net/http"
	"time"

	"placehub/handlers"
	"placehub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/auth")
	{
		api.POST("/register", handlers.Register)
		api.POST("/login", handlers.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/me", handlers.GetMyProfile)
		api.PUT("/me", handlers.UpdateMyProfile)
	}
}

// RegisterSlotRoutes registers published-slot endpoints. Reads are public;
// writes require admin.
func RegisterSlotRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/available-slots")
	{
		api.GET("", handlers.GetAllSlots)
		api.GET("/:date", handlers.GetSlotsByDate)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", handlers.AddSlots)
		admin.PUT("/:date", handlers.ReplaceSlots)
		admin.DELETE("/:date", handlers.DeleteSlots)
	}
}

// RegisterInterviewRoutes registers booking and availability endpoints.
func RegisterInterviewRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/interviews")
	{
		api.GET("/available/week", handlers.GetWeekAvailability)
		api.GET("/available/date/:date", handlers.GetDayAvailability)

		api.POST("", middleware.JWTAuthUserMiddleware(), handlers.ScheduleInterview)
		api.GET("/my", middleware.JWTAuthUserMiddleware(), handlers.ListMyInterviews)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("", handlers.ListInterviews)
		admin.GET("/:id", handlers.GetInterview)
		admin.PUT("/:id", handlers.UpdateInterview)
		admin.DELETE("/:id", handlers.DeleteInterview)
	}
}

// RegisterMentorRoutes registers mentor profile endpoints.
func RegisterMentorRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/mentors")
	{
		api.GET("", handlers.ListMentors)
		api.GET("/:id", handlers.GetMentor)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", handlers.CreateMentor)
		admin.PUT("/:id", handlers.UpdateMentor)
		admin.PATCH("/:id/active", handlers.SetMentorActive)
		admin.DELETE("/:id", handlers.DeleteMentor)
	}
}

// RegisterWorkshopRoutes registers workshop and registration endpoints.
func RegisterWorkshopRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/workshops")
	{
		api.GET("", handlers.ListWorkshops)
		api.GET("/:id", handlers.GetWorkshop)
		api.GET("/link/:slug", handlers.GetWorkshopByLink)
		api.POST("/:id/register", handlers.RegisterParticipant)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", handlers.CreateWorkshop)
		admin.PUT("/:id", handlers.UpdateWorkshop)
		admin.DELETE("/:id", handlers.DeleteWorkshop)
		admin.PATCH("/:id/participants/:participantId/confirm", handlers.ConfirmRegistration)
		admin.DELETE("/:id/participants/:participantId", handlers.RemoveParticipant)
	}
}

// RegisterJobRoleRoutes registers role and template endpoints.
func RegisterJobRoleRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/job-roles")
	{
		api.GET("", handlers.ListJobRoles)
		api.GET("/:roleId/template", handlers.GetTemplateForRole)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", handlers.CreateJobRole)
		admin.DELETE("/:roleId", handlers.DeleteJobRole)
	}

	tpl := r.Group("/api/v1/templates")
	{
		tpl.GET("", handlers.ListTemplates)

		admin := tpl.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", handlers.CreateTemplate)
		admin.PUT("/:id", handlers.UpdateTemplate)
		admin.DELETE("/:id", handlers.DeleteTemplate)
	}
}

// RegisterJobCardRoutes registers placement progress card endpoints.
func RegisterJobCardRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/job-cards")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/:studentId", handlers.GetJobCard)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("", handlers.ListJobCards)
		admin.POST("", handlers.CreateJobCard)
		admin.PUT("/:studentId", handlers.UpdateJobCard)
		admin.DELETE("/:studentId", handlers.DeleteJobCard)
	}
}

// RegisterFeedbackRoutes registers mentor feedback endpoints.
func RegisterFeedbackRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/feedback")
	{
		api.POST("", middleware.JWTAuthMentorMiddleware(), handlers.AddFeedback)
		api.GET("/student/:studentId", middleware.JWTAuthUserMiddleware(), handlers.ListStudentFeedback)
	}
}

// RegisterAdminUserRoutes registers account administration endpoints.
func RegisterAdminUserRoutes(r *gin.Engine) {
	api := r.Group("/api/v1/users")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("", handlers.ListUsers)
		api.DELETE("/:id", handlers.DeleteUser)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r)
	RegisterSlotRoutes(r)
	RegisterInterviewRoutes(r)
	RegisterMentorRoutes(r)
	RegisterWorkshopRoutes(r)
	RegisterJobRoleRoutes(r)
	RegisterJobCardRoutes(r)
	RegisterFeedbackRoutes(r)
	RegisterAdminUserRoutes(r)
}
