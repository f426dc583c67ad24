package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/campusvoice/internal/app/controllers"
	"github.com/emre/campusvoice/internal/app/models"
	"github.com/emre/campusvoice/internal/app/models/dto"
	"github.com/emre/campusvoice/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	facultyController *controllers.FacultyController,
	studentController *controllers.StudentController,
	feedbackController *controllers.FeedbackController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.PUT("/profile", authMiddleware.Authenticate(), authController.UpdateProfile)
	}

	// --- Admin management surface ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.Authenticate(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/faculty", adminController.ListFaculty)
		admin.POST("/faculty", adminController.CreateFaculty)
		admin.PUT("/faculty/:id", adminController.UpdateFaculty)
		admin.DELETE("/faculty/:id", adminController.DeleteFaculty)

		admin.GET("/students", adminController.ListStudents)
		admin.POST("/students", adminController.CreateStudent)
		admin.PUT("/students/:id", adminController.UpdateStudent)
		admin.DELETE("/students/:id", adminController.DeleteStudent)

		admin.GET("/feedback", adminController.ListAllFeedback)

		admin.GET("/profile", adminController.GetProfile)
		admin.PUT("/profile", adminController.UpdateProfile)
	}

	// --- Faculty dashboard ---
	faculty := api.Group("/faculty")
	faculty.Use(authMiddleware.Authenticate(), authMiddleware.RoleRequired(models.RoleFaculty))
	{
		faculty.GET("/feedback", facultyController.ListOwnFeedback)
		faculty.GET("/profile", facultyController.GetProfile)
		faculty.PUT("/profile", facultyController.UpdateProfile)
	}

	// --- Student self-service ---
	student := api.Group("/student")
	student.Use(authMiddleware.Authenticate(), authMiddleware.RoleRequired(models.RoleStudent))
	{
		student.GET("/profile", studentController.GetProfile)
		student.PUT("/profile", studentController.UpdateProfile)
	}

	// --- Feedback submission (students only) ---
	feedback := api.Group("/feedback")
	feedback.Use(authMiddleware.Authenticate(), authMiddleware.RoleRequired(models.RoleStudent))
	{
		feedback.POST("", feedbackController.Submit)
		feedback.GET("/faculty", feedbackController.ListFacultyDirectory)
	}

	// --- Uploads (any authenticated user) ---
	api.POST("/upload", authMiddleware.Authenticate(), uploadController.Upload)

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})
}
