package routes

import (
	"net/http"

	"teampro-backend/internal/api/handlers"
	"teampro-backend/internal/api/middleware"
	"teampro-backend/internal/auth"
	"teampro-backend/internal/config"
	"teampro-backend/internal/database/models"
	"teampro-backend/internal/notify"
	"teampro-backend/internal/repository"
	"teampro-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles the application services built on one store
type Services struct {
	Formation        *service.FormationService
	Progress         *service.ProgressService
	Invitation       *service.InvitationService
	Activity         *service.ActivityService
	ProblemStatement *service.ProblemStatementService
	Directory        *service.DirectoryService
}

// NewServices builds every service on top of db. A nil publisher keeps notifications in the inbox only.
func NewServices(db *gorm.DB, cfg *config.Config, publisher *notify.RedisPublisher) *Services {
	validate := validator.New()
	store := repository.NewStore(db)

	var notifier service.Notifier
	if publisher != nil {
		notifier = publisher
	}

	return &Services{
		Formation:        service.NewFormationService(store, validate, notifier),
		Progress:         service.NewProgressService(store, validate, notifier, cfg),
		Invitation:       service.NewInvitationService(store, validate, notifier, cfg),
		Activity:         service.NewActivityService(store, validate),
		ProblemStatement: service.NewProblemStatementService(store, validate),
		Directory:        service.NewDirectoryService(store, validate),
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, publisher *notify.RedisPublisher) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	services := NewServices(db, cfg, publisher)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), services.Directory)
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	var pinger handlers.Pinger
	if publisher != nil {
		pinger = publisher
	}
	healthHandler := handlers.NewHealthHandler(db, pinger)
	formationHandler := handlers.NewFormationHandler(services.Formation)
	progressHandler := handlers.NewProgressHandler(services.Progress, cfg.ProofMaxBytes)
	invitationHandler := handlers.NewInvitationHandler(services.Invitation)
	activityHandler := handlers.NewActivityHandler(services.Activity)
	problemStatementHandler := handlers.NewProblemStatementHandler(services.ProblemStatement)
	directoryHandler := handlers.NewDirectoryHandler(services.Directory)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/validate", authHandler.ValidateToken)
	}

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	adminOnly := authMiddleware.RequireRole(models.RoleAdmin)
	studentOnly := authMiddleware.RequireRole(models.RoleStudent)
	facultyOnly := authMiddleware.RequireRole(models.RoleFaculty)

	{
		formation := v1.Group("/formation")
		{
			formation.GET("/schedules", formationHandler.ListSchedules)
			formation.POST("/schedules/open", adminOnly, formationHandler.OpenFormation)
			formation.POST("/schedules/close", adminOnly, formationHandler.CloseFormation)
			formation.GET("/pool", studentOnly, formationHandler.Pool)
			formation.POST("/requests", studentOnly, formationHandler.SendRequest)
			formation.DELETE("/requests/to/:receiverId", studentOnly, formationHandler.CancelRequest)
			formation.POST("/requests/:id/accept", studentOnly, formationHandler.AcceptRequest)
			formation.POST("/requests/:id/reject", studentOnly, formationHandler.RejectRequest)
			formation.POST("/individual", studentOnly, formationHandler.GoIndividual)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", formationHandler.ListTeams)
			teams.GET("/me", studentOnly, formationHandler.GetMyTeam)
			teams.GET("/:id", formationHandler.GetTeam)
			teams.DELETE("/:id", adminOnly, formationHandler.DeleteTeam)
			teams.GET("/:id/progress", progressHandler.GetProgress)
			teams.PUT("/:id/mentor", progressHandler.AssignMentor)
			teams.PUT("/:id/problem-statement", progressHandler.AssignProblemStatement)
			teams.POST("/:id/meetings", studentOnly, progressHandler.AddMeeting)
			teams.GET("/:id/invitations", invitationHandler.ListForTeam)
			teams.GET("/:id/activity", activityHandler.ListTeamActivity)
		}

		meetings := v1.Group("/meetings")
		{
			meetings.PUT("/:id", studentOnly, progressHandler.UpdateMeeting)
			meetings.PUT("/:id/review", facultyOnly, progressHandler.AddFacultyReview)
			meetings.GET("/:id/proof", progressHandler.GetProof)
		}

		invitations := v1.Group("/invitations")
		{
			invitations.GET("", facultyOnly, invitationHandler.ListForFaculty)
			invitations.POST("", facultyOnly, invitationHandler.SendInvite)
			invitations.PUT("/:id", facultyOnly, invitationHandler.Edit)
			invitations.DELETE("/:id", facultyOnly, invitationHandler.Delete)
			invitations.POST("/:id/cancel", facultyOnly, invitationHandler.Cancel)
			invitations.POST("/:id/respond", studentOnly, invitationHandler.Respond)
			invitations.POST("/:id/attended", studentOnly, invitationHandler.MarkAttended)
		}

		notifications := v1.Group("/notifications", studentOnly)
		{
			notifications.GET("", activityHandler.ListNotifications)
			notifications.PUT("/:id/read", activityHandler.MarkNotificationRead)
		}

		problemStatements := v1.Group("/problem-statements")
		{
			problemStatements.GET("", problemStatementHandler.List)
			problemStatements.POST("", adminOnly, problemStatementHandler.Create)
			problemStatements.PUT("/:id", adminOnly, problemStatementHandler.Update)
			problemStatements.DELETE("/:id", adminOnly, problemStatementHandler.Delete)
		}

		v1.POST("/students", adminOnly, directoryHandler.CreateStudent)
		v1.GET("/faculty", authMiddleware.RequireRole(models.RoleFaculty, models.RoleAdmin), directoryHandler.ListFaculty)
		v1.POST("/faculty", adminOnly, directoryHandler.CreateFaculty)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{
			Success: false,
			Message: "endpoint not found: " + c.Request.Method + " " + c.Request.URL.Path,
			Code:    "NotFound",
		})
	})

	return router, nil
}
