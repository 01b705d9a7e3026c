package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"custodian/internal/infrastructure/config"
	"custodian/internal/interfaces/http/middleware"
	"custodian/internal/shared/logger"
)

// Router holds the gin engine and the wired handlers.
type Router struct {
	engine    *gin.Engine
	container *container
	logger    logger.Interface
}

func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := buildContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Router{
		engine:    gin.New(),
		container: c,
		logger:    log,
	}, nil
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api/v1")

	api.POST("/auth/login", r.container.authHandler.Login)

	requireAuth := r.container.authMiddleware.RequireAuth()

	cases := api.Group("/cases")
	cases.Use(requireAuth)
	{
		cases.POST("", r.container.caseHandler.CreateCase)
		cases.GET("", r.container.caseHandler.ListCases)
		cases.GET("/:id", r.container.caseHandler.GetCase)
		cases.PATCH("/:id", r.container.caseHandler.UpdateCase)
		cases.POST("/:id/status", r.container.caseHandler.SetStatus)
		cases.POST("/:id/close", r.container.caseHandler.CloseCase)
		cases.POST("/:id/archive", r.container.caseHandler.ArchiveCase)
		cases.POST("/:id/authorise", r.container.caseHandler.Authorise)
		cases.POST("/:id/roles", r.container.caseHandler.AssignRole)
	}

	tasks := api.Group("/tasks")
	tasks.Use(requireAuth)
	{
		tasks.POST("", r.container.taskHandler.CreateTask)
		tasks.GET("", r.container.taskHandler.ListTasks)
		tasks.GET("/:id", r.container.taskHandler.GetTask)
		tasks.PATCH("/:id", r.container.taskHandler.UpdateTask)
		tasks.POST("/:id/status", r.container.taskHandler.SetStatus)
		tasks.POST("/:id/notes", r.container.taskHandler.AddNote)
		tasks.POST("/:id/investigators", r.container.taskHandler.AssignInvestigators)
		tasks.POST("/:id/claim", r.container.taskHandler.AssignSelf)
		tasks.POST("/:id/qa/reviewers", r.container.taskHandler.AssignQA)
		tasks.POST("/:id/qa/request", r.container.taskHandler.RequestQA)
		tasks.POST("/:id/qa/pass", r.container.taskHandler.PassQA)
		tasks.POST("/:id/qa/fail", r.container.taskHandler.FailQA)
	}

	evidence := api.Group("/evidence")
	evidence.Use(requireAuth)
	{
		evidence.POST("", r.container.evidenceHandler.CreateEvidence)
		evidence.GET("", r.container.evidenceHandler.ListEvidence)
		evidence.GET("/:id", r.container.evidenceHandler.GetEvidence)
		evidence.PATCH("/:id", r.container.evidenceHandler.UpdateEvidence)
		evidence.POST("/:id/status", r.container.evidenceHandler.SetStatus)
		evidence.POST("/:id/check-in", r.container.evidenceHandler.CheckIn)
		evidence.POST("/:id/check-out", r.container.evidenceHandler.CheckOut)
	}

	users := api.Group("/users")
	users.Use(requireAuth)
	{
		users.POST("", r.container.userHandler.RegisterUser)
		users.GET("", r.container.userHandler.ListUsers)
		users.GET("/me", r.container.userHandler.GetCurrentUser)
		users.GET("/:id", r.container.userHandler.GetUser)
		users.PATCH("/:id", r.container.userHandler.UpdateUser)
		users.POST("/:id/roles", r.container.userHandler.GrantRole)
		users.DELETE("/:id/roles/:role", r.container.userHandler.RevokeRole)
		users.PUT("/:id/manager", r.container.userHandler.SetManager)
	}
}
