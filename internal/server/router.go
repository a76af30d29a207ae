package server

import (
	"net/http"

	"project-hub/internal/config"
	"project-hub/internal/handlers"
	"project-hub/internal/middleware"
	"project-hub/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, s *store.Store) *gin.Engine {
	r := gin.Default()

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("hub_session", sessionStore))

	h := handlers.New(s, cfg)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "demo": cfg.DemoMode})
	})

	// AUTH
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth())

	api.GET("/me", h.Me)

	// ПРОЕКТЫ
	api.GET("/projects", h.ListProjects)
	api.POST("/projects", h.CreateProject)
	api.GET("/projects/:id", h.GetProject)
	api.PATCH("/projects/:id", h.UpdateProject)
	api.DELETE("/projects/:id", h.DeleteProject)
	api.GET("/projects/:id/summary", h.ProjectSummary)

	// участники проекта
	api.GET("/projects/:id/members", h.ListProjectMembers)
	api.POST("/projects/:id/members", h.AddProjectMember)
	api.DELETE("/projects/:id/members/:userID", h.RemoveProjectMember)

	// файлы проекта
	api.GET("/projects/:id/files", h.ListProjectFiles)
	api.POST("/projects/:id/files", h.AddProjectFile)
	api.DELETE("/projects/:id/files/:fileID", h.DeleteProjectFile)

	// ФИНАНСЫ
	api.GET("/projects/:id/finance", h.ProjectFinance)
	api.POST("/projects/:id/incomes", h.CreateIncome)
	api.PATCH("/projects/:id/incomes/:incomeID", h.UpdateIncome)
	api.DELETE("/projects/:id/incomes/:incomeID", h.DeleteIncome)
	api.POST("/projects/:id/expenses", h.CreateExpense)
	api.PATCH("/projects/:id/expenses/:expenseID", h.UpdateExpense)
	api.DELETE("/projects/:id/expenses/:expenseID", h.DeleteExpense)
	api.PUT("/projects/:id/shares", h.SetRevenueShare)

	// ЗАДАЧИ
	api.GET("/tasks", h.ListTasks)
	api.GET("/tasks/board", h.Board)
	api.POST("/tasks", h.CreateTask)
	api.PATCH("/tasks/:id", h.UpdateTask)
	api.DELETE("/tasks/:id", h.DeleteTask)
	api.POST("/tasks/:id/move", h.MoveTask)

	// комментарии к задачам
	api.GET("/tasks/:id/comments", h.ListTaskComments)
	api.POST("/tasks/:id/comments", h.AddTaskComment)
	api.DELETE("/tasks/:id/comments/:commentID", h.DeleteTaskComment)

	// КОМАНДА
	api.GET("/team", h.ListMembers)
	api.POST("/team", h.CreateMember)
	api.GET("/team/:id", h.GetMember)
	api.PATCH("/team/:id", h.UpdateMember)
	api.DELETE("/team/:id", h.DeleteMember)

	// УВЕДОМЛЕНИЯ
	api.GET("/notifications", h.ListNotifications)
	api.POST("/notifications/:id/read", h.MarkNotificationRead)
	api.POST("/notifications/read-all", h.MarkAllNotificationsRead)

	// ПОИСК
	api.GET("/search", h.Search)

	return r
}
