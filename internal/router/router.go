package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spadar-van-gogh/bosyboss-quiz-registration/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListQuizzes(c *ginext.Context)
	GetQuiz(c *ginext.Context)
	CreateQuiz(c *ginext.Context)
	UpdateQuiz(c *ginext.Context)
	DeleteQuiz(c *ginext.Context)
	RegisterTeam(c *ginext.Context)
	GetRegistration(c *ginext.Context)
	CancelRegistration(c *ginext.Context)
	CheckTeamName(c *ginext.Context)
	Login(c *ginext.Context)
	Dashboard(c *ginext.Context)
	ListRegistrations(c *ginext.Context)
	ExportRegistrations(c *ginext.Context)
	OverrideRegistrationStatus(c *ginext.Context)
}

func InitRouter(mode string, h Handler, adminAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Quizzes
		api.GET("/quizzes", h.ListQuizzes)
		api.GET("/quizzes/:id", h.GetQuiz)

		// Registrations
		api.POST("/registrations/team", h.RegisterTeam)
		api.GET("/registrations/team/:id", h.GetRegistration)
		api.PUT("/registrations/team/:id/cancel", h.CancelRegistration)
		api.GET("/registrations/check-team/:teamName/:quizId", h.CheckTeamName)

		// Admin
		api.POST("/admin/login", h.Login)

		admin := api.Group("")
		admin.Use(adminAuth)
		{
			admin.POST("/quizzes", h.CreateQuiz)
			admin.PUT("/quizzes/:id", h.UpdateQuiz)
			admin.DELETE("/quizzes/:id", h.DeleteQuiz)

			admin.GET("/admin/dashboard", h.Dashboard)
			admin.GET("/admin/registrations", h.ListRegistrations)
			admin.GET("/admin/export/:quizId", h.ExportRegistrations)
			admin.PUT("/admin/registrations/:id/status", h.OverrideRegistrationStatus)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
