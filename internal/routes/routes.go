package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/navodaya_web/internal/config"
	"github.com/zaqqye/navodaya_web/internal/controllers"
	"github.com/zaqqye/navodaya_web/internal/middleware"
	"github.com/zaqqye/navodaya_web/internal/repository"
)

func Register(r *gin.Engine, store repository.Store, cfg *config.Config) {
	authCtrl := &controllers.AuthController{Store: store, JWTSecret: cfg.JWTSecret, AccessTTL: cfg.AccessTTL()}
	companyCtrl := &controllers.CompanyController{Store: store}
	serviceCtrl := &controllers.ServiceController{Store: store}
	projectCtrl := &controllers.ProjectController{Store: store}
	contactCtrl := &controllers.ContactController{Store: store}

	r.Use(middleware.CORS())

	// Public
	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "PT Navodaya Multi Solusi API"})
		})
		api.GET("/company", companyCtrl.Get)
		api.GET("/services", serviceCtrl.ListServices)
		api.GET("/services/:id", serviceCtrl.GetService)
		api.GET("/projects", projectCtrl.ListProjects)
		api.GET("/projects/:id", projectCtrl.GetProject)
		api.POST("/contact", contactCtrl.Submit)
		api.POST("/admin/login", authCtrl.Login)
	}

	// Admin-only
	authMW := middleware.AuthMiddleware(store, middleware.AuthConfig{JWTSecret: cfg.JWTSecret})
	admin := r.Group("/api/admin", authMW)
	{
		admin.PUT("/company", companyCtrl.Update)

		admin.POST("/services", serviceCtrl.CreateService)
		admin.PUT("/services/:id", serviceCtrl.UpdateService)
		admin.DELETE("/services/:id", serviceCtrl.DeleteService)

		admin.POST("/projects", projectCtrl.CreateProject)
		admin.PUT("/projects/:id", projectCtrl.UpdateProject)
		admin.DELETE("/projects/:id", projectCtrl.DeleteProject)

		admin.GET("/messages", contactCtrl.ListMessages)
		admin.DELETE("/messages/:id", contactCtrl.DeleteMessage)
	}
}
