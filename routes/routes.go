package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sakecha-backend/config"
	"sakecha-backend/controllers"
	"sakecha-backend/utils"
)

// Controllers carries everything the router dispatches to; built once in
// main and injected here.
type Controllers struct {
	Auth        *controllers.AuthController
	Reports     *controllers.ReportController
	Attendance  *controllers.AttendanceController
	Reorders    *controllers.ReorderController
	Franchisees *controllers.FranchiseeController
	Dashboard   *controllers.DashboardController
	Export      *controllers.ExportController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)

		auth.Use(utils.AuthMiddleware())
		auth.POST("/logout", ctrl.Auth.Logout)
		auth.GET("/me", ctrl.Auth.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Daily report routes
		reports := api.Group("/reports")
		{
			reports.POST("", ctrl.Reports.Create)
			reports.GET("", ctrl.Reports.List)
			reports.GET("/:id", ctrl.Reports.Get)
			reports.PUT("/:id", utils.AdminRequired(), ctrl.Reports.Update)
			reports.DELETE("/:id", utils.AdminRequired(), ctrl.Reports.Delete)
		}

		// Team attendance routes
		attendance := api.Group("/attendance")
		{
			attendance.POST("", ctrl.Attendance.Create)
			attendance.GET("", ctrl.Attendance.List)
			attendance.PUT("/:id", utils.AdminRequired(), ctrl.Attendance.Update)
			attendance.DELETE("/:id", utils.AdminRequired(), ctrl.Attendance.Delete)
		}

		// Ingredient reorder routes
		reorders := api.Group("/reorders")
		{
			reorders.POST("", ctrl.Reorders.Create)
			reorders.GET("", ctrl.Reorders.List)
			reorders.PUT("/:id/status", utils.AdminRequired(), ctrl.Reorders.UpdateStatus)
			reorders.DELETE("/:id", utils.AdminRequired(), ctrl.Reorders.Delete)
		}

		// Administrative routes
		admin := api.Group("", utils.AdminRequired())
		{
			franchisees := admin.Group("/franchisees")
			{
				franchisees.GET("", ctrl.Franchisees.List)
				franchisees.POST("", ctrl.Franchisees.Create)
				franchisees.GET("/:id", ctrl.Franchisees.Get)
				franchisees.PUT("/:id", ctrl.Franchisees.Update)
				franchisees.DELETE("/:id", ctrl.Franchisees.Delete)
			}

			admin.GET("/dashboard", ctrl.Dashboard.Overview)
			admin.GET("/export/monthly", ctrl.Export.MonthlyReport)
		}
	}

	return r
}
