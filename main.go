package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sakecha-backend/config"
	"sakecha-backend/controllers"
	"sakecha-backend/models"
	"sakecha-backend/routes"
	"sakecha-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	db, err := config.ConnectDB(os.Getenv("DB_URL"))
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}

	if err := db.AutoMigrate(
		&models.Franchisee{},
		&models.DailyReport{},
		&models.TeamAttendance{},
		&models.IngredientReorder{},
	); err != nil {
		logrus.WithError(err).Fatal("failed to migrate schema")
	}

	notifier := services.NewNotifyService(db)
	franchiseeService := services.NewFranchiseeService(db)
	reportService := services.NewReportService(db)
	attendanceService := services.NewAttendanceService(db)
	reorderService := services.NewReorderService(db, notifier)
	exportService := services.NewExportService()

	// Seed the bootstrap administrator at first run.
	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminUsername != "" && adminPassword != "" {
		if err := franchiseeService.EnsureAdmin(adminUsername, adminPassword); err != nil {
			logrus.WithError(err).Fatal("failed to seed administrator")
		}
	} else {
		logrus.Warn("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping administrator bootstrap")
	}

	notifier.StartScheduler()

	r := routes.SetupRouter(routes.Controllers{
		Auth:        controllers.NewAuthController(franchiseeService),
		Reports:     controllers.NewReportController(reportService),
		Attendance:  controllers.NewAttendanceController(attendanceService),
		Reorders:    controllers.NewReorderController(reorderService),
		Franchisees: controllers.NewFranchiseeController(franchiseeService),
		Dashboard:   controllers.NewDashboardController(reportService, reorderService),
		Export:      controllers.NewExportController(reportService, exportService),
	})
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
