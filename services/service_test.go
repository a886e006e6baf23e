package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sakecha-backend/models"
)

// setupTestDB opens a fresh in-memory database per test. A single
// connection keeps every query on the same :memory: instance.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Franchisee{},
		&models.DailyReport{},
		&models.TeamAttendance{},
		&models.IngredientReorder{},
	))
	return db
}

func createFranchisee(t *testing.T, db *gorm.DB, username string, role models.Role) *models.Franchisee {
	t.Helper()

	franchisee := models.Franchisee{
		Username: username,
		Password: "secret-password",
		Name:     "Booth " + username,
		Location: "Location " + username,
		Role:     role,
	}
	require.NoError(t, db.Create(&franchisee).Error)
	return &franchisee
}

func actorFor(f *models.Franchisee) Actor {
	return Actor{ID: f.ID, Role: f.Role}
}

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date literal %q: %v", value, err)
	}
	return parsed
}

func submitReport(t *testing.T, reports *ReportService, actor Actor, day string, totalSales float64) *models.DailyReport {
	t.Helper()
	report, err := reports.Submit(actor, SubmitReportInput{
		ReportDate: date(t, day),
		TotalSales: totalSales,
	})
	require.NoError(t, err)
	return report
}
