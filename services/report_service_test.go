package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakecha-backend/models"
)

func TestSubmitReport(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	booth := createFranchisee(t, db, "booth-1", models.RoleFranchisee)
	actor := actorFor(booth)

	submitReport(t, svc, actor, "2024-05-01", 500)

	t.Run("duplicate date for same owner", func(t *testing.T) {
		_, err := svc.Submit(actor, SubmitReportInput{
			ReportDate: date(t, "2024-05-01"),
			TotalSales: 123,
		})
		assert.ErrorIs(t, err, ErrDuplicateReport)

		var count int64
		db.Model(&models.DailyReport{}).
			Where("franchisee_id = ?", booth.ID).Count(&count)
		assert.EqualValues(t, 1, count, "exactly one report persisted per (franchisee, date)")
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := svc.Submit(actor, SubmitReportInput{
			ReportDate: date(t, "2024-05-02"),
			TotalSales: -1,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Submit(actor, SubmitReportInput{TotalSales: 10})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

// Scenario: two owners share a date, a resubmission is rejected, an admin
// edit lands, and the month assembly reflects the edited totals.
func TestReportLifecycleScenario(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	admin := createFranchisee(t, db, "admin", models.RoleAdministrator)
	boothA := createFranchisee(t, db, "booth-a", models.RoleFranchisee)
	boothB := createFranchisee(t, db, "booth-b", models.RoleFranchisee)

	reportA := submitReport(t, svc, actorFor(boothA), "2024-05-01", 500)
	submitReport(t, svc, actorFor(boothB), "2024-05-01", 300)

	_, err := svc.Submit(actorFor(boothA), SubmitReportInput{
		ReportDate: date(t, "2024-05-01"),
		TotalSales: 999,
	})
	assert.ErrorIs(t, err, ErrDuplicateReport)

	updated, err := svc.Update(actorFor(admin), reportA.ID, SubmitReportInput{
		ReportDate: date(t, "2024-05-01"),
		TotalSales: 550,
	})
	require.NoError(t, err)
	assert.Equal(t, 550.0, updated.TotalSales)

	bundle, err := svc.AssemblePeriod(actorFor(admin), 2024, 5)
	require.NoError(t, err)
	assert.Equal(t, 850.0, bundle.TotalSales)
	assert.Len(t, bundle.Reports, 2)
}

func TestGetReportHidesForeignExistence(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	admin := createFranchisee(t, db, "admin", models.RoleAdministrator)
	boothA := createFranchisee(t, db, "booth-a", models.RoleFranchisee)
	boothB := createFranchisee(t, db, "booth-b", models.RoleFranchisee)
	report := submitReport(t, svc, actorFor(boothA), "2024-05-01", 100)

	own, err := svc.Get(actorFor(boothA), report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, own.ID)

	// A non-admin gets the same answer for a foreign report and a
	// missing one.
	_, err = svc.Get(actorFor(boothB), report.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = svc.Get(actorFor(boothB), uuid.New())
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Administrators still get a real not-found.
	_, err = svc.Get(actorFor(admin), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.Get(actorFor(admin), report.ID)
	assert.NoError(t, err)
}

func TestUpdateReportAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	admin := createFranchisee(t, db, "admin", models.RoleAdministrator)
	booth := createFranchisee(t, db, "booth-1", models.RoleFranchisee)
	report := submitReport(t, svc, actorFor(booth), "2024-05-01", 100)

	_, err := svc.Update(actorFor(booth), report.ID, SubmitReportInput{
		ReportDate: date(t, "2024-05-01"),
		TotalSales: 1,
	})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Update(actorFor(admin), uuid.New(), SubmitReportInput{
		ReportDate: date(t, "2024-05-01"),
		TotalSales: 1,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReportCascadesLinkedAttendanceOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)
	attendance := NewAttendanceService(db)

	admin := createFranchisee(t, db, "admin", models.RoleAdministrator)
	booth := createFranchisee(t, db, "booth-1", models.RoleFranchisee)
	actor := actorFor(booth)

	doomed := submitReport(t, svc, actor, "2024-05-01", 100)
	kept := submitReport(t, svc, actor, "2024-05-02", 100)

	_, err := attendance.Log(actor, doomed.ID, "Alice", true, "")
	require.NoError(t, err)
	keptEntry, err := attendance.Log(actor, kept.ID, "Bob", true, "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(actor, doomed.ID), ErrUnauthorized)
	require.NoError(t, svc.Delete(actorFor(admin), doomed.ID))

	var entries []models.TeamAttendance
	require.NoError(t, db.Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, keptEntry.ID, entries[0].ID)
}

func TestListReportsScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	admin := createFranchisee(t, db, "admin", models.RoleAdministrator)
	boothA := createFranchisee(t, db, "booth-a", models.RoleFranchisee)
	boothB := createFranchisee(t, db, "booth-b", models.RoleFranchisee)

	submitReport(t, svc, actorFor(boothA), "2024-05-01", 10)
	submitReport(t, svc, actorFor(boothA), "2024-05-02", 20)
	submitReport(t, svc, actorFor(boothB), "2024-05-01", 30)

	// Non-admins only see their own, whatever owner they ask for.
	own, err := svc.List(actorFor(boothA), boothB.ID)
	require.NoError(t, err)
	require.Len(t, own, 2)
	for _, report := range own {
		assert.Equal(t, boothA.ID, report.FranchiseeID)
	}
	assert.True(t, !own[0].ReportDate.Before(own[1].ReportDate), "newest first")

	all, err := svc.List(actorFor(admin), uuid.Nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := svc.List(actorFor(admin), boothB.ID)
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestAssemblePeriod(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	admin := createFranchisee(t, db, "admin", models.RoleAdministrator)
	booth := createFranchisee(t, db, "booth-1", models.RoleFranchisee)
	actor := actorFor(booth)

	// 2024 is a leap year: February runs through the 29th.
	submitReport(t, svc, actor, "2024-02-01", 100)
	submitReport(t, svc, actor, "2024-02-29", 200)
	submitReport(t, svc, actor, "2024-03-01", 400)

	bundle, err := svc.AssemblePeriod(actorFor(admin), 2024, 2)
	require.NoError(t, err)
	require.Len(t, bundle.Reports, 2)
	assert.Equal(t, 300.0, bundle.TotalSales)
	assert.Equal(t, time.February, bundle.Month)
	for _, report := range bundle.Reports {
		assert.Equal(t, time.February, report.ReportDate.Month())
	}

	t.Run("input validation", func(t *testing.T) {
		_, err := svc.AssemblePeriod(actorFor(admin), 2024, 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = svc.AssemblePeriod(actorFor(admin), 2024, 13)
		assert.ErrorIs(t, err, ErrInvalidInput)
		_, err = svc.AssemblePeriod(actorFor(admin), 1900, 2)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("admin only", func(t *testing.T) {
		_, err := svc.AssemblePeriod(actor, 2024, 2)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestDashboardAggregates(t *testing.T) {
	db := setupTestDB(t)
	svc := NewReportService(db)

	admin := createFranchisee(t, db, "admin", models.RoleAdministrator)
	boothA := createFranchisee(t, db, "booth-a", models.RoleFranchisee)
	boothB := createFranchisee(t, db, "booth-b", models.RoleFranchisee)

	today := time.Now().UTC().Format("2006-01-02")
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
	submitReport(t, svc, actorFor(boothA), today, 500)
	submitReport(t, svc, actorFor(boothB), today, 300)
	submitReport(t, svc, actorFor(boothB), yesterday, 300)
	// Outside the trailing window.
	submitReport(t, svc, actorFor(boothA), "2020-01-01", 9999)

	booths, err := svc.TopBooths(actorFor(admin))
	require.NoError(t, err)
	require.Len(t, booths, 2)
	assert.Equal(t, boothB.Name, booths[0].Name)
	assert.Equal(t, 600.0, booths[0].TotalSales)
	assert.Equal(t, boothA.Name, booths[1].Name)
	assert.Equal(t, 500.0, booths[1].TotalSales)

	_, err = svc.TopBooths(actorFor(boothA))
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.MonthToDateSales(actorFor(boothA))
	assert.ErrorIs(t, err, ErrUnauthorized)
}
