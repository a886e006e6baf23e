package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sakecha-backend/models"
)

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFranchiseeService(db)

	franchisee, err := svc.Register("booth-1", "secret-password", "Booth One", "Downtown")
	require.NoError(t, err)
	assert.Equal(t, models.RoleFranchisee, franchisee.Role)
	assert.NotEqual(t, "secret-password", franchisee.Password, "password must be stored hashed")

	t.Run("duplicate handle", func(t *testing.T) {
		_, err := svc.Register("booth-1", "another-password", "Imposter", "Elsewhere")
		assert.ErrorIs(t, err, ErrDuplicateHandle)
	})

	t.Run("empty handle or password", func(t *testing.T) {
		_, err := svc.Register("", "secret-password", "", "")
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.Register("booth-2", "", "", "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFranchiseeService(db)

	_, err := svc.Register("booth-1", "secret-password", "Booth One", "Downtown")
	require.NoError(t, err)

	franchisee, err := svc.Authenticate("booth-1", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, "booth-1", franchisee.Username)
	assert.NotNil(t, franchisee.LastLogin)

	// Unknown handle and wrong password must be indistinguishable.
	_, err = svc.Authenticate("booth-1", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("no-such-booth", "secret-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestEnsureAdmin(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFranchiseeService(db)

	require.NoError(t, svc.EnsureAdmin("admin", "admin-password"))
	// Second run must not create another account.
	require.NoError(t, svc.EnsureAdmin("admin", "admin-password"))

	var count int64
	require.NoError(t, db.Model(&models.Franchisee{}).
		Where("role = ?", models.RoleAdministrator).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestFranchiseeAdminGate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFranchiseeService(db)

	owner := createFranchisee(t, db, "booth-1", models.RoleFranchisee)
	other := createFranchisee(t, db, "booth-2", models.RoleFranchisee)
	actor := actorFor(owner)

	_, err := svc.List(actor)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Create(actor, "booth-3", "secret-password", "", "", "", models.RoleFranchisee)
	assert.ErrorIs(t, err, ErrUnauthorized)

	name := "New Name"
	_, err = svc.Update(actor, other.ID, UpdateFranchiseeInput{Name: &name})
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.ErrorIs(t, svc.Delete(actor, other.ID), ErrUnauthorized)

	// A franchisee may read itself but not a peer.
	_, err = svc.Get(actor, owner.ID)
	assert.NoError(t, err)
	_, err = svc.Get(actor, other.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDeleteFranchiseeCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := NewFranchiseeService(db)
	reports := NewReportService(db)
	attendance := NewAttendanceService(db)
	reorders := NewReorderService(db, nil)

	admin := createFranchisee(t, db, "admin", models.RoleAdministrator)
	victim := createFranchisee(t, db, "booth-1", models.RoleFranchisee)
	survivor := createFranchisee(t, db, "booth-2", models.RoleFranchisee)

	victimReport := submitReport(t, reports, actorFor(victim), "2024-05-01", 100)
	survivorReport := submitReport(t, reports, actorFor(survivor), "2024-05-01", 200)

	_, err := attendance.Log(actorFor(victim), victimReport.ID, "Alice", true, "")
	require.NoError(t, err)
	_, err = attendance.Log(actorFor(survivor), survivorReport.ID, "Bob", true, "")
	require.NoError(t, err)

	_, err = reorders.Request(actorFor(victim), "Matcha Powder", 5)
	require.NoError(t, err)
	_, err = reorders.Request(actorFor(survivor), "Tapioca Pearls", 3)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(actorFor(admin), victim.ID))

	var countReports, countAttendance, countReorders int64
	db.Model(&models.DailyReport{}).Where("franchisee_id = ?", victim.ID).Count(&countReports)
	db.Model(&models.TeamAttendance{}).Where("franchisee_id = ?", victim.ID).Count(&countAttendance)
	db.Model(&models.IngredientReorder{}).Where("franchisee_id = ?", victim.ID).Count(&countReorders)
	assert.Zero(t, countReports)
	assert.Zero(t, countAttendance)
	assert.Zero(t, countReorders)

	// Cascade must not touch anyone else's records.
	db.Model(&models.DailyReport{}).Where("franchisee_id = ?", survivor.ID).Count(&countReports)
	db.Model(&models.TeamAttendance{}).Where("franchisee_id = ?", survivor.ID).Count(&countAttendance)
	db.Model(&models.IngredientReorder{}).Where("franchisee_id = ?", survivor.ID).Count(&countReorders)
	assert.EqualValues(t, 1, countReports)
	assert.EqualValues(t, 1, countAttendance)
	assert.EqualValues(t, 1, countReorders)

	err = svc.Delete(actorFor(admin), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
