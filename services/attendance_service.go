// services/attendance_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sakecha-backend/models"
)

type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// Log records one team member for the day of the linked report. The report
// must belong to the actor; the attendance date is copied from it, never
// supplied by the caller.
func (s *AttendanceService) Log(actor Actor, reportID uuid.UUID, memberName string, present bool, remarks string) (*models.TeamAttendance, error) {
	memberName = strings.TrimSpace(memberName)
	if memberName == "" {
		return nil, ErrInvalidInput
	}

	var report models.DailyReport
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Do not reveal whether the report exists to a non-owner.
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if report.FranchiseeID != actor.ID && !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}

	attendance := models.TeamAttendance{
		FranchiseeID:   report.FranchiseeID,
		DailyReportID:  &report.ID,
		AttendanceDate: report.ReportDate,
		TeamMemberName: memberName,
		IsPresent:      present,
		Remarks:        remarks,
	}
	if err := s.db.Create(&attendance).Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

type UpdateAttendanceInput struct {
	TeamMemberName *string
	IsPresent      *bool
	Remarks        *string
}

func (s *AttendanceService) Update(actor Actor, id uuid.UUID, input UpdateAttendanceInput) (*models.TeamAttendance, error) {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return nil, err
	}

	var attendance models.TeamAttendance
	if err := s.db.First(&attendance, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.TeamMemberName != nil {
		name := strings.TrimSpace(*input.TeamMemberName)
		if name == "" {
			return nil, ErrInvalidInput
		}
		attendance.TeamMemberName = name
	}
	if input.IsPresent != nil {
		attendance.IsPresent = *input.IsPresent
	}
	if input.Remarks != nil {
		attendance.Remarks = *input.Remarks
	}

	if err := s.db.Save(&attendance).Error; err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (s *AttendanceService) Delete(actor Actor, id uuid.UUID) error {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return err
	}

	result := s.db.Where("id = ?", id).Delete(&models.TeamAttendance{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type AttendanceFilter struct {
	Owner uuid.UUID
	From  time.Time
	To    time.Time
}

// List returns attendance entries newest first. Non-administrators only
// see their own.
func (s *AttendanceService) List(actor Actor, filter AttendanceFilter) ([]models.TeamAttendance, error) {
	query := s.db.Order("attendance_date DESC")

	if !actor.IsAdmin() {
		query = query.Where("franchisee_id = ?", actor.ID)
	} else if filter.Owner != uuid.Nil {
		query = query.Where("franchisee_id = ?", filter.Owner)
	}
	if !filter.From.IsZero() {
		query = query.Where("attendance_date >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("attendance_date <= ?", filter.To)
	}

	var entries []models.TeamAttendance
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
