// services/report_service.go
package services

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sakecha-backend/models"
	"sakecha-backend/utils"
)

const defaultMinReportYear = 2000

type ReportService struct {
	db      *gorm.DB
	minYear int
}

func NewReportService(db *gorm.DB) *ReportService {
	minYear := defaultMinReportYear
	if env := os.Getenv("REPORT_MIN_YEAR"); env != "" {
		if y, err := strconv.Atoi(env); err == nil {
			minYear = y
		}
	}
	return &ReportService{db: db, minYear: minYear}
}

type SubmitReportInput struct {
	ReportDate    time.Time
	TotalSales    float64
	CashCollected float64
	BankedIn      float64
	Expenses      float64
	Description   string
}

func (in SubmitReportInput) validate() error {
	if in.ReportDate.IsZero() {
		return ErrInvalidInput
	}
	if in.TotalSales < 0 || in.CashCollected < 0 || in.BankedIn < 0 || in.Expenses < 0 {
		return ErrInvalidInput
	}
	return nil
}

// Submit persists one report for (actor, date). There is no existence
// pre-check: concurrent submissions race on the unique index and the loser
// gets the constraint violation, reported as a duplicate.
func (s *ReportService) Submit(actor Actor, input SubmitReportInput) (*models.DailyReport, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	report := models.DailyReport{
		FranchiseeID:  actor.ID,
		ReportDate:    utils.DateOnly(input.ReportDate),
		TotalSales:    input.TotalSales,
		CashCollected: input.CashCollected,
		BankedIn:      input.BankedIn,
		Expenses:      input.Expenses,
		Description:   input.Description,
	}

	if err := s.db.Create(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReport
		}
		return nil, err
	}
	return &report, nil
}

func (s *ReportService) Get(actor Actor, id uuid.UUID) (*models.DailyReport, error) {
	var report models.DailyReport
	if err := s.db.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if actor.IsAdmin() {
				return nil, ErrNotFound
			}
			// A missing report must be indistinguishable from a foreign one.
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if err := Authorize(actor, models.RoleFranchisee, report.FranchiseeID); err != nil {
		return nil, err
	}
	return &report, nil
}

// Update fully overwrites the mutable fields; administrator only.
func (s *ReportService) Update(actor Actor, id uuid.UUID, input SubmitReportInput) (*models.DailyReport, error) {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	var report models.DailyReport
	if err := s.db.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	report.ReportDate = utils.DateOnly(input.ReportDate)
	report.TotalSales = input.TotalSales
	report.CashCollected = input.CashCollected
	report.BankedIn = input.BankedIn
	report.Expenses = input.Expenses
	report.Description = input.Description

	if err := s.db.Save(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateReport
		}
		return nil, err
	}
	return &report, nil
}

// Delete removes the report and the attendance entries linked to it, and
// no others, within one transaction.
func (s *ReportService) Delete(actor Actor, id uuid.UUID) error {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var report models.DailyReport
		if err := tx.First(&report, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("daily_report_id = ?", id).Delete(&models.TeamAttendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&report).Error
	})
}

// List returns reports newest first. Non-administrators only ever see
// their own regardless of the requested owner.
func (s *ReportService) List(actor Actor, owner uuid.UUID) ([]models.DailyReport, error) {
	query := s.db.Order("report_date DESC")

	if !actor.IsAdmin() {
		query = query.Where("franchisee_id = ?", actor.ID)
	} else if owner != uuid.Nil {
		query = query.Where("franchisee_id = ?", owner)
	}

	var reports []models.DailyReport
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

type BoothSummary struct {
	Name       string  `json:"name"`
	TotalSales float64 `json:"totalSales"`
}

// TopBooths sums total_sales per franchisee over the trailing seven days
// and returns the top five.
func (s *ReportService) TopBooths(actor Actor) ([]BoothSummary, error) {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return nil, err
	}

	sevenDaysAgo := utils.DateOnly(time.Now().AddDate(0, 0, -7))

	var booths []BoothSummary
	err := s.db.Table("daily_reports").
		Select("franchisees.name, SUM(daily_reports.total_sales) as total_sales").
		Joins("JOIN franchisees ON franchisees.id = daily_reports.franchisee_id").
		Where("daily_reports.report_date >= ?", sevenDaysAgo).
		Group("franchisees.name").
		Order("total_sales DESC").
		Limit(5).
		Scan(&booths).Error
	if err != nil {
		return nil, err
	}
	return booths, nil
}

// MonthToDateSales sums total_sales across all franchisees for the current
// calendar month.
func (s *ReportService) MonthToDateSales(actor Actor) (float64, error) {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return 0, err
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var total float64
	err := s.db.Model(&models.DailyReport{}).
		Where("report_date >= ?", firstOfMonth).
		Select("COALESCE(SUM(total_sales), 0)").
		Scan(&total).Error
	return total, err
}

// PeriodBundle is the fully-resolved input handed to the document export
// collaborator. Assembly never touches rendering.
type PeriodBundle struct {
	Year       int
	Month      time.Month
	Reports    []models.DailyReport
	Attendance []models.TeamAttendance
	TotalSales float64
}

// AssemblePeriod fetches everything within the given month, inclusive of
// both ends, ordered by date then franchisee name.
func (s *ReportService) AssemblePeriod(actor Actor, year, month int) (*PeriodBundle, error) {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 || year < s.minYear {
		return nil, ErrInvalidInput
	}

	start, end := utils.MonthRange(year, time.Month(month))

	var reports []models.DailyReport
	err := s.db.
		Joins("JOIN franchisees ON franchisees.id = daily_reports.franchisee_id").
		Where("daily_reports.report_date BETWEEN ? AND ?", start, end).
		Order("daily_reports.report_date ASC, franchisees.name ASC").
		Preload("Franchisee").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}

	var attendance []models.TeamAttendance
	err = s.db.
		Joins("JOIN franchisees ON franchisees.id = team_attendances.franchisee_id").
		Where("team_attendances.attendance_date BETWEEN ? AND ?", start, end).
		Order("team_attendances.attendance_date ASC, franchisees.name ASC").
		Preload("Franchisee").
		Find(&attendance).Error
	if err != nil {
		return nil, err
	}

	var totalSales float64
	for _, report := range reports {
		totalSales += report.TotalSales
	}

	return &PeriodBundle{
		Year:       year,
		Month:      time.Month(month),
		Reports:    reports,
		Attendance: attendance,
		TotalSales: totalSales,
	}, nil
}
