package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DailyReport struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FranchiseeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_franchisee_report_date,priority:1" json:"franchiseeId"`

	// One report per franchisee per date; the composite unique index is the
	// authoritative duplicate signal, there is no pre-insert existence check.
	ReportDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_franchisee_report_date,priority:2" json:"reportDate"`

	TotalSales    float64 `gorm:"type:decimal(10,2);not null" json:"totalSales"`
	CashCollected float64 `gorm:"type:decimal(10,2);default:0.0" json:"cashCollected"`
	BankedIn      float64 `gorm:"type:decimal(10,2);default:0.0" json:"bankedIn"`
	Expenses      float64 `gorm:"type:decimal(10,2);default:0.0" json:"expenses"`
	Description   string  `gorm:"type:text" json:"description"`

	Franchisee  Franchisee       `gorm:"foreignKey:FranchiseeID" json:"franchisee,omitempty"`
	Attendances []TeamAttendance `gorm:"foreignKey:DailyReportID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *DailyReport) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
