package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamAttendance struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	FranchiseeID  uuid.UUID  `gorm:"type:uuid;index;not null" json:"franchiseeId"`
	DailyReportID *uuid.UUID `gorm:"type:uuid;index" json:"dailyReportId"`

	// Copied from the linked report's date, never supplied independently.
	AttendanceDate time.Time `gorm:"type:date;not null" json:"attendanceDate"`

	TeamMemberName string `gorm:"not null" json:"teamMemberName"`
	IsPresent      bool   `gorm:"not null" json:"isPresent"`
	Remarks        string `gorm:"type:text" json:"remarks"`

	Franchisee  Franchisee   `gorm:"foreignKey:FranchiseeID" json:"franchisee,omitempty"`
	DailyReport *DailyReport `gorm:"foreignKey:DailyReportID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *TeamAttendance) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
