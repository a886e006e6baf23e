package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sakecha-backend/utils"
)

// Role is a closed enumeration; new roles get a new constant, not a flag.
type Role string

const (
	RoleFranchisee    Role = "franchisee"
	RoleAdministrator Role = "administrator"
)

func (r Role) Valid() bool {
	return r == RoleFranchisee || r == RoleAdministrator
}

type Franchisee struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	Password string    `gorm:"not null" json:"-"`
	Name     string    `gorm:"not null" json:"name"`
	Location string    `gorm:"not null" json:"location"`
	Phone    string    `json:"phone"`

	Role Role `gorm:"type:varchar(20);not null;default:'franchisee'" json:"role"`

	LastLogin *time.Time `json:"lastLogin"`

	DailyReports       []DailyReport       `gorm:"foreignKey:FranchiseeID" json:"-"`
	TeamAttendances    []TeamAttendance    `gorm:"foreignKey:FranchiseeID" json:"-"`
	IngredientReorders []IngredientReorder `gorm:"foreignKey:FranchiseeID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *Franchisee) IsAdmin() bool {
	return f.Role == RoleAdministrator
}

// Initialize UUID and hash the password before creating
func (f *Franchisee) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Role == "" {
		f.Role = RoleFranchisee
	}
	hashed, err := utils.HashPassword(f.Password)
	if err != nil {
		return err
	}
	f.Password = hashed
	return
}
