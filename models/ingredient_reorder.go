package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReorderStatus string

const (
	ReorderPending   ReorderStatus = "Pending"
	ReorderApproved  ReorderStatus = "Approved"
	ReorderCompleted ReorderStatus = "Completed"
	ReorderRejected  ReorderStatus = "Rejected"
)

func (s ReorderStatus) Valid() bool {
	switch s {
	case ReorderPending, ReorderApproved, ReorderCompleted, ReorderRejected:
		return true
	}
	return false
}

type IngredientReorder struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FranchiseeID uuid.UUID `gorm:"type:uuid;index;not null" json:"franchiseeId"`

	RequestDate    time.Time     `gorm:"type:date;not null" json:"requestDate"`
	IngredientName string        `gorm:"not null" json:"ingredientName"`
	Quantity       int           `gorm:"not null" json:"quantity"`
	Status         ReorderStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`

	Franchisee Franchisee `gorm:"foreignKey:FranchiseeID" json:"franchisee,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *IngredientReorder) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
