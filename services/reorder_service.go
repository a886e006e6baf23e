// services/reorder_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sakecha-backend/models"
	"sakecha-backend/utils"
)

type ReorderService struct {
	db       *gorm.DB
	notifier *NotifyService
}

func NewReorderService(db *gorm.DB, notifier *NotifyService) *ReorderService {
	return &ReorderService{db: db, notifier: notifier}
}

// Request files a restock request for the actor. New requests always start
// in Pending.
func (s *ReorderService) Request(actor Actor, ingredientName string, quantity int) (*models.IngredientReorder, error) {
	ingredientName = strings.TrimSpace(ingredientName)
	if ingredientName == "" || quantity <= 0 {
		return nil, ErrInvalidInput
	}

	reorder := models.IngredientReorder{
		FranchiseeID:   actor.ID,
		RequestDate:    utils.DateOnly(time.Now()),
		IngredientName: ingredientName,
		Quantity:       quantity,
		Status:         models.ReorderPending,
	}
	if err := s.db.Create(&reorder).Error; err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.ReorderRequested(&reorder)
	}
	return &reorder, nil
}

// UpdateStatus moves a request through the workflow; administrator only.
func (s *ReorderService) UpdateStatus(actor Actor, id uuid.UUID, status models.ReorderStatus) (*models.IngredientReorder, error) {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	var reorder models.IngredientReorder
	if err := s.db.First(&reorder, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	reorder.Status = status
	if err := s.db.Save(&reorder).Error; err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.ReorderStatusChanged(&reorder)
	}
	return &reorder, nil
}

func (s *ReorderService) Delete(actor Actor, id uuid.UUID) error {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return err
	}

	result := s.db.Where("id = ?", id).Delete(&models.IngredientReorder{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns requests newest first. Non-administrators only see their own.
func (s *ReorderService) List(actor Actor, owner uuid.UUID) ([]models.IngredientReorder, error) {
	query := s.db.Order("request_date DESC")

	if !actor.IsAdmin() {
		query = query.Where("franchisee_id = ?", actor.ID)
	} else if owner != uuid.Nil {
		query = query.Where("franchisee_id = ?", owner)
	}

	var reorders []models.IngredientReorder
	if err := query.Find(&reorders).Error; err != nil {
		return nil, err
	}
	return reorders, nil
}
