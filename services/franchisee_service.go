// services/franchisee_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sakecha-backend/models"
	"sakecha-backend/utils"
)

type FranchiseeService struct {
	db *gorm.DB
}

func NewFranchiseeService(db *gorm.DB) *FranchiseeService {
	return &FranchiseeService{db: db}
}

// Register creates a self-service, non-administrator account. The unique
// index on username is the duplicate-handle signal.
func (s *FranchiseeService) Register(username, password, name, location string) (*models.Franchisee, error) {
	username = strings.TrimSpace(username)
	if !utils.ValidateHandle(username) || password == "" {
		return nil, ErrInvalidInput
	}
	if name == "" {
		name = "New Franchisee"
	}
	if location == "" {
		location = "Unspecified"
	}

	franchisee := models.Franchisee{
		Username: username,
		Password: password, // hashed in BeforeCreate hook
		Name:     name,
		Location: location,
		Role:     models.RoleFranchisee,
	}

	if err := s.db.Create(&franchisee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateHandle
		}
		return nil, err
	}
	return &franchisee, nil
}

// Authenticate verifies the handle and password. Unknown handle and wrong
// password are indistinguishable to the caller.
func (s *FranchiseeService) Authenticate(username, password string) (*models.Franchisee, error) {
	username = strings.TrimSpace(username)

	var franchisee models.Franchisee
	if err := s.db.Where("username = ?", username).First(&franchisee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, franchisee.Password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(&franchisee).Update("last_login", &now).Error; err != nil {
		logrus.WithError(err).Warn("failed to record last login")
	}

	return &franchisee, nil
}

func (s *FranchiseeService) Get(actor Actor, id uuid.UUID) (*models.Franchisee, error) {
	if err := Authorize(actor, models.RoleFranchisee, id); err != nil {
		return nil, err
	}

	var franchisee models.Franchisee
	if err := s.db.First(&franchisee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &franchisee, nil
}

func (s *FranchiseeService) List(actor Actor) ([]models.Franchisee, error) {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return nil, err
	}

	var franchisees []models.Franchisee
	if err := s.db.Order("name ASC").Find(&franchisees).Error; err != nil {
		return nil, err
	}
	return franchisees, nil
}

// Create is the administrative account creation path and may set the role.
func (s *FranchiseeService) Create(actor Actor, username, password, name, location, phone string, role models.Role) (*models.Franchisee, error) {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	if !utils.ValidateHandle(username) || password == "" {
		return nil, ErrInvalidInput
	}
	if role == "" {
		role = models.RoleFranchisee
	}
	if !role.Valid() {
		return nil, ErrInvalidInput
	}

	franchisee := models.Franchisee{
		Username: username,
		Password: password,
		Name:     name,
		Location: location,
		Phone:    phone,
		Role:     role,
	}
	if err := s.db.Create(&franchisee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateHandle
		}
		return nil, err
	}
	return &franchisee, nil
}

type UpdateFranchiseeInput struct {
	Name     *string
	Location *string
	Phone    *string
	Password *string
	Role     *models.Role
}

func (s *FranchiseeService) Update(actor Actor, id uuid.UUID, input UpdateFranchiseeInput) (*models.Franchisee, error) {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return nil, err
	}

	var franchisee models.Franchisee
	if err := s.db.First(&franchisee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if input.Name != nil {
		franchisee.Name = *input.Name
	}
	if input.Location != nil {
		franchisee.Location = *input.Location
	}
	if input.Phone != nil {
		franchisee.Phone = *input.Phone
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, ErrInvalidInput
		}
		franchisee.Role = *input.Role
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, ErrInvalidInput
		}
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		franchisee.Password = hashed
	}

	if err := s.db.Save(&franchisee).Error; err != nil {
		return nil, err
	}
	return &franchisee, nil
}

// Delete removes the franchisee and everything it owns. The cascade is an
// explicit ordered sequence inside one transaction: a crash mid-way must
// not leave orphaned rows.
func (s *FranchiseeService) Delete(actor Actor, id uuid.UUID) error {
	if err := Authorize(actor, models.RoleAdministrator, uuid.Nil); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var franchisee models.Franchisee
		if err := tx.First(&franchisee, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("franchisee_id = ?", id).Delete(&models.TeamAttendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("franchisee_id = ?", id).Delete(&models.DailyReport{}).Error; err != nil {
			return err
		}
		if err := tx.Where("franchisee_id = ?", id).Delete(&models.IngredientReorder{}).Error; err != nil {
			return err
		}
		return tx.Delete(&franchisee).Error
	})
}

// EnsureAdmin seeds the bootstrap administrator account at first run.
func (s *FranchiseeService) EnsureAdmin(username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	var existing models.Franchisee
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.Franchisee{
		Username: username,
		Password: password,
		Name:     "Headquarters Admin",
		Location: "Headquarters",
		Role:     models.RoleAdministrator,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.WithField("username", username).Info("bootstrap administrator created")
	return nil
}
