package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"hotelflow/constants"
	"hotelflow/models"
	"hotelflow/services/logger"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	ErrCodeStaffInvalidRole  = "INVALID_ROLE"
	ErrCodeStaffInvalidPin   = "INVALID_PIN"
	ErrCodeStaffEmailTaken   = "USER_EXISTS"
	ErrCodeStaffCreateFailed = "STAFF_CREATE_FAILED"
	ErrCodeStaffUpdateFailed = "STAFF_UPDATE_FAILED"
)

const staffCacheTTL = 5 * time.Minute

// ValidatePin checks the kiosk PIN format: exactly four digits.
func ValidatePin(pin string) error {
	if len(pin) != 4 {
		return &ServiceError{
			Code:    ErrCodeStaffInvalidPin,
			Message: "PIN must be exactly 4 digits",
		}
	}
	for _, r := range pin {
		if !unicode.IsDigit(r) {
			return &ServiceError{
				Code:    ErrCodeStaffInvalidPin,
				Message: "PIN must contain only digits",
			}
		}
	}
	return nil
}

// StaffService manages staff provisioning, the kiosk PIN credential and
// PIN-based kiosk login.
type StaffService struct {
	db     *gorm.DB
	redis  *redis.Client
	logger logger.Logger
}

type StaffServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewStaffService(opts StaffServiceOptions) *StaffService {
	return &StaffService{
		db:     opts.DB,
		redis:  opts.Redis,
		logger: opts.Logger,
	}
}

// CreateStaffInput carries the admin-entered fields of a new staff member.
type CreateStaffInput struct {
	Name          string
	Email         string
	Phone         string
	Role          string
	Shift         string
	AssignedAreas []string
}

// CreateStaff provisions a staff member: a linked user account with a
// temporary password, a pending staff record with a generated kiosk PIN,
// and the welcome/verification emails. Returns the staff row and the PIN
// so the admin can hand it over directly.
func (s *StaffService) CreateStaff(ctx context.Context, hotelID uint, input CreateStaffInput) (*models.Staff, string, error) {
	if !constants.IsValidStaffRole(input.Role) {
		return nil, "", &ServiceError{
			Code:    ErrCodeStaffInvalidRole,
			Message: fmt.Sprintf("unknown staff role %q", input.Role),
		}
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", &ServiceError{
			Code:    ErrCodeStaffEmailTaken,
			Message: fmt.Sprintf("an account already exists for %s", email),
		}
	}

	tempPassword, err := GenerateTemporaryPassword()
	if err != nil {
		return nil, "", &ServiceError{Code: ErrCodeStaffCreateFailed, Message: "failed to generate password", Err: err}
	}
	pin, err := GeneratePin()
	if err != nil {
		return nil, "", &ServiceError{Code: ErrCodeStaffCreateFailed, Message: "failed to generate PIN", Err: err}
	}
	code, err := GenerateVerificationCode()
	if err != nil {
		return nil, "", &ServiceError{Code: ErrCodeStaffCreateFailed, Message: "failed to generate code", Err: err}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", &ServiceError{Code: ErrCodeStaffCreateFailed, Message: "failed to hash password", Err: err}
	}

	// Duplicate PINs inside one hotel are possible; kiosk login takes the
	// first match. Surface collisions at provisioning time so an admin can
	// regenerate.
	var clash int64
	s.db.WithContext(ctx).Model(&models.Staff{}).
		Where("hotel_id = ? AND pin = ?", hotelID, pin).
		Count(&clash)
	if clash > 0 {
		s.logger.Error("PIN collision in hotel %d while provisioning %s", hotelID, email)
	}

	staff := models.Staff{
		HotelID:       hotelID,
		Name:          input.Name,
		Email:         email,
		Phone:         input.Phone,
		Role:          input.Role,
		Shift:         input.Shift,
		AssignedAreas: input.AssignedAreas,
		Status:        constants.AccountStatusPending,
		PIN:           pin,
		PinUpdatedAt:  time.Now(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:         email,
			Password:      string(hashed),
			Name:          input.Name,
			Role:          constants.RoleStaff,
			HotelID:       &hotelID,
			Status:        constants.AccountStatusPending,
			Code:          code,
			CodeCreatedAt: time.Now(),
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		staff.AuthID = user.ID
		return tx.Create(&staff).Error
	})
	if err != nil {
		return nil, "", &ServiceError{
			Code:    ErrCodeStaffCreateFailed,
			Message: fmt.Sprintf("failed to provision staff member %s", email),
			Err:     err,
		}
	}

	// Mail failures do not roll back provisioning; the admin still sees
	// the PIN in the response.
	if err := SendStaffWelcomeEmail(email, input.Name, tempPassword, pin); err != nil {
		s.logger.Error("Failed to send welcome email to %s: %v", email, err)
	}
	if err := SendVerificationEmail(email, code); err != nil {
		s.logger.Error("Failed to send verification email to %s: %v", email, err)
	}

	s.invalidateCache(ctx, hotelID)
	return &staff, pin, nil
}

// ActivateStaffByAuthID flips a staff record to active once the linked
// account verified its email.
func (s *StaffService) ActivateStaffByAuthID(ctx context.Context, authID uint) error {
	var staff models.Staff
	if err := s.db.WithContext(ctx).Where("auth_id = ?", authID).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil // account without a staff record, nothing to do
		}
		return err
	}
	if err := s.db.WithContext(ctx).Model(&staff).
		Update("status", constants.AccountStatusActive).Error; err != nil {
		return &ServiceError{
			Code:    ErrCodeStaffUpdateFailed,
			Message: fmt.Sprintf("failed to activate staff %d", staff.ID),
			Err:     err,
		}
	}
	s.invalidateCache(ctx, staff.HotelID)
	return nil
}

// UpdatePin sets a new kiosk PIN. An empty pin regenerates a random one.
// The new PIN is returned, PinUpdatedAt marks the rotation.
func (s *StaffService) UpdatePin(ctx context.Context, hotelID, staffID uint, pin string) (string, error) {
	if pin == "" {
		var err error
		pin, err = GeneratePin()
		if err != nil {
			return "", &ServiceError{Code: ErrCodeStaffUpdateFailed, Message: "failed to generate PIN", Err: err}
		}
	} else if err := ValidatePin(pin); err != nil {
		return "", err
	}

	result := s.db.WithContext(ctx).Model(&models.Staff{}).
		Where("id = ? AND hotel_id = ?", staffID, hotelID).
		Updates(map[string]interface{}{
			"pin":            pin,
			"pin_updated_at": time.Now(),
		})
	if result.Error != nil {
		return "", &ServiceError{
			Code:    ErrCodeStaffUpdateFailed,
			Message: fmt.Sprintf("failed to update PIN of staff %d", staffID),
			Err:     result.Error,
		}
	}
	if result.RowsAffected == 0 {
		return "", &ServiceError{
			Code:    ErrCodeTransitionStaffNotFound,
			Message: fmt.Sprintf("staff %d not found in hotel %d", staffID, hotelID),
		}
	}

	s.invalidateCache(ctx, hotelID)
	return pin, nil
}

// PinLogin authenticates a staff member at the room-side kiosk by exact
// PIN match within the hotel. First match by ascending id wins when PINs
// collide.
func (s *StaffService) PinLogin(ctx context.Context, hotelID uint, pin string) (*models.Staff, error) {
	if err := ValidatePin(pin); err != nil {
		return nil, err
	}

	var staff models.Staff
	err := s.db.WithContext(ctx).
		Where("hotel_id = ? AND pin = ?", hotelID, pin).
		Order("id").
		First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeStaffInvalidPin,
				Message: "invalid PIN",
			}
		}
		return nil, err
	}

	return &staff, nil
}

// UpdateStaffInput carries a partial staff edit; empty fields are left
// untouched.
type UpdateStaffInput struct {
	Name          string
	Phone         string
	Role          string
	Shift         string
	AssignedAreas []string
}

// UpdateStaff applies a partial edit to a staff member and drops the
// cached roster. Role edits go through the same whitelist as CreateStaff.
func (s *StaffService) UpdateStaff(ctx context.Context, hotelID, staffID uint, input UpdateStaffInput) (*models.Staff, error) {
	if input.Role != "" && !constants.IsValidStaffRole(input.Role) {
		return nil, &ServiceError{
			Code:    ErrCodeStaffInvalidRole,
			Message: fmt.Sprintf("unknown staff role %q", input.Role),
		}
	}

	var staff models.Staff
	if err := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID).First(&staff, staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeTransitionStaffNotFound,
				Message: fmt.Sprintf("staff %d not found in hotel %d", staffID, hotelID),
			}
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.Role != "" {
		updates["role"] = input.Role
	}
	if input.Shift != "" {
		updates["shift"] = input.Shift
	}
	if input.AssignedAreas != nil {
		updates["assigned_areas"] = pq.StringArray(input.AssignedAreas)
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&staff).Updates(updates).Error; err != nil {
			return nil, &ServiceError{
				Code:    ErrCodeStaffUpdateFailed,
				Message: fmt.Sprintf("failed to update staff %d", staffID),
				Err:     err,
			}
		}
		s.invalidateCache(ctx, hotelID)
	}

	return &staff, nil
}

// DeleteStaff removes a staff member and drops the cached roster.
func (s *StaffService) DeleteStaff(ctx context.Context, hotelID, staffID uint) error {
	result := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Delete(&models.Staff{}, staffID)
	if result.Error != nil {
		return &ServiceError{
			Code:    ErrCodeStaffUpdateFailed,
			Message: fmt.Sprintf("failed to delete staff %d", staffID),
			Err:     result.Error,
		}
	}
	if result.RowsAffected == 0 {
		return &ServiceError{
			Code:    ErrCodeTransitionStaffNotFound,
			Message: fmt.Sprintf("staff %d not found in hotel %d", staffID, hotelID),
		}
	}
	s.invalidateCache(ctx, hotelID)
	return nil
}

// StaffFilter narrows the staff listing.
type StaffFilter struct {
	Role   string
	Status string
	Search string
}

// ListStaff returns a hotel's staff, cached per hotel when unfiltered.
func (s *StaffService) ListStaff(ctx context.Context, hotelID uint, filter StaffFilter) ([]models.Staff, error) {
	unfiltered := filter == StaffFilter{}

	if unfiltered && s.redis != nil {
		var cached []models.Staff
		if found, err := GetFromRedis(ctx, s.redis, StaffCacheKey(hotelID), &cached); err == nil && found {
			return cached, nil
		}
	}

	query := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID)
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var staff []models.Staff
	if err := query.Order("name").Find(&staff).Error; err != nil {
		return nil, err
	}

	if unfiltered && s.redis != nil {
		if err := SetToRedis(ctx, s.redis, StaffCacheKey(hotelID), staff, staffCacheTTL); err != nil {
			s.logger.Error("Failed to cache staff list for hotel %d: %v", hotelID, err)
		}
	}

	return staff, nil
}

func (s *StaffService) invalidateCache(ctx context.Context, hotelID uint) {
	if s.redis == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.redis, StaffCacheKey(hotelID)); err != nil {
		s.logger.Error("Failed to invalidate staff cache for hotel %d: %v", hotelID, err)
	}
}
