package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelflow/constants"
	"hotelflow/models"
	"hotelflow/services/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	ErrCodeHotelNotFound    = "HOTEL_NOT_FOUND"
	ErrCodeHotelEmailTaken  = "EMAIL_TAKEN"
	ErrCodeHotelWriteFailed = "HOTEL_WRITE_FAILED"
)

// TrialDays is the length of the onboarding trial window.
const TrialDays = 14

type HotelService struct {
	db     *gorm.DB
	logger logger.Logger
}

type HotelServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewHotelService(opts HotelServiceOptions) *HotelService {
	return &HotelService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// OnboardInput carries the signup form of a new hotel.
type OnboardInput struct {
	HotelName string
	OwnerName string
	Email     string
	Phone     string
	Address   string
	Password  string
	Timezone  string
}

// Onboard creates a trial hotel together with its admin account in one
// transaction and sends the verification email. The trial runs TrialDays
// from signup.
func (s *HotelService) Onboard(ctx context.Context, input OnboardInput) (*models.Hotel, *models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, &ServiceError{
			Code:    ErrCodeHotelEmailTaken,
			Message: fmt.Sprintf("email %s is already registered", email),
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, &ServiceError{
			Code:    ErrCodeHotelWriteFailed,
			Message: "failed to hash password",
			Err:     err,
		}
	}

	code, err := GenerateVerificationCode()
	if err != nil {
		return nil, nil, &ServiceError{
			Code:    ErrCodeHotelWriteFailed,
			Message: "failed to generate verification code",
			Err:     err,
		}
	}
	now := time.Now()
	timezone := input.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	hotel := models.Hotel{
		HotelName:   input.HotelName,
		OwnerName:   input.OwnerName,
		Email:       email,
		Phone:       input.Phone,
		Address:     input.Address,
		Status:      constants.HotelStatusTrial,
		TrialEndsAt: now.AddDate(0, 0, TrialDays),
		Timezone:    timezone,
	}
	admin := models.User{
		Name:          input.OwnerName,
		Email:         email,
		Password:      string(hashedPassword),
		Role:          constants.RoleHotelAdmin,
		Status:        constants.AccountStatusPending,
		Code:          code,
		CodeCreatedAt: now,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hotel).Error; err != nil {
			return err
		}
		admin.HotelID = &hotel.ID
		return tx.Create(&admin).Error
	})
	if err != nil {
		return nil, nil, &ServiceError{
			Code:    ErrCodeHotelWriteFailed,
			Message: "failed to create hotel",
			Err:     err,
		}
	}

	if err := SendVerificationEmail(email, code); err != nil {
		s.logger.Error("Failed to send verification email to %s: %v", email, err)
	}

	s.logger.Info("Onboarded hotel %d (%s), trial until %s", hotel.ID, hotel.HotelName, hotel.TrialEndsAt.Format(time.RFC3339))
	return &hotel, &admin, nil
}

// GetHotel loads one hotel by id.
func (s *HotelService) GetHotel(ctx context.Context, hotelID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.db.WithContext(ctx).First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeHotelNotFound,
				Message: fmt.Sprintf("hotel %d not found", hotelID),
				Err:     err,
			}
		}
		return nil, err
	}
	return &hotel, nil
}

// SettingsInput carries the editable hotel settings. Empty fields keep
// their current value.
type SettingsInput struct {
	HotelName    string
	Phone        string
	Address      string
	CheckInTime  string
	CheckOutTime string
	Timezone     string
}

// UpdateSettings applies the non-empty fields of input.
func (s *HotelService) UpdateSettings(ctx context.Context, hotelID uint, input SettingsInput) (*models.Hotel, error) {
	hotel, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.HotelName != "" {
		updates["hotel_name"] = input.HotelName
	}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.Address != "" {
		updates["address"] = input.Address
	}
	if input.CheckInTime != "" {
		updates["check_in_time"] = input.CheckInTime
	}
	if input.CheckOutTime != "" {
		updates["check_out_time"] = input.CheckOutTime
	}
	if input.Timezone != "" {
		updates["timezone"] = input.Timezone
	}
	if len(updates) == 0 {
		return hotel, nil
	}

	if err := s.db.WithContext(ctx).Model(hotel).Updates(updates).Error; err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeHotelWriteFailed,
			Message: fmt.Sprintf("failed to update hotel %d", hotelID),
			Err:     err,
		}
	}
	return hotel, nil
}

// ActivateHotel moves a hotel out of trial after payment.
func (s *HotelService) ActivateHotel(ctx context.Context, hotelID uint) error {
	result := s.db.WithContext(ctx).Model(&models.Hotel{}).
		Where("id = ?", hotelID).
		Update("status", constants.HotelStatusActive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &ServiceError{
			Code:    ErrCodeHotelNotFound,
			Message: fmt.Sprintf("hotel %d not found", hotelID),
		}
	}
	return nil
}

// ExpireTrials suspends every trial hotel whose window has passed.
// Returns the number of hotels suspended. Called from the cron sweep.
func (s *HotelService) ExpireTrials(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Model(&models.Hotel{}).
		Where("status = ? AND trial_ends_at < ?", constants.HotelStatusTrial, now).
		Update("status", constants.HotelStatusSuspended)
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		s.logger.Info("Suspended %d hotels with expired trials", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
