package services

import (
	"context"
	"errors"
	"fmt"

	"hotelflow/commands"
	"hotelflow/constants"
	"hotelflow/models"
	"hotelflow/services/logger"
	"hotelflow/services/notification"

	"gorm.io/gorm"
)

const (
	ErrCodeRequestNotFound    = "REQUEST_NOT_FOUND"
	ErrCodeRequestWriteFailed = "REQUEST_WRITE_FAILED"
)

// RequestService is the staff-facing triage side of guest requests.
type RequestService struct {
	db       *gorm.DB
	notifier notification.Service
	logger   logger.Logger
}

type RequestServiceOptions struct {
	DB       *gorm.DB
	Notifier notification.Service
	Logger   logger.Logger
}

func NewRequestService(opts RequestServiceOptions) *RequestService {
	return &RequestService{
		db:       opts.DB,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
}

// RequestFilter narrows the triage listing.
type RequestFilter struct {
	Status string
	RoomID uint
}

// ListRequests returns a hotel's requests, newest first.
func (s *RequestService) ListRequests(ctx context.Context, hotelID uint, filter RequestFilter) ([]models.Request, error) {
	query := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID)
	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.RoomID != 0 {
		query = query.Where("room_id = ?", filter.RoomID)
	}

	var requests []models.Request
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// CountPending returns how many requests await triage, for the nav badge.
func (s *RequestService) CountPending(ctx context.Context, hotelID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Request{}).
		Where("hotel_id = ? AND status = ?", hotelID, constants.RequestStatusPending).
		Count(&count).Error
	return count, err
}

// CreateRequest opens a staff-entered request, e.g. one phoned in at the
// front desk.
func (s *RequestService) CreateRequest(ctx context.Context, request *models.Request) error {
	if request.Status == "" {
		request.Status = constants.RequestStatusPending
	}
	cmd := commands.NewCreateRequestCommand(request, s.db.WithContext(ctx))
	if err := cmd.Execute(); err != nil {
		return &ServiceError{
			Code:    ErrCodeRequestWriteFailed,
			Message: "failed to create request",
			Err:     err,
		}
	}
	s.notifyRequest(request.HotelID, fmt.Sprintf("request:new:%d", request.ID))
	return nil
}

// ResolveRequest marks a pending request resolved. Resolving an already
// resolved or missing request returns not found.
func (s *RequestService) ResolveRequest(ctx context.Context, hotelID, requestID, resolvedBy uint) error {
	var request models.Request
	if err := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID).First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{
				Code:    ErrCodeRequestNotFound,
				Message: fmt.Sprintf("request %d not found in hotel %d", requestID, hotelID),
				Err:     err,
			}
		}
		return err
	}

	cmd := commands.NewResolveRequestCommand(requestID, resolvedBy, s.db.WithContext(ctx))
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{
				Code:    ErrCodeRequestNotFound,
				Message: fmt.Sprintf("request %d is not pending", requestID),
				Err:     err,
			}
		}
		return &ServiceError{
			Code:    ErrCodeRequestWriteFailed,
			Message: fmt.Sprintf("failed to resolve request %d", requestID),
			Err:     err,
		}
	}

	s.notifyRequest(hotelID, fmt.Sprintf("request:resolved:%d", requestID))
	return nil
}

// DeleteRequest removes a request outright.
func (s *RequestService) DeleteRequest(ctx context.Context, hotelID, requestID uint) error {
	var request models.Request
	if err := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID).First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{
				Code:    ErrCodeRequestNotFound,
				Message: fmt.Sprintf("request %d not found in hotel %d", requestID, hotelID),
				Err:     err,
			}
		}
		return err
	}

	cmd := commands.NewDeleteRequestCommand(requestID, s.db.WithContext(ctx))
	if err := cmd.Execute(); err != nil {
		return &ServiceError{
			Code:    ErrCodeRequestWriteFailed,
			Message: fmt.Sprintf("failed to delete request %d", requestID),
			Err:     err,
		}
	}
	return nil
}

func (s *RequestService) notifyRequest(hotelID uint, msg string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendMessage(hotelID, msg); err != nil {
		s.logger.Error("Failed to broadcast request update for hotel %d: %v", hotelID, err)
	}
}
