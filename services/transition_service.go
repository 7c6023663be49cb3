package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelflow/constants"
	"hotelflow/models"
	"hotelflow/services/logger"
	"hotelflow/services/notification"
	"hotelflow/types"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	ErrCodeTransitionInvalidStatus = "INVALID_STATUS"
	ErrCodeTransitionForbidden     = "FORBIDDEN_STATUS"
	ErrCodeTransitionRoomNotFound  = "ROOM_NOT_FOUND"
	ErrCodeTransitionStaffNotFound = "STAFF_NOT_FOUND"
	ErrCodeTransitionFailed        = "TRANSITION_FAILED"
)

// ServiceError mirrors the application error shape inside services.
type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// TransitionService applies validated status changes and records each one
// in the room's audit ledger. The status update and the history append run
// in a single transaction so neither can land without the other.
type TransitionService struct {
	db       *gorm.DB
	logger   logger.Logger
	notifier notification.Service
	redis    *redis.Client
}

type TransitionServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Notifier notification.Service
	Redis    *redis.Client
}

func NewTransitionService(opts TransitionServiceOptions) *TransitionService {
	return &TransitionService{
		db:       opts.DB,
		logger:   opts.Logger,
		notifier: opts.Notifier,
		redis:    opts.Redis,
	}
}

// ValidateRoomTransition checks the requested status against the canonical
// enum and, for guest actors, against the guest-allowed subset.
func ValidateRoomTransition(newStatus string, actor types.Actor) error {
	if !constants.IsValidRoomStatus(newStatus) {
		return &ServiceError{
			Code:    ErrCodeTransitionInvalidStatus,
			Message: fmt.Sprintf("unknown room status %q", newStatus),
		}
	}
	if actor.Source == constants.SourceGuest && !constants.IsGuestRoomStatus(newStatus) {
		return &ServiceError{
			Code:    ErrCodeTransitionForbidden,
			Message: fmt.Sprintf("status %q is staff-only", newStatus),
		}
	}
	return nil
}

// RoomUpdatesFor builds the column updates for a transition, including the
// per-status side effects. The timestamp is shared with the history row.
func RoomUpdatesFor(newStatus string, ts time.Time) map[string]interface{} {
	updates := map[string]interface{}{
		"status":             newStatus,
		"last_status_change": ts,
	}
	switch newStatus {
	case constants.RoomStatusCleaning:
		updates["last_cleaning"] = ts
	case constants.RoomStatusMaintenance:
		updates["last_maintenance"] = ts
	case constants.RoomStatusCheckOut:
		updates["guest_name"] = ""
		updates["guest_check_in"] = nil
		updates["guest_check_out"] = nil
	}
	return updates
}

// ApplyRoomTransition moves a room to newStatus and appends the matching
// history record. On any failure nothing is applied.
func (s *TransitionService) ApplyRoomTransition(ctx context.Context, hotelID, roomID uint, newStatus string, actor types.Actor, notes string) (*models.Room, error) {
	if err := ValidateRoomTransition(newStatus, actor); err != nil {
		return nil, err
	}

	var room models.Room
	ts := time.Now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("hotel_id = ?", hotelID).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &ServiceError{
					Code:    ErrCodeTransitionRoomNotFound,
					Message: fmt.Sprintf("room %d not found in hotel %d", roomID, hotelID),
					Err:     err,
				}
			}
			return &ServiceError{
				Code:    ErrCodeTransitionFailed,
				Message: "failed to load room",
				Err:     err,
			}
		}

		previous := room.Status
		updates := RoomUpdatesFor(newStatus, ts)
		if err := tx.Model(&room).Updates(updates).Error; err != nil {
			return &ServiceError{
				Code:    ErrCodeTransitionFailed,
				Message: fmt.Sprintf("failed to update status of room %d", roomID),
				Err:     err,
			}
		}

		history := models.RoomHistory{
			HotelID:        hotelID,
			RoomID:         roomID,
			PreviousStatus: previous,
			NewStatus:      newStatus,
			Timestamp:      ts,
			Source:         actor.Source,
			ActorID:        actor.ID,
			ActorName:      actor.Name,
			ActorRole:      actor.Role,
			Notes:          notes,
		}
		if err := tx.Create(&history).Error; err != nil {
			return &ServiceError{
				Code:    ErrCodeTransitionFailed,
				Message: fmt.Sprintf("failed to append history for room %d", roomID),
				Err:     err,
			}
		}

		room.Status = newStatus
		room.LastStatusChange = &ts
		return nil
	})
	if err != nil {
		s.logger.Error("Room transition failed for room %d (hotel %d): %v", roomID, hotelID, err)
		return nil, err
	}

	s.afterRoomTransition(ctx, hotelID, roomID, actor, &room, ts)
	return &room, nil
}

func (s *TransitionService) afterRoomTransition(ctx context.Context, hotelID, roomID uint, actor types.Actor, room *models.Room, ts time.Time) {
	if s.redis != nil {
		if err := DeleteFromRedis(ctx, s.redis, BoardCacheKey(hotelID)); err != nil {
			s.logger.Error("Failed to invalidate board cache for hotel %d: %v", hotelID, err)
		}
	}

	if s.notifier == nil {
		return
	}
	event := notification.RoomEvent{
		HotelID:   hotelID,
		RoomID:    roomID,
		Entity:    "room",
		NewStatus: room.Status,
		Source:    actor.Source,
		Timestamp: ts,
	}
	if err := s.notifier.SendRoomEvent(event); err != nil {
		s.logger.Error("Failed to broadcast room event for room %d: %v", roomID, err)
	}
}

// ApplyStaffStatus moves a staff record between account statuses.
func (s *TransitionService) ApplyStaffStatus(ctx context.Context, hotelID, staffID uint, newStatus string) (*models.Staff, error) {
	switch newStatus {
	case constants.AccountStatusActive, constants.AccountStatusInactive, constants.AccountStatusPending:
	default:
		return nil, &ServiceError{
			Code:    ErrCodeTransitionInvalidStatus,
			Message: fmt.Sprintf("unknown staff status %q", newStatus),
		}
	}

	var staff models.Staff
	if err := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID).First(&staff, staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{
				Code:    ErrCodeTransitionStaffNotFound,
				Message: fmt.Sprintf("staff %d not found in hotel %d", staffID, hotelID),
				Err:     err,
			}
		}
		return nil, &ServiceError{
			Code:    ErrCodeTransitionFailed,
			Message: "failed to load staff member",
			Err:     err,
		}
	}

	if err := s.db.WithContext(ctx).Model(&staff).
		Updates(map[string]interface{}{"status": newStatus, "updated_at": time.Now()}).Error; err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeTransitionFailed,
			Message: fmt.Sprintf("failed to update status of staff %d", staffID),
			Err:     err,
		}
	}

	if s.redis != nil {
		if err := DeleteFromRedis(ctx, s.redis, StaffCacheKey(hotelID)); err != nil {
			s.logger.Error("Failed to invalidate staff cache for hotel %d: %v", hotelID, err)
		}
	}

	staff.Status = newStatus
	return &staff, nil
}
