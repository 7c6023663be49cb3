package services

import (
	"context"
	"errors"
	"fmt"

	"hotelflow/constants"
	"hotelflow/models"
	"hotelflow/services/logger"
	"hotelflow/types"

	"gorm.io/gorm"
)

const (
	ErrCodeGuestUnknownAction = "UNKNOWN_ACTION"
	ErrCodeGuestHotelNotFound = "HOTEL_NOT_FOUND"
	ErrCodeGuestRoomNotFound  = "ROOM_NOT_FOUND"
	ErrCodeGuestIntakeFailed  = "INTAKE_FAILED"
)

// Guest actions accepted by the public room endpoints.
const (
	GuestActionDoNotDisturb = "do_not_disturb"
	GuestActionNeedCleaning = "need_cleaning"
	GuestActionNeedTowels   = "need_towels"
	GuestActionFreeMessage  = "free_message"
)

// GuestActionStatus maps an action to the room status it requests. The
// second result is false for actions that change no room state.
func GuestActionStatus(action string) (string, bool) {
	switch action {
	case GuestActionDoNotDisturb:
		return constants.RoomStatusDoNotDisturb, true
	case GuestActionNeedCleaning:
		return constants.RoomStatusCleaning, true
	default:
		return "", false
	}
}

// GuestActionRequestType maps an action to the Request record type created
// for staff triage.
func GuestActionRequestType(action string) (string, error) {
	switch action {
	case GuestActionDoNotDisturb:
		return constants.RequestTypeDoNotDisturb, nil
	case GuestActionNeedCleaning:
		return constants.RequestTypeNeedCleaning, nil
	case GuestActionNeedTowels:
		return constants.RequestTypeNeedTowels, nil
	case GuestActionFreeMessage:
		return constants.RequestTypeGuestMessage, nil
	default:
		return "", &ServiceError{
			Code:    ErrCodeGuestUnknownAction,
			Message: fmt.Sprintf("unknown guest action %q", action),
		}
	}
}

// GuestService lets an unauthenticated room occupant request a constrained
// set of status changes or leave a message. Every action also creates a
// pending Request record for staff triage, separate from the room mutation.
type GuestService struct {
	db          *gorm.DB
	transitions *TransitionService
	logger      logger.Logger
}

type GuestServiceOptions struct {
	DB          *gorm.DB
	Transitions *TransitionService
	Logger      logger.Logger
}

func NewGuestService(opts GuestServiceOptions) *GuestService {
	return &GuestService{
		db:          opts.DB,
		transitions: opts.Transitions,
		logger:      opts.Logger,
	}
}

// LookupRoom resolves the hotel/room pair embedded in a guest URL.
func (s *GuestService) LookupRoom(ctx context.Context, hotelID, roomID uint) (*models.Hotel, *models.Room, error) {
	var hotel models.Hotel
	if err := s.db.WithContext(ctx).First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &ServiceError{
				Code:    ErrCodeGuestHotelNotFound,
				Message: fmt.Sprintf("hotel %d not found", hotelID),
				Err:     err,
			}
		}
		return nil, nil, err
	}

	var room models.Room
	if err := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID).First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, &ServiceError{
				Code:    ErrCodeGuestRoomNotFound,
				Message: fmt.Sprintf("room %d not found in hotel %d", roomID, hotelID),
				Err:     err,
			}
		}
		return nil, nil, err
	}

	return &hotel, &room, nil
}

// SubmitAction applies a guest action: the allowed status subset goes
// through the transition applier with a guest actor, and one pending
// Request record is always created on top. Repeated submissions create
// duplicate requests.
func (s *GuestService) SubmitAction(ctx context.Context, hotelID, roomID uint, action, message string) (*models.Request, error) {
	requestType, err := GuestActionRequestType(action)
	if err != nil {
		return nil, err
	}

	_, room, err := s.LookupRoom(ctx, hotelID, roomID)
	if err != nil {
		return nil, err
	}

	if status, ok := GuestActionStatus(action); ok {
		note := fmt.Sprintf("Guest request: %s", action)
		if _, err := s.transitions.ApplyRoomTransition(ctx, hotelID, roomID, status, types.Guest(), note); err != nil {
			return nil, err
		}
	}

	request := models.Request{
		HotelID:    hotelID,
		RoomID:     roomID,
		RoomNumber: room.Number,
		Type:       requestType,
		Message:    message,
		Status:     constants.RequestStatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&request).Error; err != nil {
		// The room transition already committed; log the gap so it can be
		// reconciled manually.
		s.logger.Error("Request record not written after transition (hotel %d, room %d, action %s): %v",
			hotelID, roomID, action, err)
		return nil, &ServiceError{
			Code:    ErrCodeGuestIntakeFailed,
			Message: "failed to create service request",
			Err:     err,
		}
	}

	return &request, nil
}
