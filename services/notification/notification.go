package notification

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/olahol/melody"
)

// RoomEvent is pushed to websocket subscribers whenever a room (or ticket)
// changes status. Sessions subscribed to a different hotel never see it.
type RoomEvent struct {
	HotelID        uint      `json:"hotelId"`
	RoomID         uint      `json:"roomId,omitempty"`
	Entity         string    `json:"entity"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	NewStatus      string    `json:"newStatus"`
	Source         string    `json:"source,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Service delivers events to live subscribers.
type Service interface {
	SendRoomEvent(event RoomEvent) error
	SendMessage(hotelID uint, message string) error
}

// MelodyService broadcasts over the shared websocket hub, filtered by the
// hotelId key each session was opened with.
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendRoomEvent(event RoomEvent) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.broadcastToHotel(event.HotelID, payload)
}

func (s *MelodyService) SendMessage(hotelID uint, message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.broadcastToHotel(hotelID, []byte(message))
}

func (s *MelodyService) broadcastToHotel(hotelID uint, payload []byte) error {
	want := strconv.FormatUint(uint64(hotelID), 10)
	return s.m.BroadcastFilter(payload, func(sess *melody.Session) bool {
		got, ok := sess.Get("hotelId")
		if !ok {
			return false
		}
		id, _ := got.(string)
		return id == want
	})
}
