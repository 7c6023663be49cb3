package models

import "time"

// RoomHistory is the append-only audit ledger of a room. Rows are written
// in the same transaction as the status change they record and are never
// updated or deleted.
type RoomHistory struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	HotelID        uint      `gorm:"index" json:"hotelId"`
	RoomID         uint      `gorm:"index" json:"roomId"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	Timestamp      time.Time `gorm:"index" json:"timestamp"`
	Source         string    `json:"source"`
	ActorID        uint      `json:"actorId,omitempty"`
	ActorName      string    `json:"actorName,omitempty"`
	ActorRole      string    `json:"actorRole,omitempty"`
	Notes          string    `json:"notes,omitempty"`
}
