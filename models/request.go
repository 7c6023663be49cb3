package models

import "time"

// Request is a guest- or staff-originated service request tied to a room.
type Request struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	HotelID    uint       `gorm:"index" json:"hotelId"`
	RoomID     uint       `gorm:"index" json:"roomId"`
	RoomNumber string     `json:"roomNumber"`
	Type       string     `json:"type"`
	Message    string     `json:"message,omitempty"`
	Status     string     `gorm:"default:'pending'" json:"status"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy uint       `json:"resolvedBy,omitempty"`
}
