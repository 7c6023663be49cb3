package models

import (
	"time"

	"hotelflow/constants"

	"github.com/lib/pq"
)

type Room struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	HotelID          uint           `gorm:"index;uniqueIndex:idx_hotel_room_number" json:"hotelId"`
	Number           string         `gorm:"uniqueIndex:idx_hotel_room_number" json:"number"`
	Type             string         `gorm:"default:'single'" json:"type"`
	Floor            int            `json:"floor"`
	Status           string         `gorm:"default:'available'" json:"status"`
	Features         pq.StringArray `gorm:"type:text[]" json:"features"`
	LastCleaning     *time.Time     `json:"lastCleaning,omitempty"`
	LastMaintenance  *time.Time     `json:"lastMaintenance,omitempty"`
	LastStatusChange *time.Time     `json:"lastStatusChange,omitempty"`
	GuestName        string         `json:"guestName,omitempty"`
	GuestCheckIn     *time.Time     `json:"guestCheckIn,omitempty"`
	GuestCheckOut    *time.Time     `json:"guestCheckOut,omitempty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel            Hotel          `gorm:"foreignKey:HotelID" json:"-"`
	History          []RoomHistory  `gorm:"foreignKey:RoomID" json:"-"`
}

func (r *Room) ValidateStatus() error {
	return constants.ValidateRoomStatus(r.Status)
}
