package models

import (
	"time"

	"github.com/lib/pq"
)

// Staff is a hotel employee. The PIN is a low-security credential for the
// room-side kiosk only, mutable independently of the linked user account.
type Staff struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	HotelID       uint           `gorm:"index" json:"hotelId"`
	Name          string         `gorm:"not null" json:"name"`
	Email         string         `gorm:"index" json:"email"`
	Phone         string         `json:"phone"`
	Role          string         `json:"role"`
	Status        string         `gorm:"default:'pending'" json:"status"`
	Shift         string         `gorm:"default:'morning'" json:"shift"`
	AssignedAreas pq.StringArray `gorm:"type:text[]" json:"assignedAreas"`
	PIN           string         `gorm:"column:pin;type:varchar(4)" json:"-"`
	PinUpdatedAt  time.Time      `json:"pinUpdatedAt"`
	AuthID        uint           `gorm:"index" json:"authId"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
