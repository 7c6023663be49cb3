package models

import (
	"time"

	"hotelflow/constants"
)

type Hotel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	HotelName    string    `gorm:"not null" json:"hotelName"`
	OwnerName    string    `json:"ownerName"`
	Email        string    `gorm:"unique" json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Status       string    `gorm:"default:'trial'" json:"status"`
	TrialEndsAt  time.Time `json:"trialEndsAt"`
	CheckInTime  string    `gorm:"default:'15:00'" json:"checkInTime"`
	CheckOutTime string    `gorm:"default:'12:00'" json:"checkOutTime"`
	Timezone     string    `gorm:"default:'UTC'" json:"timezone"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms        []Room    `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
	Staff        []Staff   `gorm:"foreignKey:HotelID" json:"staff,omitempty"`
}

// TrialExpired reports whether a trial hotel has run past its trial window.
func (h *Hotel) TrialExpired(now time.Time) bool {
	return h.Status == constants.HotelStatusTrial && now.After(h.TrialEndsAt)
}
