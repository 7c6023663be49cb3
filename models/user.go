package models

import "time"

// User is a staff/admin account in the authentication layer. Staff records
// link to it through Staff.AuthID.
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Email         string     `gorm:"unique;not null" json:"email"`
	Password      string     `json:"-"`
	Name          string     `gorm:"default:'New User'" json:"name"`
	Role          string     `gorm:"default:'staff'" json:"role"`
	HotelID       *uint      `gorm:"index" json:"hotelId,omitempty"`
	Status        string     `gorm:"default:'pending'" json:"status"`
	IsVerified    bool       `gorm:"default:false" json:"isVerified"`
	Code          string     `json:"-"`
	CodeCreatedAt time.Time  `json:"-"`
	LastLogin     *time.Time `json:"lastLogin,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
