package dto

import "time"

// OnboardRequest is the hotel signup form.
type OnboardRequest struct {
	HotelName string `json:"hotelName" binding:"required"`
	OwnerName string `json:"ownerName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Password  string `json:"password" binding:"required"`
	Timezone  string `json:"timezone"`
}

type HotelSettingsRequest struct {
	HotelName    string `json:"hotelName"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	CheckInTime  string `json:"checkInTime"`
	CheckOutTime string `json:"checkOutTime"`
	Timezone     string `json:"timezone"`
}

type HotelResponse struct {
	ID           uint      `json:"id"`
	HotelName    string    `json:"hotelName"`
	OwnerName    string    `json:"ownerName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Status       string    `json:"status"`
	TrialEndsAt  time.Time `json:"trialEndsAt"`
	CheckInTime  string    `json:"checkInTime"`
	CheckOutTime string    `json:"checkOutTime"`
	Timezone     string    `json:"timezone"`
}
