package dto

import (
	"time"
)

type CreateRoomRequest struct {
	Number   string   `json:"number" binding:"required"`
	Type     string   `json:"type"`
	Floor    int      `json:"floor"`
	Features []string `json:"features"`
}

type UpdateRoomRequest struct {
	Type     string   `json:"type"`
	Floor    *int     `json:"floor"`
	Features []string `json:"features"`
}

// RoomStatusRequest changes a room's status from the dashboard.
type RoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

type CheckInRequest struct {
	GuestName     string     `json:"guestName" binding:"required"`
	GuestCheckOut *time.Time `json:"guestCheckOut"`
}

type RoomResponse struct {
	ID               uint       `json:"id"`
	Number           string     `json:"number"`
	Type             string     `json:"type"`
	Floor            int        `json:"floor"`
	Status           string     `json:"status"`
	Features         []string   `json:"features"`
	LastCleaning     *time.Time `json:"lastCleaning,omitempty"`
	LastMaintenance  *time.Time `json:"lastMaintenance,omitempty"`
	LastStatusChange *time.Time `json:"lastStatusChange,omitempty"`
	GuestName        string     `json:"guestName,omitempty"`
	GuestCheckIn     *time.Time `json:"guestCheckIn,omitempty"`
	GuestCheckOut    *time.Time `json:"guestCheckOut,omitempty"`
}

// BoardResponse is the dashboard payload: the filtered room list plus
// unfiltered per-status counts and the floor selector values.
type BoardResponse struct {
	Rooms  []RoomResponse `json:"rooms"`
	Counts map[string]int `json:"counts"`
	Floors []int          `json:"floors"`
}

type RoomHistoryResponse struct {
	ID             uint      `json:"id"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	Timestamp      time.Time `json:"timestamp"`
	Source         string    `json:"source"`
	ActorName      string    `json:"actorName,omitempty"`
	Notes          string    `json:"notes,omitempty"`
}
