package dto

import "time"

type CreateStaffRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Phone         string   `json:"phone"`
	Role          string   `json:"role" binding:"required"`
	Shift         string   `json:"shift"`
	AssignedAreas []string `json:"assignedAreas"`
}

type UpdateStaffRequest struct {
	Name          string   `json:"name"`
	Phone         string   `json:"phone"`
	Role          string   `json:"role"`
	Shift         string   `json:"shift"`
	AssignedAreas []string `json:"assignedAreas"`
}

type StaffStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdatePinRequest sets a new kiosk PIN; an empty pin regenerates one.
type UpdatePinRequest struct {
	Pin string `json:"pin"`
}

type StaffResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	Shift         string    `json:"shift"`
	AssignedAreas []string  `json:"assignedAreas"`
	PinUpdatedAt  time.Time `json:"pinUpdatedAt"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateStaffResponse additionally carries the generated PIN, shown to
// the admin exactly once.
type CreateStaffResponse struct {
	Staff StaffResponse `json:"staff"`
	Pin   string        `json:"pin"`
}

// PinLoginRequest is the kiosk login form.
type PinLoginRequest struct {
	Pin string `json:"pin" binding:"required"`
}

type PinLoginResponse struct {
	StaffID uint   `json:"staffId"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Token   string `json:"token"`
}
