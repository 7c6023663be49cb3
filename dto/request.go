package dto

import "time"

// CreateRequestRequest opens a staff-entered request, e.g. one phoned in
// at the front desk.
type CreateRequestRequest struct {
	RoomID  uint   `json:"roomId" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Message string `json:"message"`
}

type RequestResponse struct {
	ID         uint       `json:"id"`
	RoomID     uint       `json:"roomId"`
	RoomNumber string     `json:"roomNumber"`
	Type       string     `json:"type"`
	Message    string     `json:"message,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy uint       `json:"resolvedBy,omitempty"`
}
