package dto

import "time"

type CreateTicketRequest struct {
	RoomID       uint      `json:"roomId"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Description  string    `json:"description" binding:"required"`
	Priority     string    `json:"priority"`
	ScheduledFor time.Time `json:"scheduledFor"`
}

type AssignTicketRequest struct {
	StaffID uint `json:"staffId" binding:"required"`
}

// CompleteTicketRequest accompanies the multipart evidence upload.
type CompleteTicketRequest struct {
	Notes string `form:"notes"`
}

type EvidenceResponse struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type TicketResponse struct {
	ID           uint               `json:"id"`
	RoomID       uint               `json:"roomId,omitempty"`
	Location     string             `json:"location,omitempty"`
	Type         string             `json:"type"`
	Description  string             `json:"description"`
	Status       string             `json:"status"`
	Priority     string             `json:"priority"`
	AssignedTo   *uint              `json:"assignedTo,omitempty"`
	AssigneeName string             `json:"assigneeName,omitempty"`
	ScheduledFor time.Time          `json:"scheduledFor"`
	CompletedAt  *time.Time         `json:"completedAt,omitempty"`
	CompletedBy  uint               `json:"completedBy,omitempty"`
	Notes        string             `json:"notes,omitempty"`
	Evidence     []EvidenceResponse `json:"evidence,omitempty"`
	Overdue      bool               `json:"overdue"`
	CreatedAt    time.Time          `json:"createdAt"`
}
