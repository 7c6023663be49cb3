package models

import (
	"encoding/json"
	"time"
)

// Evidence is one completion attachment persisted on a ticket.
type Evidence struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

type Maintenance struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	HotelID      uint            `gorm:"index" json:"hotelId"`
	RoomID       uint            `gorm:"index" json:"roomId"`
	Location     string          `json:"location"`
	Type         string          `gorm:"default:'corrective'" json:"type"`
	Description  string          `json:"description"`
	Status       string          `gorm:"default:'pending'" json:"status"`
	Priority     string          `gorm:"default:'medium'" json:"priority"`
	AssignedTo   *uint           `gorm:"index" json:"assignedTo,omitempty"`
	ScheduledFor time.Time       `json:"scheduledFor"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
	CompletedBy  uint            `json:"completedBy,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	Evidence     json.RawMessage `gorm:"type:json" json:"evidence,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Assignee     *Staff          `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
}

// EvidenceList decodes the persisted evidence column.
func (m *Maintenance) EvidenceList() ([]Evidence, error) {
	if len(m.Evidence) == 0 {
		return nil, nil
	}
	var list []Evidence
	if err := json.Unmarshal(m.Evidence, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// IsOverdue reports whether an open ticket ran past its scheduled time.
func (m *Maintenance) IsOverdue(now time.Time) bool {
	if m.Status == "completed" || m.ScheduledFor.IsZero() {
		return false
	}
	return m.ScheduledFor.Before(now)
}
