package builders

import (
	"time"

	"hotelflow/constants"
	"hotelflow/models"
)

// TicketBuilder assembles a maintenance ticket step by step.
type TicketBuilder struct {
	ticket *models.Maintenance
}

func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		ticket: &models.Maintenance{
			Status:   constants.MaintenanceStatusPending,
			Type:     constants.MaintenanceTypeCorrective,
			Priority: constants.MaintenancePriorityMedium,
		},
	}
}

// WithHotel sets the owning hotel.
func (b *TicketBuilder) WithHotel(hotelID uint) *TicketBuilder {
	b.ticket.HotelID = hotelID
	return b
}

// WithRoom sets the affected room.
func (b *TicketBuilder) WithRoom(roomID uint) *TicketBuilder {
	b.ticket.RoomID = roomID
	return b
}

// WithLocation sets the free-text location shown on the board.
func (b *TicketBuilder) WithLocation(location string) *TicketBuilder {
	b.ticket.Location = location
	return b
}

// WithType sets preventive or corrective.
func (b *TicketBuilder) WithType(ticketType string) *TicketBuilder {
	if ticketType != "" {
		b.ticket.Type = ticketType
	}
	return b
}

// WithDescription sets the problem description.
func (b *TicketBuilder) WithDescription(description string) *TicketBuilder {
	b.ticket.Description = description
	return b
}

// WithPriority sets low, medium or high.
func (b *TicketBuilder) WithPriority(priority string) *TicketBuilder {
	if priority != "" {
		b.ticket.Priority = priority
	}
	return b
}

// WithSchedule sets when the work should happen.
func (b *TicketBuilder) WithSchedule(scheduledFor time.Time) *TicketBuilder {
	b.ticket.ScheduledFor = scheduledFor
	return b
}

// WithAssignee pre-assigns a staff member; the ticket starts in progress.
func (b *TicketBuilder) WithAssignee(staffID uint) *TicketBuilder {
	b.ticket.AssignedTo = &staffID
	b.ticket.Status = constants.MaintenanceStatusInProgress
	return b
}

// Build returns the assembled ticket.
func (b *TicketBuilder) Build() *models.Maintenance {
	return b.ticket
}
