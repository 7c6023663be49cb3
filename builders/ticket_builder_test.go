package builders

import (
	"testing"
	"time"

	"hotelflow/constants"
)

func TestTicketBuilderDefaults(t *testing.T) {
	ticket := NewTicketBuilder().
		WithHotel(7).
		WithRoom(12).
		WithDescription("AC not cooling").
		Build()

	if ticket.HotelID != 7 || ticket.RoomID != 12 {
		t.Errorf("hotel/room = %d/%d, want 7/12", ticket.HotelID, ticket.RoomID)
	}
	if ticket.Status != constants.MaintenanceStatusPending {
		t.Errorf("status = %s, want %s", ticket.Status, constants.MaintenanceStatusPending)
	}
	if ticket.Type != constants.MaintenanceTypeCorrective {
		t.Errorf("type = %s, want %s", ticket.Type, constants.MaintenanceTypeCorrective)
	}
	if ticket.Priority != constants.MaintenancePriorityMedium {
		t.Errorf("priority = %s, want %s", ticket.Priority, constants.MaintenancePriorityMedium)
	}
	if ticket.AssignedTo != nil {
		t.Errorf("expected unassigned ticket, got assignee %d", *ticket.AssignedTo)
	}
}

func TestTicketBuilderEmptyValuesKeepDefaults(t *testing.T) {
	ticket := NewTicketBuilder().
		WithType("").
		WithPriority("").
		Build()

	if ticket.Type != constants.MaintenanceTypeCorrective {
		t.Errorf("type = %s, want default kept", ticket.Type)
	}
	if ticket.Priority != constants.MaintenancePriorityMedium {
		t.Errorf("priority = %s, want default kept", ticket.Priority)
	}
}

func TestTicketBuilderFullChain(t *testing.T) {
	scheduled := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	ticket := NewTicketBuilder().
		WithHotel(1).
		WithLocation("pool pump room").
		WithType(constants.MaintenanceTypePreventive).
		WithDescription("quarterly pump inspection").
		WithPriority(constants.MaintenancePriorityHigh).
		WithSchedule(scheduled).
		Build()

	if ticket.Location != "pool pump room" {
		t.Errorf("location = %q", ticket.Location)
	}
	if ticket.Type != constants.MaintenanceTypePreventive {
		t.Errorf("type = %s, want preventive", ticket.Type)
	}
	if ticket.Priority != constants.MaintenancePriorityHigh {
		t.Errorf("priority = %s, want high", ticket.Priority)
	}
	if !ticket.ScheduledFor.Equal(scheduled) {
		t.Errorf("scheduledFor = %v, want %v", ticket.ScheduledFor, scheduled)
	}
}

func TestTicketBuilderAssigneeStartsInProgress(t *testing.T) {
	ticket := NewTicketBuilder().
		WithAssignee(42).
		Build()

	if ticket.AssignedTo == nil || *ticket.AssignedTo != 42 {
		t.Fatalf("assignedTo = %v, want 42", ticket.AssignedTo)
	}
	if ticket.Status != constants.MaintenanceStatusInProgress {
		t.Errorf("status = %s, want %s", ticket.Status, constants.MaintenanceStatusInProgress)
	}
}
