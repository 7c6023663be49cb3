package services

import (
	"context"
	"testing"

	"hotelflow/constants"
	"hotelflow/models"
)

func TestCreateTicketDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(MaintenanceServiceOptions{DB: db, Logger: testLogger()})
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, 1, CreateTicketInput{
		RoomID:      4,
		Location:    "Room 104 - bathroom",
		Description: "leaking faucet",
	})
	if err != nil {
		t.Fatal(err)
	}

	if ticket.Status != constants.MaintenanceStatusPending {
		t.Errorf("status = %q, want pending", ticket.Status)
	}
	if ticket.Type != constants.MaintenanceTypeCorrective {
		t.Errorf("type = %q, want corrective default", ticket.Type)
	}
	if ticket.Priority != constants.MaintenancePriorityMedium {
		t.Errorf("priority = %q, want medium default", ticket.Priority)
	}
	if ticket.AssignedTo != nil {
		t.Errorf("assignee = %v, want none on a fresh ticket", *ticket.AssignedTo)
	}

	var persisted models.Maintenance
	if err := db.First(&persisted, ticket.ID).Error; err != nil {
		t.Fatal(err)
	}
	if persisted.Status != constants.MaintenanceStatusPending || persisted.Priority != constants.MaintenancePriorityMedium {
		t.Errorf("persisted ticket = %q/%q, want pending/medium", persisted.Status, persisted.Priority)
	}
}

func TestCreateTicketKeepsExplicitFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(MaintenanceServiceOptions{DB: db, Logger: testLogger()})

	ticket, err := svc.CreateTicket(context.Background(), 1, CreateTicketInput{
		RoomID:   9,
		Type:     constants.MaintenanceTypePreventive,
		Priority: constants.MaintenancePriorityHigh,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ticket.Type != constants.MaintenanceTypePreventive {
		t.Errorf("type = %q, want preventive", ticket.Type)
	}
	if ticket.Priority != constants.MaintenancePriorityHigh {
		t.Errorf("priority = %q, want high", ticket.Priority)
	}
}

func TestCompleteTicketGuards(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(MaintenanceServiceOptions{DB: db, Logger: testLogger()})
	ctx := context.Background()

	t.Run("unassigned ticket cannot complete", func(t *testing.T) {
		ticket, err := svc.CreateTicket(ctx, 1, CreateTicketInput{RoomID: 2, Description: "broken lamp"})
		if err != nil {
			t.Fatal(err)
		}

		_, err = svc.CompleteTicket(ctx, 1, ticket.ID, 5, "done", nil)
		svcErr, ok := err.(*ServiceError)
		if !ok || svcErr.Code != ErrCodeTicketUnassigned {
			t.Fatalf("completion of unassigned ticket = %v, want %s", err, ErrCodeTicketUnassigned)
		}
	})

	t.Run("completed ticket is terminal", func(t *testing.T) {
		staff := models.Staff{HotelID: 1, Name: "Binh Le", Role: constants.StaffRoleMaintenance}
		if err := db.Create(&staff).Error; err != nil {
			t.Fatal(err)
		}
		ticket, err := svc.CreateTicket(ctx, 1, CreateTicketInput{RoomID: 3, Description: "stuck window"})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := svc.AssignStaff(ctx, 1, ticket.ID, staff.ID); err != nil {
			t.Fatal(err)
		}

		done, err := svc.CompleteTicket(ctx, 1, ticket.ID, staff.ID, "replaced the hinge", nil)
		if err != nil {
			t.Fatal(err)
		}
		if done.Status != constants.MaintenanceStatusCompleted {
			t.Errorf("status = %q, want completed", done.Status)
		}
		if done.CompletedAt == nil {
			t.Error("completion timestamp not set")
		}

		_, err = svc.CompleteTicket(ctx, 1, ticket.ID, staff.ID, "again", nil)
		svcErr, ok := err.(*ServiceError)
		if !ok || svcErr.Code != ErrCodeTicketTerminal {
			t.Fatalf("second completion = %v, want %s", err, ErrCodeTicketTerminal)
		}
	})

	t.Run("unknown ticket", func(t *testing.T) {
		_, err := svc.CompleteTicket(ctx, 1, 999, 5, "", nil)
		svcErr, ok := err.(*ServiceError)
		if !ok || svcErr.Code != ErrCodeTicketNotFound {
			t.Fatalf("completion of missing ticket = %v, want %s", err, ErrCodeTicketNotFound)
		}
	})
}
