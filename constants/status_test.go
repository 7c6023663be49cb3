package constants

import (
	"reflect"
	"testing"
)

func TestIsValidRoomStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{RoomStatusAvailable, true},
		{RoomStatusOccupied, true},
		{RoomStatusCleaning, true},
		{RoomStatusMaintenance, true},
		{RoomStatusDoNotDisturb, true},
		{RoomStatusCheckOut, true},
		{"", false},
		{"AVAILABLE", false},
		{"checked_out", false},
		{"dnd", false},
	}

	for _, tt := range tests {
		if got := IsValidRoomStatus(tt.status); got != tt.want {
			t.Errorf("IsValidRoomStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestIsGuestRoomStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{RoomStatusDoNotDisturb, true},
		{RoomStatusCleaning, true},
		{RoomStatusAvailable, false},
		{RoomStatusOccupied, false},
		{RoomStatusMaintenance, false},
		{RoomStatusCheckOut, false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsGuestRoomStatus(tt.status); got != tt.want {
			t.Errorf("IsGuestRoomStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestNextMaintenanceStatuses(t *testing.T) {
	tests := []struct {
		status string
		want   []string
	}{
		{MaintenanceStatusPending, []string{MaintenanceStatusInProgress}},
		{MaintenanceStatusInProgress, []string{MaintenanceStatusCompleted}},
		{MaintenanceStatusCompleted, nil},
		{"unknown", nil},
	}

	for _, tt := range tests {
		if got := NextMaintenanceStatuses(tt.status); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("NextMaintenanceStatuses(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestValidateRoomStatus(t *testing.T) {
	for _, status := range RoomStatuses {
		if err := ValidateRoomStatus(status); err != nil {
			t.Errorf("ValidateRoomStatus(%q) returned error: %v", status, err)
		}
	}
	if err := ValidateRoomStatus("broken"); err == nil {
		t.Error("ValidateRoomStatus(\"broken\") expected an error")
	}
}

func TestIsValidStaffRole(t *testing.T) {
	for _, role := range StaffRoles {
		if !IsValidStaffRole(role) {
			t.Errorf("IsValidStaffRole(%q) = false, want true", role)
		}
	}
	if IsValidStaffRole("janitor") {
		t.Error("IsValidStaffRole(\"janitor\") = true, want false")
	}
}
