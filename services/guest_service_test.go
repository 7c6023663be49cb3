package services

import (
	"testing"

	"hotelflow/constants"
)

func TestGuestActionStatus(t *testing.T) {
	tests := []struct {
		action     string
		wantStatus string
		wantOk     bool
	}{
		{GuestActionDoNotDisturb, constants.RoomStatusDoNotDisturb, true},
		{GuestActionNeedCleaning, constants.RoomStatusCleaning, true},
		{GuestActionNeedTowels, "", false},
		{GuestActionFreeMessage, "", false},
		{"unknown", "", false},
	}

	for _, tt := range tests {
		status, ok := GuestActionStatus(tt.action)
		if status != tt.wantStatus || ok != tt.wantOk {
			t.Errorf("GuestActionStatus(%q) = (%q, %v), want (%q, %v)",
				tt.action, status, ok, tt.wantStatus, tt.wantOk)
		}
	}
}

func TestGuestActionRequestType(t *testing.T) {
	tests := []struct {
		action   string
		wantType string
		wantErr  bool
	}{
		{GuestActionDoNotDisturb, constants.RequestTypeDoNotDisturb, false},
		{GuestActionNeedCleaning, constants.RequestTypeNeedCleaning, false},
		{GuestActionNeedTowels, constants.RequestTypeNeedTowels, false},
		{GuestActionFreeMessage, constants.RequestTypeGuestMessage, false},
		{"order_room_service", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		requestType, err := GuestActionRequestType(tt.action)
		if (err != nil) != tt.wantErr {
			t.Errorf("GuestActionRequestType(%q) error = %v, wantErr %v", tt.action, err, tt.wantErr)
			continue
		}
		if requestType != tt.wantType {
			t.Errorf("GuestActionRequestType(%q) = %q, want %q", tt.action, requestType, tt.wantType)
		}
	}
}

// Every guest action that changes room state must map into the
// guest-allowed status subset, or the transition applier would reject it.
func TestGuestActionStatusesAreGuestAllowed(t *testing.T) {
	actions := []string{GuestActionDoNotDisturb, GuestActionNeedCleaning, GuestActionNeedTowels, GuestActionFreeMessage}
	for _, action := range actions {
		status, ok := GuestActionStatus(action)
		if !ok {
			continue
		}
		if !constants.IsGuestRoomStatus(status) {
			t.Errorf("action %q maps to staff-only status %q", action, status)
		}
	}
}
