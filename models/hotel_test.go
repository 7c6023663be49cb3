package models

import (
	"testing"
	"time"

	"hotelflow/constants"
)

func TestHotelTrialExpired(t *testing.T) {
	now := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		hotel Hotel
		want  bool
	}{
		{"trial still running", Hotel{Status: constants.HotelStatusTrial, TrialEndsAt: now.AddDate(0, 0, 3)}, false},
		{"trial ran out", Hotel{Status: constants.HotelStatusTrial, TrialEndsAt: now.AddDate(0, 0, -1)}, true},
		{"exactly at the boundary", Hotel{Status: constants.HotelStatusTrial, TrialEndsAt: now}, false},
		{"active hotel never expires", Hotel{Status: constants.HotelStatusActive, TrialEndsAt: now.AddDate(0, 0, -30)}, false},
		{"suspended hotel", Hotel{Status: constants.HotelStatusSuspended, TrialEndsAt: now.AddDate(0, 0, -30)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hotel.TrialExpired(now); got != tt.want {
				t.Errorf("TrialExpired = %v, want %v", got, tt.want)
			}
		})
	}
}
