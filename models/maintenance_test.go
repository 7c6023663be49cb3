package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEvidenceList(t *testing.T) {
	tests := []struct {
		name    string
		raw     json.RawMessage
		want    int
		wantErr bool
	}{
		{"empty column", nil, 0, false},
		{"empty array", json.RawMessage(`[]`), 0, false},
		{"two attachments", json.RawMessage(`[{"type":"image","url":"https://cdn.example.com/a.jpg"},{"type":"video","url":"https://cdn.example.com/b.mp4"}]`), 2, false},
		{"corrupt json", json.RawMessage(`{not json`), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := Maintenance{Evidence: tt.raw}
			list, err := ticket.EvidenceList()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected decode error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(list) != tt.want {
				t.Errorf("len = %d, want %d", len(list), tt.want)
			}
		})
	}
}

func TestEvidenceListPreservesOrder(t *testing.T) {
	ticket := Maintenance{
		Evidence: json.RawMessage(`[{"type":"image","url":"first"},{"type":"image","url":"second"}]`),
	}
	list, err := ticket.EvidenceList()
	if err != nil {
		t.Fatal(err)
	}
	if list[0].URL != "first" || list[1].URL != "second" {
		t.Errorf("order not preserved: %+v", list)
	}
}

func TestMaintenanceIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		ticket Maintenance
		want   bool
	}{
		{"past schedule, pending", Maintenance{Status: "pending", ScheduledFor: now.Add(-time.Hour)}, true},
		{"past schedule, in progress", Maintenance{Status: "in_progress", ScheduledFor: now.Add(-time.Hour)}, true},
		{"past schedule, completed", Maintenance{Status: "completed", ScheduledFor: now.Add(-time.Hour)}, false},
		{"future schedule", Maintenance{Status: "pending", ScheduledFor: now.Add(time.Hour)}, false},
		{"no schedule", Maintenance{Status: "pending"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ticket.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue = %v, want %v", got, tt.want)
			}
		})
	}
}
