package services

import (
	"context"
	"reflect"
	"testing"

	"hotelflow/constants"
	"hotelflow/models"
)

func boardRooms() []models.Room {
	return []models.Room{
		{ID: 1, Number: "101", Floor: 1, Status: constants.RoomStatusAvailable},
		{ID: 2, Number: "102", Floor: 1, Status: constants.RoomStatusOccupied},
		{ID: 3, Number: "201", Floor: 2, Status: constants.RoomStatusCleaning},
		{ID: 4, Number: "202", Floor: 2, Status: constants.RoomStatusOccupied},
		{ID: 5, Number: "301", Floor: 3, Status: constants.RoomStatusDoNotDisturb},
		{ID: 6, Number: "302", Floor: 3, Status: ""},
	}
}

func intPtr(n int) *int { return &n }

func roomIDs(rooms []models.Room) []uint {
	ids := make([]uint, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterRooms(t *testing.T) {
	rooms := boardRooms()

	tests := []struct {
		name    string
		filter  BoardFilter
		wantIDs []uint
	}{
		{"no filter returns all", BoardFilter{}, []uint{1, 2, 3, 4, 5, 6}},
		{"floor only", BoardFilter{Floor: intPtr(2)}, []uint{3, 4}},
		{"status only", BoardFilter{Status: constants.RoomStatusOccupied}, []uint{2, 4}},
		{"status all passes everything", BoardFilter{Status: "all"}, []uint{1, 2, 3, 4, 5, 6}},
		{"search substring", BoardFilter{Search: "0 2"}, []uint{}},
		{"search matches number", BoardFilter{Search: "02"}, []uint{2, 4, 6}},
		{"search is case-insensitive", BoardFilter{Search: "301"}, []uint{5}},
		{"predicates compose with AND", BoardFilter{Floor: intPtr(2), Status: constants.RoomStatusOccupied}, []uint{4}},
		{"no match", BoardFilter{Floor: intPtr(9)}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roomIDs(FilterRooms(rooms, tt.filter))
			if !reflect.DeepEqual(got, tt.wantIDs) {
				t.Errorf("FilterRooms() ids = %v, want %v", got, tt.wantIDs)
			}
		})
	}
}

func TestCountByStatus(t *testing.T) {
	counts := CountByStatus(boardRooms())

	// Every canonical status is present even when zero.
	for _, status := range constants.RoomStatuses {
		if _, ok := counts[status]; !ok {
			t.Errorf("counts missing status %q", status)
		}
	}

	want := map[string]int{
		constants.RoomStatusAvailable:    2, // one explicit plus the empty-status room
		constants.RoomStatusOccupied:     2,
		constants.RoomStatusCleaning:     1,
		constants.RoomStatusMaintenance:  0,
		constants.RoomStatusDoNotDisturb: 1,
		constants.RoomStatusCheckOut:     0,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("CountByStatus() = %v, want %v", counts, want)
	}
}

func TestCountByStatusIgnoresFilter(t *testing.T) {
	rooms := boardRooms()
	filtered := FilterRooms(rooms, BoardFilter{Status: constants.RoomStatusOccupied})

	full := CountByStatus(rooms)
	if full[constants.RoomStatusCleaning] != 1 {
		t.Errorf("unfiltered count lost the cleaning room: %v", full)
	}
	if len(filtered) != 2 {
		t.Errorf("filter returned %d rooms, want 2", len(filtered))
	}
}

func TestUniqueFloors(t *testing.T) {
	tests := []struct {
		name  string
		rooms []models.Room
		want  []int
	}{
		{"sorted distinct floors", boardRooms(), []int{1, 2, 3}},
		{"empty input", nil, []int{}},
		{"duplicates collapse", []models.Room{{Floor: 5}, {Floor: 5}, {Floor: 5}}, []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UniqueFloors(tt.rooms); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UniqueFloors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoardCacheKey(t *testing.T) {
	if got := BoardCacheKey(42); got != "rooms:board:42" {
		t.Errorf("BoardCacheKey(42) = %q", got)
	}
	if got := StaffCacheKey(7); got != "staff:list:7" {
		t.Errorf("StaffCacheKey(7) = %q", got)
	}
}

func TestLoadBoardCachesEmptyHotel(t *testing.T) {
	db := newTestDB(t)
	rdb := newTestRedis(t)
	svc := NewBoardService(BoardServiceOptions{DB: db, Redis: rdb, Logger: testLogger()})
	ctx := context.Background()

	snapshot, err := svc.LoadBoard(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(snapshot.Rooms) != 0 {
		t.Fatalf("fresh hotel has %d rooms, want 0", len(snapshot.Rooms))
	}
	if n, _ := rdb.Exists(ctx, BoardCacheKey(1)).Result(); n != 1 {
		t.Fatal("empty board was not cached")
	}

	// A room created behind the service's back stays invisible until the
	// cache entry expires or is invalidated: the empty snapshot is a hit.
	if err := db.Create(&models.Room{HotelID: 1, Number: "101"}).Error; err != nil {
		t.Fatal(err)
	}
	cached, err := svc.LoadBoard(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(cached.Rooms) != 0 {
		t.Errorf("cached load returned %d rooms, want the cached empty board", len(cached.Rooms))
	}

	svc.Invalidate(ctx, 1)
	reloaded, err := svc.LoadBoard(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded.Rooms) != 1 {
		t.Errorf("post-invalidation load returned %d rooms, want 1", len(reloaded.Rooms))
	}
}
