package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"hotelflow/constants"
	"hotelflow/models"
	"hotelflow/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const boardCacheTTL = 60 * time.Second

// BoardCacheKey is the per-hotel cache key of the room board.
func BoardCacheKey(hotelID uint) string {
	return fmt.Sprintf("rooms:board:%d", hotelID)
}

// StaffCacheKey is the per-hotel cache key of the staff list.
func StaffCacheKey(hotelID uint) string {
	return fmt.Sprintf("staff:list:%d", hotelID)
}

// BoardFilter selects the rooms rendered on the grid. Predicates compose
// with AND; zero values mean "all".
type BoardFilter struct {
	Floor  *int
	Search string
	Status string
}

// Matches reports whether a room passes every active predicate.
func (f BoardFilter) Matches(room models.Room) bool {
	if f.Floor != nil && room.Floor != *f.Floor {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(room.Number), strings.ToLower(f.Search)) {
		return false
	}
	if f.Status != "" && f.Status != "all" && room.Status != f.Status {
		return false
	}
	return true
}

// FilterRooms returns the subset of rooms passing the filter.
func FilterRooms(rooms []models.Room, filter BoardFilter) []models.Room {
	filtered := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if filter.Matches(room) {
			filtered = append(filtered, room)
		}
	}
	return filtered
}

// CountByStatus computes the badge counters over the UNFILTERED collection.
// Every canonical status is present in the result, zero when absent.
func CountByStatus(rooms []models.Room) map[string]int {
	counts := make(map[string]int, len(constants.RoomStatuses))
	for _, status := range constants.RoomStatuses {
		counts[status] = 0
	}
	for _, room := range rooms {
		status := room.Status
		if status == "" {
			status = constants.RoomStatusAvailable
		}
		counts[status]++
	}
	return counts
}

// UniqueFloors lists the distinct floors of a hotel, ascending.
func UniqueFloors(rooms []models.Room) []int {
	seen := make(map[int]bool)
	for _, room := range rooms {
		seen[room.Floor] = true
	}
	floors := make([]int, 0, len(seen))
	for floor := range seen {
		floors = append(floors, floor)
	}
	sort.Ints(floors)
	return floors
}

// BoardSnapshot is the materialized room board of one hotel.
type BoardSnapshot struct {
	Rooms  []models.Room  `json:"rooms"`
	Counts map[string]int `json:"counts"`
	Floors []int          `json:"floors"`
}

// BoardService keeps a hotel's room board current. The full collection is
// loaded per refresh; a single hotel's rooms comfortably fit in memory, so
// there is no pagination.
type BoardService struct {
	db     *gorm.DB
	redis  *redis.Client
	logger logger.Logger
}

type BoardServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewBoardService(opts BoardServiceOptions) *BoardService {
	return &BoardService{
		db:     opts.DB,
		redis:  opts.Redis,
		logger: opts.Logger,
	}
}

// LoadBoard returns the board snapshot for a hotel, from cache when fresh.
// Counts always cover the whole collection; filtering happens on top of
// the snapshot via FilterRooms.
func (s *BoardService) LoadBoard(ctx context.Context, hotelID uint) (*BoardSnapshot, error) {
	cacheKey := BoardCacheKey(hotelID)

	if s.redis != nil {
		var cached BoardSnapshot
		if found, err := GetFromRedis(ctx, s.redis, cacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	var rooms []models.Room
	if err := s.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("number").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to load rooms for hotel %d: %w", hotelID, err)
	}

	snapshot := &BoardSnapshot{
		Rooms:  rooms,
		Counts: CountByStatus(rooms),
		Floors: UniqueFloors(rooms),
	}

	if s.redis != nil {
		if err := SetToRedis(ctx, s.redis, cacheKey, snapshot, boardCacheTTL); err != nil {
			s.logger.Error("Failed to cache board for hotel %d: %v", hotelID, err)
		}
	}

	return snapshot, nil
}

// Invalidate drops a hotel's cached board snapshot. Room CRUD calls it so
// the next board load sees the change immediately.
func (s *BoardService) Invalidate(ctx context.Context, hotelID uint) {
	if s.redis == nil {
		return
	}
	if err := DeleteFromRedis(ctx, s.redis, BoardCacheKey(hotelID)); err != nil {
		s.logger.Error("Failed to invalidate board cache for hotel %d: %v", hotelID, err)
	}
}
