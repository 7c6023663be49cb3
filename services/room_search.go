package services

import (
	"sort"
	"strings"

	"hotelflow/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// normalizeInput strips accents and case so "Suíte 101" matches "suite 101".
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}
	// DefaultOptions charges 2 per substitution, so the raw ratio can dip
	// below zero on a full mismatch. Floor it: a score is never negative.
	similarity := 1.0 - float64(distance)/maxLen
	if similarity < 0 {
		return 0
	}
	return similarity
}

// RoomSuggestion is one autocomplete candidate with its match score.
type RoomSuggestion struct {
	Room  models.Room `json:"room"`
	Score float64     `json:"score"`
}

// roomSearchKey builds the normalized haystack string for one room.
func roomSearchKey(room models.Room) string {
	parts := []string{room.Number, room.Type}
	parts = append(parts, room.Features...)
	return normalizeInput(strings.Join(parts, " "))
}

// SuggestRooms ranks rooms against a free-text query for the ticket form
// autocomplete. Exact substring hits on the room number come first, then
// fuzzy candidates by similarity. Returns at most limit suggestions.
func SuggestRooms(rooms []models.Room, query string, limit int) []RoomSuggestion {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" || len(rooms) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = 5
	}

	keys := make([]string, 0, len(rooms))
	byKey := make(map[string]models.Room, len(rooms))
	for _, room := range rooms {
		key := roomSearchKey(room)
		keys = append(keys, key)
		byKey[key] = room
	}

	matcher := createMatcher(keys)
	closest := matcher.ClosestN(normalizedQuery, limit*2)

	suggestions := make([]RoomSuggestion, 0, len(closest))
	seen := make(map[uint]bool)
	for _, key := range closest {
		room, ok := byKey[key]
		if !ok || seen[room.ID] {
			continue
		}
		seen[room.ID] = true

		score := calculateSimilarity(normalizedQuery, key)
		if strings.Contains(normalizeInput(room.Number), normalizedQuery) {
			score = 1.0
		}
		suggestions = append(suggestions, RoomSuggestion{Room: room, Score: score})
	}

	// Substring hits the n-gram matcher missed still belong in the list.
	for _, room := range rooms {
		if seen[room.ID] {
			continue
		}
		if strings.Contains(normalizeInput(room.Number), normalizedQuery) {
			seen[room.ID] = true
			suggestions = append(suggestions, RoomSuggestion{Room: room, Score: 1.0})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
