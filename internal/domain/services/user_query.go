package services

import (
	"slices"
	"strings"
	"user-collection-service/internal/domain/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FilterUsers applies every filter present in q, in the order
// minAge, maxAge, city, occupation, isActive. The input slice is not modified.
func FilterUsers(users []models.User, q models.ListQuery) []models.User {
	lower := cases.Lower(language.Und)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		if matches(lower, u, q) {
			out = append(out, u)
		}
	}
	return out
}

func matches(lower cases.Caser, u models.User, q models.ListQuery) bool {
	if q.MinAge != nil && (!q.MinAge.Valid || u.Age < float64(q.MinAge.Value)) {
		return false
	}
	if q.MaxAge != nil && (!q.MaxAge.Valid || u.Age > float64(q.MaxAge.Value)) {
		return false
	}
	if q.City != nil && lower.String(u.City) != lower.String(*q.City) {
		return false
	}
	if q.Occupation != nil && lower.String(u.Occupation) != lower.String(*q.Occupation) {
		return false
	}
	if q.IsActive != nil && u.IsActive != (strings.ToLower(*q.IsActive) == "true") {
		return false
	}
	return true
}

// SortUsers stable-sorts users in place. SortByNone leaves the order untouched.
func SortUsers(users []models.User, field models.SortField, order models.SortOrder) {
	compare := field.Comparator()
	if compare == nil {
		return
	}
	if order == models.SortDesc {
		slices.SortStableFunc(users, func(a, b models.User) int { return compare(b, a) })
		return
	}
	slices.SortStableFunc(users, compare)
}

// ComputeStats aggregates the whole collection. AverageAge is 0 when users is empty.
func ComputeStats(users []models.User) models.Stats {
	stats := models.Stats{
		TotalUsers:       len(users),
		CityCounts:       make(map[string]int),
		OccupationCounts: make(map[string]int),
	}
	var ageSum float64
	for _, u := range users {
		if u.IsActive {
			stats.ActiveUsers++
		}
		ageSum += u.Age
		stats.CityCounts[u.City]++
		stats.OccupationCounts[u.Occupation]++
	}
	if len(users) > 0 {
		stats.AverageAge = ageSum / float64(len(users))
	}
	return stats
}
