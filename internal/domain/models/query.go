package models

import (
	"cmp"
	"strings"
)

// IntParam is a numeric query value. Valid is false when the raw value had no
// leading integer, in which case every comparison against it fails.
type IntParam struct {
	Value int
	Valid bool
}

type SortField string

const (
	SortByNone       SortField = ""
	SortByID         SortField = "id"
	SortByName       SortField = "name"
	SortByEmail      SortField = "email"
	SortByAge        SortField = "age"
	SortByOccupation SortField = "occupation"
	SortByCity       SortField = "city"
	SortByIsActive   SortField = "isactive"
)

var sortFields = map[SortField]func(a, b User) int{
	SortByID:         func(a, b User) int { return cmp.Compare(a.ID, b.ID) },
	SortByName:       func(a, b User) int { return strings.Compare(a.Name, b.Name) },
	SortByEmail:      func(a, b User) int { return strings.Compare(a.Email, b.Email) },
	SortByAge:        func(a, b User) int { return cmp.Compare(a.Age, b.Age) },
	SortByOccupation: func(a, b User) int { return strings.Compare(a.Occupation, b.Occupation) },
	SortByCity:       func(a, b User) int { return strings.Compare(a.City, b.City) },
	SortByIsActive:   func(a, b User) int { return compareBool(a.IsActive, b.IsActive) },
}

// ParseSortField lower-cases name and reports whether it names a sortable field.
// An empty name is valid and means no sorting.
func ParseSortField(name string) (SortField, bool) {
	f := SortField(strings.ToLower(name))
	if f == SortByNone {
		return f, true
	}
	_, ok := sortFields[f]
	return f, ok
}

// Comparator returns the ascending ordering for f, or nil for SortByNone and
// unknown fields.
func (f SortField) Comparator() func(a, b User) int {
	return sortFields[f]
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder maps anything other than "desc" (case-insensitive) to ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.ToLower(s) == string(SortDesc) {
		return SortDesc
	}
	return SortAsc
}

type ListQuery struct {
	MinAge     *IntParam
	MaxAge     *IntParam
	City       *string
	Occupation *string
	IsActive   *string
	SortBy     SortField
	SortOrder  SortOrder
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
