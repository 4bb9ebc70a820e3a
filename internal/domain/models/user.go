package models

type User struct {
	ID         int
	Name       string
	Email      string
	Age        float64
	Occupation string
	City       string
	IsActive   bool
}

// NewUser carries creation input. Nil fields were not supplied by the client.
type NewUser struct {
	Name       *string
	Email      *string
	Age        *float64
	Occupation *string
	City       *string
	IsActive   *bool
}

// UserPatch carries a partial update. Nil fields are left untouched.
type UserPatch struct {
	Name       *string
	Email      *string
	Age        *float64
	Occupation *string
	City       *string
	IsActive   *bool
}

type Stats struct {
	TotalUsers       int
	ActiveUsers      int
	AverageAge       float64
	CityCounts       map[string]int
	OccupationCounts map[string]int
}
