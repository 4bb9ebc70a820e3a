package dto

import "user-collection-service/internal/domain/models"

type UserDTO struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Age        float64 `json:"age"`
	Occupation string  `json:"occupation"`
	City       string  `json:"city"`
	IsActive   bool    `json:"isActive"`
}

// UserInput is the body of POST and PUT requests. Pointer fields distinguish an
// omitted key from an explicit zero value.
type UserInput struct {
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	Age        *float64 `json:"age"`
	Occupation *string  `json:"occupation"`
	City       *string  `json:"city"`
	IsActive   *bool    `json:"isActive"`
}

type StatsDTO struct {
	TotalUsers       int            `json:"totalUsers"`
	ActiveUsers      int            `json:"activeUsers"`
	AverageAge       float64        `json:"averageAge"`
	CityCounts       map[string]int `json:"cityCounts"`
	OccupationCounts map[string]int `json:"occupationCounts"`
}

func ToUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Age:        u.Age,
		Occupation: u.Occupation,
		City:       u.City,
		IsActive:   u.IsActive,
	}
}

func ToUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, ToUserDTO(&users[i]))
	}
	return out
}

func (in UserInput) ToNewUser() models.NewUser {
	return models.NewUser{
		Name:       in.Name,
		Email:      in.Email,
		Age:        in.Age,
		Occupation: in.Occupation,
		City:       in.City,
		IsActive:   in.IsActive,
	}
}

func (in UserInput) ToPatch() models.UserPatch {
	return models.UserPatch{
		Name:       in.Name,
		Email:      in.Email,
		Age:        in.Age,
		Occupation: in.Occupation,
		City:       in.City,
		IsActive:   in.IsActive,
	}
}

func ToStatsDTO(s *models.Stats) StatsDTO {
	return StatsDTO{
		TotalUsers:       s.TotalUsers,
		ActiveUsers:      s.ActiveUsers,
		AverageAge:       s.AverageAge,
		CityCounts:       s.CityCounts,
		OccupationCounts: s.OccupationCounts,
	}
}
