package domain

import "time"

// Room represents a meeting room
// Ядро читает только ID, Capacity и IsAvailable, остальное - для ответов API
type Room struct {
	ID          int64
	Name        string
	Capacity    int
	Facilities  []string
	IsAvailable bool // soft-delete флаг
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Fits returns true if the room is bookable for the given number of people
func (r *Room) Fits(participants int) bool {
	return r.IsAvailable && r.Capacity >= participants
}
