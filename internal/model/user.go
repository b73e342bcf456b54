package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered person with a daily medication schedule
// and a hydration goal.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	MedName      string    `json:"med_name"`
	Dosage       string    `json:"dosage"`
	MedTime      string    `json:"med_time"` // "HH:MM", local to the process
	WaterGoal    int       `json:"water_goal"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
