package model

import (
	"time"

	"github.com/google/uuid"
)

// ActionMedication is the only action the reminder engine inspects;
// every other action is free-form.
const (
	ActionMedication = "medication"
	ActionWater      = "water"
)

// LogEntry is one append-only user action record.
type LogEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
