package dto

// RegisterRequest is the payload for creating a user.
type RegisterRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required,min=6"`
	MedName   string `json:"med_name" validate:"required"`
	Dosage    string `json:"dosage" validate:"required"`
	MedTime   string `json:"med_time" validate:"required"`
	WaterGoal int    `json:"water_goal" validate:"required,min=1"`
}

// UpdateProfileRequest is the payload for editing a user's profile.
type UpdateProfileRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	MedName   string `json:"med_name" validate:"required"`
	Dosage    string `json:"dosage" validate:"required"`
	MedTime   string `json:"med_time" validate:"required"`
	WaterGoal int    `json:"water_goal" validate:"required,min=1"`
}

// LogRequest is the payload for logging a user action.
type LogRequest struct {
	Action string `json:"action" validate:"required"`
}

// SummaryResponse is the dashboard view of a user's day.
type SummaryResponse struct {
	NextDoseAt  string `json:"next_dose_at"`
	NextDoseIn  string `json:"next_dose_in"`
	TakenToday  bool   `json:"taken_today"`
	WaterLogged int    `json:"water_logged"`
	WaterGoal   int    `json:"water_goal"`
}
