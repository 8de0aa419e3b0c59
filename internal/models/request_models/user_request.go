package request_models

import (
	"homiehub/pkg/utils"
)

type CreateUserRequest struct {
	Name          string         `json:"name" binding:"required,min=2,max=100"`
	Email         string         `json:"email" binding:"required,email"`
	ContactNumber string         `json:"contact_number" binding:"required,min=10,max=15"`
	Age           int            `json:"age" binding:"required,gte=18,lte=100"`
	Gender        string         `json:"gender" binding:"required"`
	MoveInDate    utils.DateOnly `json:"move_in_date" binding:"required"`

	GenderPreference    string   `json:"gender_preference" binding:"omitempty,oneof=Male Female Mixed Any"`
	PreferredLocations  []string `json:"preferred_locations" binding:"omitempty,max=10,dive,min=1,max=100"`
	BudgetMax           *int     `json:"budget_max" binding:"omitempty,gte=300,lte=10000"`
	LeaseDurationMonths *int     `json:"lease_duration_months" binding:"omitempty,gte=1,lte=24"`
	RoomTypePreference  string   `json:"room_type_preference" binding:"omitempty,oneof=Shared Private Studio Any"`
	AttachedBathroom    string   `json:"attached_bathroom" binding:"omitempty,oneof=Yes No"`
	LifestyleFood       string   `json:"lifestyle_food" binding:"omitempty,min=1,max=50"`
	LifestyleAlcohol    string   `json:"lifestyle_alcohol" binding:"omitempty,oneof=Never Rarely Occasionally Regularly Frequently"`
	LifestyleSmoke      string   `json:"lifestyle_smoke" binding:"omitempty,min=1,max=50"`
	UtilitiesPreference []string `json:"utilities_preference" binding:"omitempty,max=10"`

	Occupation string   `json:"occupation" binding:"omitempty,max=100"`
	University string   `json:"university" binding:"omitempty,max=100"`
	Bio        string   `json:"bio" binding:"omitempty,max=500"`
	Interests  []string `json:"interests" binding:"omitempty,max=20"`
}
