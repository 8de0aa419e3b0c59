package response_models

import (
	"homiehub/internal/models/db_models"
)

type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	MoveInDate    string `json:"move_in_date"`

	GenderPreference    string   `json:"gender_preference,omitempty"`
	PreferredLocations  []string `json:"preferred_locations,omitempty"`
	BudgetMax           *int     `json:"budget_max,omitempty"`
	LeaseDurationMonths *int     `json:"lease_duration_months,omitempty"`
	RoomTypePreference  string   `json:"room_type_preference,omitempty"`
	AttachedBathroom    string   `json:"attached_bathroom,omitempty"`
	LifestyleFood       string   `json:"lifestyle_food,omitempty"`
	LifestyleAlcohol    string   `json:"lifestyle_alcohol,omitempty"`
	LifestyleSmoke      string   `json:"lifestyle_smoke,omitempty"`
	UtilitiesPreference []string `json:"utilities_preference,omitempty"`

	Occupation string   `json:"occupation,omitempty"`
	University string   `json:"university,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Interests  []string `json:"interests,omitempty"`

	VectorReady bool  `json:"vector_ready"`
	CreatedAt   int64 `json:"created_at"`
}

type Created struct {
	ID string `json:"id"`
}

func UserFromModel(user *db_models.User) User {
	return User{
		ID:                  user.ID.String(),
		Name:                user.Name,
		Email:               user.Email,
		ContactNumber:       user.ContactNumber,
		Age:                 user.Age,
		Gender:              user.Gender,
		MoveInDate:          user.MoveInDate.Format("2006-01-02"),
		GenderPreference:    user.GenderPreference,
		PreferredLocations:  user.PreferredLocations,
		BudgetMax:           user.BudgetMax,
		LeaseDurationMonths: user.LeaseDurationMonths,
		RoomTypePreference:  user.RoomTypePreference,
		AttachedBathroom:    user.AttachedBathroom,
		LifestyleFood:       user.LifestyleFood,
		LifestyleAlcohol:    user.LifestyleAlcohol,
		LifestyleSmoke:      user.LifestyleSmoke,
		UtilitiesPreference: user.UtilitiesPreference,
		Occupation:          user.Occupation,
		University:          user.University,
		Bio:                 user.Bio,
		Interests:           user.Interests,
		VectorReady:         user.UserVector != nil,
		CreatedAt:           user.CreatedAt,
	}
}
