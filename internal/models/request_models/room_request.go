package request_models

import (
	"homiehub/pkg/utils"
)

type CreateRoomRequest struct {
	Location            string         `json:"location" binding:"required,min=1,max=100"`
	Address             string         `json:"address" binding:"required,min=5,max=200"`
	FlatmateGender      string         `json:"flatmate_gender" binding:"required,oneof=Male Female Non-binary Mixed Any"`
	Rent                int            `json:"rent" binding:"required,gte=300,lte=10000"`
	AttachedBathroom    string         `json:"attached_bathroom" binding:"required,oneof=Yes No"`
	LeaseDurationMonths int            `json:"lease_duration_months" binding:"required,gte=1,lte=24"`
	RoomType            string         `json:"room_type" binding:"required,oneof=Shared Private Studio"`
	UtilitiesIncluded   []string       `json:"utilities_included" binding:"omitempty,max=10"`
	Contact             string         `json:"contact" binding:"required,email"`
	AvailableFrom       utils.DateOnly `json:"available_from" binding:"required"`

	LifestyleFood    string `json:"lifestyle_food" binding:"omitempty,min=1,max=50"`
	LifestyleAlcohol string `json:"lifestyle_alcohol" binding:"omitempty,oneof=Never Rarely Occasionally Regularly Frequently"`
	LifestyleSmoke   string `json:"lifestyle_smoke" binding:"omitempty,min=1,max=50"`

	NumBedrooms  *int     `json:"num_bedrooms" binding:"omitempty,gte=1,lte=10"`
	NumBathrooms *int     `json:"num_bathrooms" binding:"omitempty,gte=1,lte=10"`
	Description  string   `json:"description" binding:"omitempty,max=2000"`
	Amenities    []string `json:"amenities" binding:"omitempty,max=20"`
	Photos       []string `json:"photos" binding:"omitempty,max=20"`
}
