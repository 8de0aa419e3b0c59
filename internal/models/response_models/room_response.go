package response_models

import (
	"homiehub/internal/models/db_models"
)

type Room struct {
	ID                  string   `json:"id"`
	Location            string   `json:"location"`
	Address             string   `json:"address"`
	FlatmateGender      string   `json:"flatmate_gender"`
	Rent                *int     `json:"rent,omitempty"`
	AttachedBathroom    string   `json:"attached_bathroom"`
	LeaseDurationMonths *int     `json:"lease_duration_months,omitempty"`
	RoomType            string   `json:"room_type"`
	UtilitiesIncluded   []string `json:"utilities_included"`
	Contact             string   `json:"contact"`
	AvailableFrom       string   `json:"available_from,omitempty"`

	LifestyleFood    string `json:"lifestyle_food,omitempty"`
	LifestyleAlcohol string `json:"lifestyle_alcohol,omitempty"`
	LifestyleSmoke   string `json:"lifestyle_smoke,omitempty"`

	NumBedrooms  *int     `json:"num_bedrooms,omitempty"`
	NumBathrooms *int     `json:"num_bathrooms,omitempty"`
	Description  string   `json:"description,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	Photos       []string `json:"photos,omitempty"`

	CreatedAt int64 `json:"created_at"`
}

func RoomFromModel(room *db_models.Room) Room {
	availableFrom := ""
	if room.AvailableFrom != nil {
		availableFrom = room.AvailableFrom.Format("2006-01-02")
	}

	return Room{
		ID:                  room.ID.String(),
		Location:            room.Location,
		Address:             room.Address,
		FlatmateGender:      room.FlatmateGender,
		Rent:                room.Rent,
		AttachedBathroom:    room.AttachedBathroom,
		LeaseDurationMonths: room.LeaseDurationMonths,
		RoomType:            room.RoomType,
		UtilitiesIncluded:   room.UtilitiesIncluded,
		Contact:             room.Contact,
		AvailableFrom:       availableFrom,
		LifestyleFood:       room.LifestyleFood,
		LifestyleAlcohol:    room.LifestyleAlcohol,
		LifestyleSmoke:      room.LifestyleSmoke,
		NumBedrooms:         room.NumBedrooms,
		NumBathrooms:        room.NumBathrooms,
		Description:         room.Description,
		Amenities:           room.Amenities,
		Photos:              room.Photos,
		CreatedAt:           room.CreatedAt,
	}
}
