package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type Room struct {
	BaseModel
	Location            string
	Address             string
	FlatmateGender      string
	Rent                *int
	AttachedBathroom    string
	LeaseDurationMonths *int
	RoomType            string
	UtilitiesIncluded   pq.StringArray `gorm:"type:text[]"`
	Contact             string
	AvailableFrom       *time.Time `gorm:"type:date"`

	LifestyleFood    string
	LifestyleAlcohol string
	LifestyleSmoke   string

	NumBedrooms  *int
	NumBathrooms *int
	Description  string
	Amenities    pq.StringArray `gorm:"type:text[]"`
	Photos       pq.StringArray `gorm:"type:text[]"`

	// Attribute encoding, written once by the embedding trigger.
	// Nil until the trigger has run.
	RoomVector *pgvector.Vector `gorm:"type:vector(11)"`
}
