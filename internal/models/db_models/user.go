package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type User struct {
	BaseModel
	Name          string
	Email         string `gorm:"unique"`
	ContactNumber string
	Age           int
	Gender        string
	MoveInDate    time.Time `gorm:"type:date"`

	GenderPreference    string
	PreferredLocations  pq.StringArray `gorm:"type:text[]"`
	BudgetMax           *int
	LeaseDurationMonths *int
	RoomTypePreference  string
	AttachedBathroom    string
	LifestyleFood       string
	LifestyleAlcohol    string
	LifestyleSmoke      string
	UtilitiesPreference pq.StringArray `gorm:"type:text[]"`

	Occupation string
	University string
	Bio        string
	Interests  pq.StringArray `gorm:"type:text[]"`

	// Preference encoding, written once by the embedding trigger.
	// Nil until the trigger has run.
	UserVector *pgvector.Vector `gorm:"type:vector(11)"`
}
