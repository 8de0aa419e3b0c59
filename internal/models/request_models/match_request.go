package request_models

import (
	"homiehub/pkg/utils"
)

// MatchRequest carries the searching user plus optional hard filters.
// Every filter is independently optional; an absent filter passes all
// rooms. Field-level bounds are enforced at the boundary by binding.
type MatchRequest struct {
	UserID string `json:"user_id" binding:"required,min=1,max=128"`

	Location            *string         `json:"location" binding:"omitempty,min=1,max=100"`
	MaxRent             *int            `json:"max_rent" binding:"omitempty,gte=0,lte=10000"`
	RoomType            *string         `json:"room_type" binding:"omitempty,min=1,max=50"`
	FlatmateGender      *string         `json:"flatmate_gender" binding:"omitempty,min=1,max=50"`
	AttachedBathroom    *string         `json:"attached_bathroom" binding:"omitempty,min=1,max=50"`
	LeaseDurationMonths *int            `json:"lease_duration_months" binding:"omitempty,gte=1,lte=24"`
	AvailableFrom       *utils.DateOnly `json:"available_from"`

	Limit int `json:"limit" binding:"omitempty,gte=1,lte=100"`
}

// HasFilters reports whether any hard filter is present, which decides
// the over-fetch policy during retrieval.
func (r *MatchRequest) HasFilters() bool {
	return r.Location != nil ||
		r.MaxRent != nil ||
		r.RoomType != nil ||
		r.FlatmateGender != nil ||
		r.AttachedBathroom != nil ||
		r.LeaseDurationMonths != nil ||
		r.AvailableFrom != nil
}
