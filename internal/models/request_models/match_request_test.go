package request_models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"homiehub/pkg/utils"
)

func TestHasFilters(t *testing.T) {
	assert.False(t, (&MatchRequest{UserID: "u1", Limit: 10}).HasFilters())

	location := "Boston"
	assert.True(t, (&MatchRequest{UserID: "u1", Location: &location}).HasFilters())

	maxRent := 1500
	assert.True(t, (&MatchRequest{UserID: "u1", MaxRent: &maxRent}).HasFilters())

	available := utils.NewDateOnly(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, (&MatchRequest{UserID: "u1", AvailableFrom: &available}).HasFilters())
}
