package domain

import "time"

// Session is an ephemeral record of one recommendation interaction.
// Sessions live in memory only and are evicted oldest-first.
type Session struct {
	SessionID      string               `json:"session_id"`
	LuggageSize    string               `json:"luggage_size"`
	ConfirmedItems []RecommendationItem `json:"confirmed_items"`
	CreatedAt      time.Time            `json:"created_at"`
}
