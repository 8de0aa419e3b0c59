package response_models

type Match struct {
	RoomID string `json:"room_id"`
	Room   Room   `json:"room"`
}

// MatchResponse preserves the ascending-distance order produced by the
// vector index; Matches is never re-sorted after retrieval.
type MatchResponse struct {
	UserID       string  `json:"user_id"`
	Matches      []Match `json:"matches"`
	TotalResults int     `json:"total_results"`
}
