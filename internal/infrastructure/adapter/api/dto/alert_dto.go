package dto

// AlertRequest represents the API request for publishing an alert.
// An empty recipient makes it a broadcast.
type AlertRequest struct {
	Message   string `json:"message" binding:"required"`
	Recipient string `json:"recipient"`
}

// AlertResponse represents one alert in a feed
type AlertResponse struct {
	ID        uint64 `json:"id"`
	Message   string `json:"message"`
	Broadcast bool   `json:"broadcast"`
	CreatedAt string `json:"createdAt"`
}
