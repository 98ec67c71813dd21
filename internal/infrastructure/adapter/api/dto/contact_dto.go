package dto

// ContactRequest represents the API request for sending a contact message
type ContactRequest struct {
	Message string `json:"message" binding:"required"`
}

// ContactRespondRequest represents the admin response to a contact message
type ContactRespondRequest struct {
	Response string `json:"response" binding:"required"`
}

// ContactResponse represents one contact message with its response state
type ContactResponse struct {
	ID       uint64 `json:"id"`
	Message  string `json:"message"`
	Response string `json:"response"`
	Answered bool   `json:"answered"`
	SentAt   string `json:"sentAt"`
}
