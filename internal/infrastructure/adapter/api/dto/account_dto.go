package dto

// RegisterRequest represents the API request for registering an account
type RegisterRequest struct {
	Username           string `json:"username" binding:"required"`
	Email              string `json:"email" binding:"required,email"`
	Password           string `json:"password" binding:"required"`
	PasswordConfirm    string `json:"passwordConfirm" binding:"required"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Phone              string `json:"phone"`
	Plan               *int   `json:"plan"`
	JoinedReferralCode string `json:"joinedReferralCode"`
}

// LoginRequest represents the API request for authenticating
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the account it belongs to
type LoginResponse struct {
	Token   string          `json:"token"`
	Account AccountResponse `json:"account"`
}

// AccountResponse is the outward projection of an account
type AccountResponse struct {
	ID           uint64 `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Status       string `json:"status"`
	Plan         *int   `json:"plan,omitempty"`
	ReferralCode string `json:"referralCode"`
	IsAdmin      bool   `json:"isAdmin,omitempty"`
}

// ProfileUpdateRequest carries the optional profile fields; empty fields
// are left unchanged
type ProfileUpdateRequest struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	JoinedReferralCode string `json:"joinedReferralCode"`
}

// PasswordChangeRequest represents the API request for changing a password
type PasswordChangeRequest struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required"`
}
