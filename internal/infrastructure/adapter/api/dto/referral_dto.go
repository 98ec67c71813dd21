package dto

// ReferralResponse represents the referral overview for an account
type ReferralResponse struct {
	Code       string `json:"code"`
	JoinedWith string `json:"joinedWith,omitempty"`
	Joins      int64  `json:"joins"`
}
