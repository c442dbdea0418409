package dto

import "time"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token and the authenticated user.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// GoogleLoginURLResponse carries the consent URL plus the CSRF state the
// client must echo back on callback.
type GoogleLoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// GoogleExchangeRequest is the body of POST /auth/google/exchange-code.
type GoogleExchangeRequest struct {
	Code string `json:"code" binding:"required"`
}
