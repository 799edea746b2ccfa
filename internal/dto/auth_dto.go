package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterRequest is internal: user-management provisions credentials on
// behalf of a new employee, supplying the user_key it generated.
type RegisterRequest struct {
	UserKey  string `json:"user_key" validate:"required,uuid"`
	Username string `json:"username" validate:"required,min=1,max=150"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ProfileResponse is the public view of a credential, also embedded in the
// session token claims.
type ProfileResponse struct {
	UserKey  string `json:"user_key"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type LoginResponse struct {
	Msg   string          `json:"msg"`
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

type VerifyResponse struct {
	User ProfileResponse `json:"user"`
}
