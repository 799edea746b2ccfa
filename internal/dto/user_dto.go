package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateUserRequest struct {
	Username     string `json:"username"      validate:"required,min=1,max=150"`
	Email        string `json:"email"         validate:"required,email"`
	Password     string `json:"password"      validate:"required,min=8"`
	DepartmentID int    `json:"department_id" validate:"required,min=1"`
	FirstName    string `json:"first_name"    validate:"required,min=1,max=100"`
	LastName     string `json:"last_name"     validate:"required,min=1,max=100"`
}

// UpdateUserRequest requires every field; a partial body is a 400.
type UpdateUserRequest struct {
	Username     string `json:"username"      validate:"required,min=1,max=150"`
	Email        string `json:"email"         validate:"required,email"`
	DepartmentID int    `json:"department_id" validate:"required,min=1"`
	FirstName    string `json:"first_name"    validate:"required,min=1,max=100"`
	LastName     string `json:"last_name"     validate:"required,min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CreateUserResponse struct {
	Msg     string `json:"msg"`
	UserKey string `json:"user_key"`
}

type EmployeeResponse struct {
	ID           uint      `json:"id"`
	UserKey      string    `json:"user_key"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	DepartmentID int       `json:"department_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	HireDate     time.Time `json:"hire_date"`
	CreatedAt    time.Time `json:"created_at"`
}

// DepartmentLookupResponse is the inter-service authorization primitive.
type DepartmentLookupResponse struct {
	DepartmentID int `json:"department_id"`
}

// DepartmentMembersResponse lists the user_keys belonging to one department;
// the attendance service uses it to filter records without a cross-store join.
type DepartmentMembersResponse struct {
	UserKeys []string `json:"user_keys"`
}

type DepartmentResponse struct {
	DepartmentID   int       `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	CreatedAt      time.Time `json:"created_at"`
}
