package service

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service layer. Handlers translate them to
// HTTP statuses; repositories never surface gorm errors past this package.
var (
	ErrInvalid            = errors.New("invalid request")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UpstreamError carries a sibling service's status and message so the caller
// can forward them unchanged.
type UpstreamError struct {
	Status int
	Msg    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Msg)
}
