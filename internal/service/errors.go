package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrForbidden            = errors.New("forbidden")
	ErrAssistantUnavailable = errors.New("assistant is unavailable")
)

// StepError names the cleanup step that failed during a cascading delete.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
