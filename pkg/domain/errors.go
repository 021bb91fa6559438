package domain

import "errors"

// ErrProgramNotFound is returned when a program ID cannot be found in the store.
var ErrProgramNotFound = errors.New("program not found")

// ErrEmptyProgramID is returned by stores when asked to persist or fetch an empty ID.
var ErrEmptyProgramID = errors.New("program id cannot be empty")

// ErrStepLimitExceeded is returned when a run reaches its configured step budget before halting.
// The partial result is returned alongside the error.
var ErrStepLimitExceeded = errors.New("step limit exceeded")

// ErrInvalidProgramID is returned when a program ID contains path separators or other unsafe characters.
var ErrInvalidProgramID = errors.New("invalid program id")
