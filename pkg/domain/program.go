package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Program is the raw input of a run: description text and tape text.
// It is stored and transported without interpretation.
type Program struct {
	ID          string    `json:"id,omitempty"`
	Description string    `json:"tm_description"`
	Tape        string    `json:"tape"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// ValidateProgramID checks that id can be used as a store key and a file name.
func ValidateProgramID(id string) error {
	if id == "" {
		return ErrEmptyProgramID
	}
	if strings.HasPrefix(id, ".") || strings.ContainsAny(id, `/\:`) || strings.ContainsFunc(id, unicode.IsControl) {
		return fmt.Errorf("%w: %q", ErrInvalidProgramID, id)
	}
	return nil
}
