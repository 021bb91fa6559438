// Package query round-trips programs through URL query parameters.
//
// The parameters are the ones a shareable link carries: tape and tm_description.
// Values pass through untouched; nothing here interprets them.
package query

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Parameter names.
const (
	ParamTape        = "tape"
	ParamDescription = "tm_description"
)

// Encode returns the percent-encoded query string for p, without a leading '?'.
// Parameters are written in a fixed order and empty ones are omitted.
func Encode(p domain.Program) string {
	var parts []string
	if p.Tape != "" {
		parts = append(parts, ParamTape+"="+escape(p.Tape))
	}
	if p.Description != "" {
		parts = append(parts, ParamDescription+"="+escape(p.Description))
	}
	return strings.Join(parts, "&")
}

// Decode reads a program from a raw query string. A leading '?' is accepted.
// Missing parameters decode as empty strings.
func Decode(raw string) (domain.Program, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return domain.Program{}, fmt.Errorf("failed to parse query: %w", err)
	}
	return FromValues(values), nil
}

// FromValues reads a program from already-parsed query values.
func FromValues(values url.Values) domain.Program {
	return domain.Program{
		Tape:        values.Get(ParamTape),
		Description: values.Get(ParamDescription),
	}
}

// Link appends the encoded program to base, replacing any previous
// tape and tm_description parameters and keeping the others.
func Link(base string, p domain.Program) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}

	values := u.Query()
	values.Del(ParamTape)
	values.Del(ParamDescription)

	encoded := Encode(p)
	if rest := values.Encode(); rest != "" {
		if encoded != "" {
			encoded = rest + "&" + encoded
		} else {
			encoded = rest
		}
	}
	u.RawQuery = encoded
	return u.String(), nil
}

// escape percent-encodes s for a query value. Spaces become %20 rather than
// the form encoding '+'; a literal '+' is already escaped as %2B.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
