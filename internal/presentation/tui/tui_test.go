package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	out := &bytes.Buffer{}
	PrintBanner(out, "1.2.3")

	assert.Contains(t, out.String(), "|_   _|")
	assert.Contains(t, out.String(), "v1.2.3")
}

func TestRenderer_KeepsReport(t *testing.T) {
	render := NewRenderer()

	got, err := render("Terminated in state 2\nTape: b [_] \n")
	require.NoError(t, err)
	assert.Contains(t, got, "Terminated")
	assert.Contains(t, got, "Tape")
}

func TestIsTerminal_Buffer(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
