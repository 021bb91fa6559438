package runner

import (
	"fmt"
	"io"
)

// ReadSource reads a description or tape from r, refusing input larger than
// the configured maximum, and sanitizes it.
func ReadSource(r io.Reader) (string, error) {
	limit := getMaxInputSize()
	data, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}
	return SanitizeInput(string(data))
}
