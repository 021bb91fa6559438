package runtime_test

import (
	"testing"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("clean machine", func(t *testing.T) {
		m := compile(t, `from 1 read a write b goto 2 move r
from 2 read _ write c goto 2 move stay`)
		assert.Empty(t, runtime.Validate(m))
	})

	t.Run("shadowed transition", func(t *testing.T) {
		m := compile(t, `from 1 read a write b goto 2 move r
from 1 read a write c goto 3 move l`)
		issues := runtime.Validate(m)
		require.Len(t, issues, 1)
		assert.Equal(t, 1, issues[0].Transition)
		assert.Contains(t, issues[0].Message, "unreachable")
	})

	t.Run("unrecognized move", func(t *testing.T) {
		m := compile(t, "from 1 read a write b goto 2 move Right")
		issues := runtime.Validate(m)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0].Message, `"Right"`)
	})

	t.Run("start state without transitions", func(t *testing.T) {
		m := compile(t, `start q
from 1 read a write b goto 2 move r`)
		issues := runtime.Validate(m)
		require.Len(t, issues, 1)
		assert.Equal(t, -1, issues[0].Transition)
	})

	t.Run("nil machine", func(t *testing.T) {
		assert.Len(t, runtime.Validate(nil), 1)
	})
}
