package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it wrote.
// Commands are package globals, so each test exercises a different command.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunCommand(t *testing.T) {
	stdout, _, err := execute(t, "run",
		"-d", "from 1 read 0 write 1 goto 1 move r",
		"-t", "0 0",
	)
	require.NoError(t, err)
	assert.Equal(t, "Terminated in state 1\nTape: 1 1 [_] \n", stdout)
}

func TestValidateCommand_InvalidLine(t *testing.T) {
	stdout, _, err := execute(t, "validate", "-d", "from 1 read\nfrom 1 read a write b goto 2 move r")
	require.Error(t, err)
	assert.Contains(t, stdout, "line 1: error: invalid line 'from,1,read'")
	assert.Contains(t, stdout, "1 rules")
}

func TestURLCommand(t *testing.T) {
	stdout, _, err := execute(t, "url", "-d", "start 1", "-t", "a b", "--base", "http://example.com/run")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/run?tape=a%20b&tm_description=start%201\n", stdout)

	p, err := decodeLink(stdout[:len(stdout)-1])
	require.NoError(t, err)
	assert.Equal(t, "a b", p.Tape)
	assert.Equal(t, "start 1", p.Description)
}

func TestExamplesCommand(t *testing.T) {
	stdout, _, err := execute(t, "examples")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bit-flip")
	assert.Contains(t, stdout, "busy-beaver-2")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "turing version ")
}

func TestGraphCommand(t *testing.T) {
	stdout, _, err := execute(t, "graph", "--example", "bit-flip")
	require.NoError(t, err)
	assert.Contains(t, stdout, "graph LR")
}

func TestProgramCommand_MissingID(t *testing.T) {
	_, _, err := execute(t, "program", "get", "missing")
	assert.Error(t, err)
}
