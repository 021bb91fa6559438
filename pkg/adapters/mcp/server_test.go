package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcResponse struct {
	Result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		Contents []struct {
			URI  string `json:"uri"`
			Text string `json:"text"`
		} `json:"contents"`
		IsError bool `json:"isError"`
	} `json:"result"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer() *Server {
	return NewServer(turing.New(turing.WithStepLimit(100)), WithLibrary(registry.Default()))
}

func call(t *testing.T, s *Server, method string, params any) rpcResponse {
	t.Helper()
	req := map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	}
	raw, err := json.Marshal(req)
	require.NoError(t, err)

	msg := s.mcpServer.HandleMessage(context.Background(), raw)
	out, err := json.Marshal(msg)
	require.NoError(t, err)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(out, &resp), string(out))
	require.Nil(t, resp.Error, string(out))
	return resp
}

func callTool(t *testing.T, s *Server, name string, args map[string]any) rpcResponse {
	t.Helper()
	return call(t, s, "tools/call", map[string]any{"name": name, "arguments": args})
}

func decodeText[T any](t *testing.T, resp rpcResponse) T {
	t.Helper()
	require.False(t, resp.Result.IsError, fmt.Sprint(resp.Result.Content))
	require.NotEmpty(t, resp.Result.Content)
	var out T
	require.NoError(t, json.Unmarshal([]byte(resp.Result.Content[0].Text), &out))
	return out
}

func TestRunMachine(t *testing.T) {
	s := newTestServer()

	out := decodeText[RunOutput](t, callTool(t, s, "run_machine", map[string]any{
		"tm_description": "from 1 read a write b goto 2 move r",
		"tape":           "a",
		"trace":          true,
	}))

	require.NotNil(t, out.Result)
	assert.Equal(t, "2", out.Result.State)
	assert.Equal(t, "b [_] ", out.Result.Tape)
	assert.Empty(t, out.Error)
	assert.Equal(t, "State: 1\nTape: [a] \n\nState: 2\nTape: b [_] \n\nTerminated in state 2\nTape: b [_] \n", out.Report)
}

func TestRunMachine_StepLimit(t *testing.T) {
	s := newTestServer()

	out := decodeText[RunOutput](t, callTool(t, s, "run_machine", map[string]any{
		"tm_description": "from 1 read _ write _ goto 1 move l",
	}))
	require.NotNil(t, out.Result)
	assert.False(t, out.Result.Halted)
	assert.Contains(t, out.Error, domain.ErrStepLimitExceeded.Error())
}

func TestRunExample(t *testing.T) {
	s := newTestServer()

	out := decodeText[RunOutput](t, callTool(t, s, "run_example", map[string]any{"id": "busy-beaver-2"}))
	assert.Equal(t, "H", out.Result.State)
	assert.Equal(t, 6, out.Result.Steps)

	resp := callTool(t, s, "run_example", map[string]any{"id": "missing"})
	assert.True(t, resp.Result.IsError)
}

func TestValidateMachine(t *testing.T) {
	s := newTestServer()

	out := decodeText[ValidateOutput](t, callTool(t, s, "validate_machine", map[string]any{
		"tm_description": "from 1 read a write b goto 2 move r\nfrom 1 read a\n",
	}))
	assert.Equal(t, 1, out.Transitions)
	assert.Equal(t, []string{"1", "2"}, out.States)
	assert.Equal(t, []string{"line 2: error: invalid line 'from,1,read,a'"}, out.Diagnostics)
}

func TestGraphMachine(t *testing.T) {
	s := newTestServer()

	resp := callTool(t, s, "graph_machine", map[string]any{
		"tm_description": "from 1 read a write b goto 2 move r",
	})
	require.False(t, resp.Result.IsError)
	assert.Contains(t, resp.Result.Content[0].Text, "graph LR")
}

func TestExamplesResource(t *testing.T) {
	s := newTestServer()

	resp := call(t, s, "resources/read", map[string]any{"uri": ExamplesURI})
	require.Len(t, resp.Result.Contents, 1)
	assert.Equal(t, ExamplesURI, resp.Result.Contents[0].URI)

	var programs []domain.Program
	require.NoError(t, json.Unmarshal([]byte(resp.Result.Contents[0].Text), &programs))
	require.NotEmpty(t, programs)

	ids := make([]string, len(programs))
	for i, p := range programs {
		ids[i] = p.ID
	}
	assert.Contains(t, ids, "binary-increment")
}
