package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/testutils"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flipOne = "from 1 read a write b goto 2 move r"

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestLoadProgram(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flip.tm")
	require.NoError(t, os.WriteFile(path, []byte(flipOne+"\n"), 0644))

	p, err := LoadProgram(RunOptions{File: path, Tape: "a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, flipOne+"\n", p.Description)
	assert.Equal(t, "a", p.Tape)

	p, err = LoadProgram(RunOptions{File: "-"}, strings.NewReader(flipOne))
	require.NoError(t, err)
	assert.Equal(t, flipOne, p.Description)

	p, err = LoadProgram(RunOptions{Description: "inline"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "inline", p.Description)

	_, err = LoadProgram(RunOptions{File: filepath.Join(dir, "missing.tm")}, nil)
	assert.Error(t, err)
}

func TestRun_Text(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	engine := NewEngine(config.Default(), logging.NewNop())

	p := domain.Program{Description: "junk\n" + flipOne, Tape: "a"}
	res, err := Run(context.Background(), engine, p, RunOptions{Trace: true}, stdout, stderr, logging.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "2", res.State)

	assert.Equal(t, "State: 1\nTape: [a] \n\nState: 2\nTape: b [_] \n\nTerminated in state 2\nTape: b [_] \n", stdout.String())
	assert.Equal(t, "error: invalid line 'junk'\n", stderr.String())
}

func TestRun_JSON(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	engine := NewEngine(config.Default(), logging.NewNop())

	_, err := Run(context.Background(), engine, domain.Program{Description: flipOne, Tape: "a"}, RunOptions{JSON: true}, stdout, stderr, logging.NewNop())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 1)
	var ev struct {
		Type string        `json:"type"`
		Data domain.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ev))
	assert.Equal(t, "result", ev.Type)
	assert.Equal(t, "b [_] ", ev.Data.Tape)
	assert.Empty(t, stderr.String())
}

func TestRun_StepLimitFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.MaxSteps = 3
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	res, err := Run(context.Background(), NewEngine(cfg, logging.NewNop()),
		domain.Program{Description: "from 1 read _ write _ goto 1 move r"},
		RunOptions{}, stdout, stderr, logging.NewNop())

	assert.ErrorIs(t, err, domain.ErrStepLimitExceeded)
	assert.True(t, IsStopped(err))
	require.NotNil(t, res)
	assert.Equal(t, 3, res.Steps)
	assert.Contains(t, stdout.String(), "Stopped in state 1 after 3 steps")
	assert.Contains(t, stderr.String(), ">>> ")
}

func TestNewEngine_ConfigParams(t *testing.T) {
	cfg := config.Default()
	cfg.Start = "A"
	cfg.EmptySymbol = "0"

	res, err := NewEngine(cfg, logging.NewNop()).Execute(context.Background(), domain.Program{
		Description: "from A read 0 write 1 goto B move r",
	})
	require.NoError(t, err)
	assert.Equal(t, "B", res.State)
	assert.Equal(t, "1 [0] ", res.Tape)
}

func TestNewStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, closeFn, err := NewStore(ctx, config.Default())
		require.NoError(t, err)
		defer closeFn()
		require.NoError(t, store.Save(ctx, "x", &domain.Program{Description: flipOne}))
	})

	t.Run("file", func(t *testing.T) {
		cfg := config.Default()
		cfg.Store = config.StoreFile
		cfg.StorePath = t.TempDir()

		store, closeFn, err := NewStore(ctx, cfg)
		require.NoError(t, err)
		defer closeFn()
		require.NoError(t, store.Save(ctx, "x", &domain.Program{Description: flipOne}))
		assert.FileExists(t, filepath.Join(cfg.StorePath, "x.json"))
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := config.Default()
		cfg.Store = config.StoreRedis
		cfg.Redis.Addr = mr.Addr()

		store, closeFn, err := NewStore(ctx, cfg)
		require.NoError(t, err)
		defer closeFn()
		require.NoError(t, store.Save(ctx, "x", &domain.Program{Description: flipOne}))
		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, ids)
	})

	t.Run("redis unreachable", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		cfg := config.Default()
		cfg.Store = config.StoreRedis
		cfg.Redis.Addr = addr

		_, _, err := NewStore(ctx, cfg)
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := config.Default()
		cfg.Store = "etcd"
		_, _, err := NewStore(ctx, cfg)
		assert.ErrorIs(t, err, config.ErrUnknownStore)
	})
}

func TestOpenLibrary(t *testing.T) {
	lib, err := OpenLibrary("")
	require.NoError(t, err)
	assert.IsType(t, &registry.Registry{}, lib)

	dir := t.TempDir()
	testutils.WriteFiles(t, dir, map[string]string{
		"flip.md": "---\ntape: a\n---\n" + flipOne + "\n",
	})
	lib, err = OpenLibrary(dir)
	require.NoError(t, err)

	p, err := lib.GetProgram(context.Background(), "flip")
	require.NoError(t, err)
	assert.Equal(t, "a", p.Tape)
}

func TestRunWatch_RerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.tm")
	require.NoError(t, os.WriteFile(path, []byte(flipOne), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stdout, stderr := &syncBuffer{}, &syncBuffer{}
	engine := NewEngine(config.Default(), logging.NewNop())
	errCh := make(chan error, 1)
	go func() {
		errCh <- RunWatch(ctx, engine, RunOptions{File: path, Tape: "a"}, stdout, stderr, logging.NewNop())
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(stderr.String(), "Waiting for changes")
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, stdout.String(), "Terminated in state 2")

	require.NoError(t, os.WriteFile(path, []byte("from 1 read a write c goto 3 move l"), 0644))

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "Terminated in state 3")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestRunWatch_NeedsFile(t *testing.T) {
	err := RunWatch(context.Background(), nil, RunOptions{File: "-"}, nil, nil, logging.NewNop())
	assert.Error(t, err)
}
