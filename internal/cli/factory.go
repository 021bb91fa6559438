package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/adapters/file"
	"github.com/aretw0/turing/internal/adapters/redis"
	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/pkg/adapters/loam"
	"github.com/aretw0/turing/pkg/adapters/memory"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/registry"
)

// NewEngine builds an engine from the configuration. Run boundaries are
// logged through logger and extra hooks are chained after the logging ones.
func NewEngine(cfg config.Config, logger *slog.Logger, extra ...domain.LifecycleHooks) *turing.Engine {
	hooks := append([]domain.LifecycleHooks{observability.LoggingHooks(logger)}, extra...)

	return turing.New(
		turing.WithLogger(logger),
		turing.WithLifecycleHooks(observability.Chain(hooks...)),
		turing.WithDefaultParams(cfg.Params()),
		turing.WithStepLimit(cfg.MaxSteps),
		turing.WithGrowChunk(cfg.GrowChunk),
	)
}

// NewStore opens the program store selected by the configuration.
// The returned close function must be called when done.
func NewStore(ctx context.Context, cfg config.Config) (ports.ProgramStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store {
	case config.StoreMemory:
		return memory.NewStore(), noop, nil
	case config.StoreFile:
		return file.New(cfg.StorePath), noop, nil
	case config.StoreRedis:
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		)
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStore, cfg.Store)
}

// OpenLibrary returns the built-in samples, or the machines of a loam
// directory when dir is set.
func OpenLibrary(dir string) (ports.ProgramLoader, error) {
	if dir == "" {
		return registry.Default(), nil
	}
	loader, err := loam.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open library %s: %w", dir, err)
	}
	return loader, nil
}
