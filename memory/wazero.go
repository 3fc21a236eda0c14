package memory

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/ffnet"
	"github.com/wippyai/ffnet/errors"
	"github.com/wippyai/ffnet/internal/layout"
)

// Wazero allocates regions as WebAssembly linear memories.
type Wazero struct {
	config wazero.RuntimeConfig
}

// NewWazero creates an allocator using the default wazero runtime config.
func NewWazero() *Wazero {
	return NewWazeroWithConfig(nil)
}

// NewWazeroWithConfig creates an allocator with a custom runtime config.
// A nil config means wazero.NewRuntimeConfig().
func NewWazeroWithConfig(cfg wazero.RuntimeConfig) *Wazero {
	if cfg == nil {
		cfg = wazero.NewRuntimeConfig()
	}
	return &Wazero{config: cfg}
}

// Allocate instantiates a memory of at least size bytes in a fresh runtime.
func (w *Wazero) Allocate(ctx context.Context, size uint32) (ffnet.Region, error) {
	if size == 0 {
		return nil, errors.InvalidInput(errors.PhaseAllocate, "region size must be positive")
	}
	if size > layout.MaxAlloc {
		return nil, errors.AllocationFailed(errors.PhaseAllocate, size,
			fmt.Errorf("limit is %d bytes", layout.MaxAlloc))
	}

	pages := pagesFor(size)
	rt := wazero.NewRuntimeWithConfig(ctx, w.config)

	compiled, err := rt.CompileModule(ctx, memoryModule(pages))
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.AllocationFailed(errors.PhaseAllocate, size, err)
	}

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(""))
	if err != nil {
		_ = multierr.Combine(compiled.Close(ctx), rt.Close(ctx))
		return nil, errors.AllocationFailed(errors.PhaseAllocate, size, err)
	}

	mem := mod.ExportedMemory(memoryExport)
	if mem == nil {
		_ = multierr.Combine(mod.Close(ctx), compiled.Close(ctx), rt.Close(ctx))
		return nil, errors.AllocationFailed(errors.PhaseAllocate, size,
			fmt.Errorf("module does not export %q", memoryExport))
	}

	Logger().Debug("wasm memory allocated",
		zap.Uint32("size", size),
		zap.Uint32("pages", pages))

	return &WazeroRegion{
		Wrapper:  Wrapper{Mem: mem, Limit: size},
		runtime:  rt,
		compiled: compiled,
		module:   mod,
	}, nil
}

// WazeroRegion owns the runtime, compiled module and instance behind one
// linear memory.
type WazeroRegion struct {
	Wrapper
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
	module   api.Module
}

// Close tears down the instance and its runtime. Every later access fails.
func (r *WazeroRegion) Close(ctx context.Context) error {
	if r.runtime == nil {
		return nil
	}
	err := multierr.Combine(
		r.module.Close(ctx),
		r.compiled.Close(ctx),
		r.runtime.Close(ctx),
	)
	r.runtime, r.compiled, r.module = nil, nil, nil
	r.Mem = nil
	r.Limit = 0
	return err
}

var _ ffnet.Region = (*WazeroRegion)(nil)
