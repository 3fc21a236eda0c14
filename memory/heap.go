package memory

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/ffnet"
	"github.com/wippyai/ffnet/errors"
	"github.com/wippyai/ffnet/internal/layout"
)

// Heap allocates regions on the Go heap.
type Heap struct {
	// Limit is the largest region in bytes. 0 means layout.MaxAlloc.
	Limit uint32
}

// NewHeap creates a heap allocator with the default limit.
func NewHeap() *Heap {
	return &Heap{}
}

// Allocate returns a zero-filled region of size bytes.
func (h *Heap) Allocate(_ context.Context, size uint32) (ffnet.Region, error) {
	if size == 0 {
		return nil, errors.InvalidInput(errors.PhaseAllocate, "region size must be positive")
	}
	limit := h.Limit
	if limit == 0 {
		limit = layout.MaxAlloc
	}
	if size > limit {
		return nil, errors.AllocationFailed(errors.PhaseAllocate, size,
			fmt.Errorf("heap limit is %d bytes", limit))
	}

	Logger().Debug("heap region allocated", zap.Uint32("size", size))
	return &HeapRegion{buf: make([]byte, size)}, nil
}

// HeapRegion is a region backed by a byte slice.
type HeapRegion struct {
	buf []byte
}

func (r *HeapRegion) span(offset, length uint32) ([]byte, bool) {
	end := uint64(offset) + uint64(length)
	if end > uint64(len(r.buf)) {
		return nil, false
	}
	return r.buf[offset:end], true
}

// Size returns the region size in bytes, 0 after Close.
func (r *HeapRegion) Size() uint32 {
	return uint32(len(r.buf))
}

// Read returns a view of length bytes at offset.
func (r *HeapRegion) Read(offset uint32, length uint32) ([]byte, error) {
	b, ok := r.span(offset, length)
	if !ok {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", offset, length)
	}
	return b, nil
}

// Write copies data to offset.
func (r *HeapRegion) Write(offset uint32, data []byte) error {
	b, ok := r.span(offset, uint32(len(data)))
	if !ok {
		return fmt.Errorf("memory write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	copy(b, data)
	return nil
}

// ReadU8 reads an unsigned 8-bit value.
func (r *HeapRegion) ReadU8(offset uint32) (uint8, error) {
	b, ok := r.span(offset, 1)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return b[0], nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (r *HeapRegion) ReadU32(offset uint32) (uint32, error) {
	b, ok := r.span(offset, 4)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads an unsigned 64-bit little-endian value.
func (r *HeapRegion) ReadU64(offset uint32) (uint64, error) {
	b, ok := r.span(offset, 8)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadF64 reads a little-endian IEEE 754 double.
func (r *HeapRegion) ReadF64(offset uint32) (float64, error) {
	v, err := r.ReadU64(offset)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// WriteU8 writes an unsigned 8-bit value.
func (r *HeapRegion) WriteU8(offset uint32, value uint8) error {
	b, ok := r.span(offset, 1)
	if !ok {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	b[0] = value
	return nil
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (r *HeapRegion) WriteU32(offset uint32, value uint32) error {
	b, ok := r.span(offset, 4)
	if !ok {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	binary.LittleEndian.PutUint32(b, value)
	return nil
}

// WriteU64 writes an unsigned 64-bit little-endian value.
func (r *HeapRegion) WriteU64(offset uint32, value uint64) error {
	b, ok := r.span(offset, 8)
	if !ok {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	binary.LittleEndian.PutUint64(b, value)
	return nil
}

// WriteF64 writes a little-endian IEEE 754 double.
func (r *HeapRegion) WriteF64(offset uint32, value float64) error {
	return r.WriteU64(offset, math.Float64bits(value))
}

// Close drops the backing slice. Every later access fails.
func (r *HeapRegion) Close(context.Context) error {
	r.buf = nil
	return nil
}

var _ ffnet.Region = (*HeapRegion)(nil)
