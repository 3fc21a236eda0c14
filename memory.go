package ffnet

import "context"

// Memory is a flat little-endian byte region addressed by uint32 offsets.
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU8(offset uint32) (uint8, error)
	ReadU32(offset uint32) (uint32, error)
	ReadU64(offset uint32) (uint64, error)
	ReadF64(offset uint32) (float64, error)
	WriteU8(offset uint32, value uint8) error
	WriteU32(offset uint32, value uint32) error
	WriteU64(offset uint32, value uint64) error
	WriteF64(offset uint32, value float64) error
}

// MemorySizer provides the size of a region in bytes.
type MemorySizer interface {
	Size() uint32
}

// Region is a single owned allocation. Close releases it; the region must
// not be used afterwards.
type Region interface {
	Memory
	MemorySizer
	Close(ctx context.Context) error
}

// Allocator hands out zero-filled regions.
type Allocator interface {
	Allocate(ctx context.Context, size uint32) (Region, error)
}
