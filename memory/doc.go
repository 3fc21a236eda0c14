// Package memory provides the allocation backends for network buffers.
//
// Every network lives in exactly one region obtained from an ffnet.Allocator.
// Two backends are provided:
//
// # Heap
//
// A zero-filled Go byte slice with bounds-checked little-endian accessors:
//
//	alloc := memory.NewHeap()
//	region, err := alloc.Allocate(ctx, 440)
//	defer region.Close(ctx)
//
// Heap.Limit caps the region size; larger requests fail with an allocation
// error.
//
// # Wazero
//
// A WebAssembly linear memory hosted by wazero. Each region instantiates a
// memory-only module in its own runtime, so the buffer is sandboxed from the
// Go heap and released as a unit:
//
//	alloc := memory.NewWazero()
//	region, err := alloc.Allocate(ctx, 440)
//	defer region.Close(ctx)
//
// Accesses past the requested size fail even when the page would allow them.
package memory
