// Package ffnet stores a fixed-topology feed-forward network in one
// contiguous byte region.
//
// A network is a header followed by three layer records (input, hidden,
// output). Each layer record holds its node records back to back, and each
// node record carries its bias, output, weight count and weights inline.
// Node sizes differ between layers because a node stores one weight per node
// of the layer before it, so nodes are addressed through a stride table
// computed once from the topology and recorded in the header.
//
// # Architecture Overview
//
//	ffnet/               Root package with Memory, Region and Allocator interfaces
//	├── network/         Network construction, layer/node addressing, weight init
//	├── memory/          Heap and wazero linear-memory region backends
//	├── random/          Uniform [0, 1) sources: seeded, shared, crypto, fixed
//	├── errors/          Structured error types with phase and kind
//	├── internal/layout/ Record layout calculator and stride table
//	└── cmd/nnlayout/    CLI and TUI that print and browse a network buffer
//
// # Quick Start
//
//	net, err := network.New(ctx, 3, 4, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer net.Close(ctx)
//
//	hidden, _ := net.Layer(network.Hidden)
//	node, _ := hidden.Node(0)
//	w, _ := node.Weight(2)
//
// # Buffer Layout
//
// Records follow canonical ABI alignment rules over the WIT record types in
// internal/layout:
//
//	header   inp/hid/out node and layer sizes (u32 x 6), activations (u8 x 2), learning rate (f64)
//	layer    ncount (u32), then ncount node records
//	node     bias (f64), output (f64), wcount (u32), then wcount weights (f64)
//
// For a 3-4-2 network the header takes 40 bytes, the input layer 80, the
// hidden layer 200 and the output layer 120, for 440 bytes in total.
//
// # Backends
//
// Regions come from an Allocator. memory.Heap backs a region with a Go byte
// slice; memory.Wazero instantiates a memory-only WebAssembly module and
// uses its linear memory, so the buffer can be handed to guest code.
//
// # Errors
//
// All failures are *errors.Error values carrying the phase (layout,
// allocate, address, init, access, validate, export, release) and kind:
//
//	if errors.HasKind(err, errors.KindOutOfBounds) {
//	    // node or weight index past the end of its layer
//	}
package ffnet
