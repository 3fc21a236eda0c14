// Package layout computes the byte layout of a network buffer.
//
// The fixed-size headers (node, layer, network) are described as WIT records
// and sized with Canonical ABI rules: fields are laid out in order, each
// aligned to its natural alignment, and the record size is rounded up to the
// largest field alignment. Variable-length tails (the per-node weight vector,
// the per-layer node run) are appended after the aligned header.
//
// # Buffer Layout
//
//	network-header | input layer | hidden layer | output layer
//
//	layer:  layer-header pad | node 0 | node 1 | ... (uniform stride)
//	node:   node-header | weight 0 | weight 1 | ...
//
// # Usage
//
//	plan, err := layout.NewPlan(3, 4, 2)
//	hidden := plan.Layer(layout.Hidden)
//	off, err := hidden.NodeOffset(2)
//
// This package is internal to ffnet.
package layout
