// Package network builds fixed-topology feed-forward networks inside a
// single memory region.
//
// A network has exactly three layers (input, hidden, output). The region
// holds a header followed by the three layers back to back; each layer holds
// its nodes at a uniform stride, and each node carries a bias, an output and
// a weight vector sized by the fan-in of its layer. No pointers are stored in
// the region: every layer and node is reached through offsets derived from
// the stride table computed at construction.
//
// # Quick Start
//
//	ctx := context.Background()
//	net, err := network.New(ctx, 3, 4, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer net.Close(ctx)
//
//	hidden, _ := net.Layer(network.Hidden)
//	node, _ := hidden.Node(0)
//	w, _ := node.Weight(0)
//
// # Configuration
//
//	net, err := network.NewWithConfig(ctx, 3, 4, 2, &network.Config{
//	    Allocator:        memory.NewWazero(),
//	    Source:           random.NewSeeded(42),
//	    HiddenActivation: network.Tanh,
//	    LearningRate:     0.05,
//	})
//
// Activations and learning rate are stored in the header for later training
// or inference code; nothing in this package evaluates them.
//
// # Weight Initialization
//
// Construction runs InitWeights for the hidden and then the output layer.
// Each weight is 0.7*u and each bias is u, for u drawn from the configured
// source, negated at odd weight index and odd node index respectively.
//
// # Ownership
//
// A Network owns its region. Close releases it exactly once; afterwards every
// Network, Layer and Node accessor returns a released error. A Network is not
// safe for concurrent use.
package network
