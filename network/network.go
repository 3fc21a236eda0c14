package network

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/ffnet"
	"github.com/wippyai/ffnet/errors"
	"github.com/wippyai/ffnet/internal/layout"
	"github.com/wippyai/ffnet/random"
)

// Network is a three-layer feed-forward network stored in one region.
type Network struct {
	region       ffnet.Region
	source       random.Source
	log          *zap.Logger
	plan         layout.Plan
	topology     Topology
	learningRate float64
	hiddenAct    Activation
	outputAct    Activation
}

// New creates a network with default configuration: heap storage, Sigmoid
// activations, learning rate 0.1 and clock-seeded weights.
func New(ctx context.Context, inputs, hidden, outputs int) (*Network, error) {
	return NewWithConfig(ctx, inputs, hidden, outputs, nil)
}

// NewWithConfig creates a network with custom configuration. A nil cfg
// means defaults. On error no region is left allocated.
func NewWithConfig(ctx context.Context, inputs, hidden, outputs int, cfg *Config) (*Network, error) {
	c, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	plan, err := layout.NewPlan(inputs, hidden, outputs)
	if err != nil {
		return nil, err
	}

	region, err := c.Allocator.Allocate(ctx, plan.Total)
	if err != nil {
		if _, ok := err.(*errors.Error); ok {
			return nil, err
		}
		return nil, errors.AllocationFailed(errors.PhaseAllocate, plan.Total, err)
	}
	if region.Size() < plan.Total {
		_ = region.Close(ctx)
		return nil, errors.New(errors.PhaseAllocate, errors.KindAllocation).
			Value(region.Size()).
			Detail("allocator returned %d bytes, need %d", region.Size(), plan.Total).
			Build()
	}

	n := &Network{
		region:       region,
		source:       c.Source,
		log:          c.Logger,
		plan:         plan,
		topology:     Topology{Inputs: inputs, Hidden: hidden, Outputs: outputs},
		learningRate: c.LearningRate,
		hiddenAct:    c.HiddenActivation,
		outputAct:    c.OutputActivation,
	}

	if err := n.build(); err != nil {
		_ = region.Close(ctx)
		n.region = nil
		return nil, err
	}

	n.log.Debug("network created",
		zap.Stringer("topology", n.topology),
		zap.Uint32("size", plan.Total),
		zap.Int("nodes", plan.NodeCount()))
	return n, nil
}

func (n *Network) build() error {
	if err := n.writeHeader(); err != nil {
		return err
	}
	for _, l := range n.plan.Layers {
		if err := n.populateLayer(l); err != nil {
			return err
		}
		n.log.Debug("layer populated",
			zap.Stringer("layer", l.Kind),
			zap.Uint32("offset", l.Offset),
			zap.Uint32("stride", l.NodeSize),
			zap.Uint32("nodes", l.NodeCount),
			zap.Uint32("weights", l.WeightCount))
	}
	if err := n.InitWeights(Hidden); err != nil {
		return err
	}
	if err := n.InitWeights(Output); err != nil {
		return err
	}
	return n.Validate()
}

func (n *Network) writeHeader() error {
	offs := layout.Headers().Network.FieldOffs
	in, hid, out := n.plan.Layers[layout.Input], n.plan.Layers[layout.Hidden], n.plan.Layers[layout.Output]

	sizes := []struct {
		field string
		value uint32
	}{
		{layout.FieldInputNodeSize, in.NodeSize},
		{layout.FieldInputLayerSize, in.Size},
		{layout.FieldHiddenNodeSize, hid.NodeSize},
		{layout.FieldHiddenLayerSize, hid.Size},
		{layout.FieldOutputNodeSize, out.NodeSize},
		{layout.FieldOutputLayerSize, out.Size},
	}
	for _, s := range sizes {
		if err := n.region.WriteU32(offs[s.field], s.value); err != nil {
			return initErr(err, []string{"header", s.field})
		}
	}

	if err := n.region.WriteU8(offs[layout.FieldHiddenActivation], uint8(n.hiddenAct)); err != nil {
		return initErr(err, []string{"header", layout.FieldHiddenActivation})
	}
	if err := n.region.WriteU8(offs[layout.FieldOutputActivation], uint8(n.outputAct)); err != nil {
		return initErr(err, []string{"header", layout.FieldOutputActivation})
	}
	if err := n.region.WriteF64(offs[layout.FieldLearningRate], n.learningRate); err != nil {
		return initErr(err, []string{"header", layout.FieldLearningRate})
	}
	return nil
}

// populateLayer writes the layer header and zeroed nodes sized to the
// layer's fan-in.
func (n *Network) populateLayer(l layout.LayerPlan) error {
	path := []string{l.Kind.String()}
	if err := n.region.WriteU32(l.Offset, l.NodeCount); err != nil {
		return initErr(err, append(path, layout.FieldNodeCount))
	}

	fields := layout.Headers().Node.FieldOffs
	weightsOff := layout.Headers().WeightsOffset
	zeros := make([]byte, l.WeightCount*layout.F64Size)

	for i := 0; i < int(l.NodeCount); i++ {
		off, _ := l.NodeOffset(i)
		nodePath := append(path, nodeName(i))
		if err := n.region.WriteF64(off+fields[layout.FieldBias], 0); err != nil {
			return initErr(err, nodePath)
		}
		if err := n.region.WriteF64(off+fields[layout.FieldOutput], 0); err != nil {
			return initErr(err, nodePath)
		}
		if err := n.region.WriteU32(off+fields[layout.FieldWeightCount], l.WeightCount); err != nil {
			return initErr(err, nodePath)
		}
		if len(zeros) > 0 {
			if err := n.region.Write(off+weightsOff, zeros); err != nil {
				return initErr(err, nodePath)
			}
		}
	}
	return nil
}

// Layer returns the layer record for t.
func (n *Network) Layer(t LayerType) (Layer, error) {
	if n.region == nil {
		return Layer{}, errors.Released(errors.PhaseAddress, "network")
	}
	lp, ok := n.plan.Layer(layout.Kind(t))
	if !ok {
		return Layer{}, errors.InvalidLayer(errors.PhaseAddress, t, "unknown layer type")
	}
	return Layer{net: n, plan: lp}, nil
}

// Topology returns the node counts the network was created with.
func (n *Network) Topology() Topology {
	return n.topology
}

// HiddenActivation returns the activation recorded for the hidden layer.
func (n *Network) HiddenActivation() Activation {
	return n.hiddenAct
}

// OutputActivation returns the activation recorded for the output layer.
func (n *Network) OutputActivation() Activation {
	return n.outputAct
}

// LearningRate returns the stored learning rate.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

// Size returns the buffer size in bytes.
func (n *Network) Size() uint32 {
	return n.plan.Total
}

// NodeCount returns the number of nodes across all layers.
func (n *Network) NodeCount() int {
	return n.plan.NodeCount()
}

// Released reports whether Close has been called.
func (n *Network) Released() bool {
	return n.region == nil
}

// Walk calls fn for every node in storage order: input, hidden, output.
// It stops at the first error fn returns.
func (n *Network) Walk(fn func(Layer, Node) error) error {
	for _, t := range LayerTypes {
		l, err := n.Layer(t)
		if err != nil {
			return err
		}
		for i := 0; i < l.NodeCount(); i++ {
			node, err := l.Node(i)
			if err != nil {
				return err
			}
			if err := fn(l, node); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close releases the region. It must be called exactly once; a second call
// returns a released error.
func (n *Network) Close(ctx context.Context) error {
	if n.region == nil {
		return errors.Released(errors.PhaseRelease, "network")
	}
	region := n.region
	n.region = nil
	if err := region.Close(ctx); err != nil {
		return errors.Wrap(errors.PhaseRelease, errors.KindAllocation, err, "release region")
	}
	n.log.Debug("network released", zap.Stringer("topology", n.topology))
	return nil
}

func (n *Network) memory(phase errors.Phase) (ffnet.Memory, error) {
	if n == nil {
		return nil, errors.InvalidInput(phase, "zero layer or node handle")
	}
	if n.region == nil {
		return nil, errors.Released(phase, "network")
	}
	return n.region, nil
}

func initErr(err error, path []string) error {
	return errors.New(errors.PhaseInit, errors.KindOutOfBounds).
		Path(path...).
		Cause(err).
		Detail("populate buffer").
		Build()
}
