package network

import (
	"go.uber.org/zap"

	"github.com/wippyai/ffnet/errors"
)

// WeightScale bounds the magnitude of an initial weight.
const WeightScale = 0.7

// InitWeights assigns every weight and bias of the hidden or output layer.
// Nodes are visited in index order; for each node its weights are drawn
// first, then its bias. Weight i is WeightScale*u, negated when i is odd;
// the bias of node o is u, negated when o is odd. Node and weight counts are
// never changed.
func (n *Network) InitWeights(t LayerType) error {
	if !t.Valid() {
		return errors.InvalidLayer(errors.PhaseInit, t, "unknown layer type")
	}
	if t == Input {
		return errors.InvalidLayer(errors.PhaseInit, t, "input layer has no weights")
	}

	l, err := n.Layer(t)
	if err != nil {
		return err
	}

	for o := 0; o < l.NodeCount(); o++ {
		node, err := l.Node(o)
		if err != nil {
			return err
		}

		for i := 0; i < node.WeightCount(); i++ {
			w := WeightScale * n.source.Float64()
			if i%2 == 1 {
				w = -w
			}
			if err := node.SetWeight(i, w); err != nil {
				return err
			}
		}

		bias := n.source.Float64()
		if o%2 == 1 {
			bias = -bias
		}
		if err := node.SetBias(bias); err != nil {
			return err
		}
	}

	n.log.Debug("weights initialized",
		zap.Stringer("layer", t),
		zap.Int("nodes", l.NodeCount()),
		zap.Int("weights", l.WeightCount()))
	return nil
}
