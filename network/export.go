package network

import (
	"gonum.org/v1/gonum/mat"

	"github.com/wippyai/ffnet/errors"
)

// WeightMatrix copies the weights of the hidden or output layer into a
// NodeCount x WeightCount matrix. Row o holds the weights of node o.
func (n *Network) WeightMatrix(t LayerType) (*mat.Dense, error) {
	l, err := n.Layer(t)
	if err != nil {
		return nil, err
	}
	if l.WeightCount() == 0 {
		return nil, errors.InvalidLayer(errors.PhaseExport, t, "layer has no weights")
	}

	rows, cols := l.NodeCount(), l.WeightCount()
	data := make([]float64, rows*cols)
	for o := 0; o < rows; o++ {
		node, err := l.Node(o)
		if err != nil {
			return nil, err
		}
		ws, err := node.Weights()
		if err != nil {
			return nil, err
		}
		copy(data[o*cols:], ws)
	}
	return mat.NewDense(rows, cols, data), nil
}

// BiasVector copies the biases of a layer into a vector indexed by node.
func (n *Network) BiasVector(t LayerType) (*mat.VecDense, error) {
	return n.vector(t, Node.Bias)
}

// OutputVector copies the outputs of a layer into a vector indexed by node.
func (n *Network) OutputVector(t LayerType) (*mat.VecDense, error) {
	return n.vector(t, Node.Output)
}

func (n *Network) vector(t LayerType, read func(Node) (float64, error)) (*mat.VecDense, error) {
	l, err := n.Layer(t)
	if err != nil {
		return nil, err
	}
	data := make([]float64, l.NodeCount())
	for o := range data {
		node, err := l.Node(o)
		if err != nil {
			return nil, err
		}
		v, err := read(node)
		if err != nil {
			return nil, err
		}
		data[o] = v
	}
	return mat.NewVecDense(len(data), data), nil
}
