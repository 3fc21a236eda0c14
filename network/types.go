package network

import (
	"fmt"
	"strings"

	"github.com/wippyai/ffnet/errors"
	"github.com/wippyai/ffnet/internal/layout"
)

// LayerType selects one of the three layers.
type LayerType uint8

const (
	Input  LayerType = LayerType(layout.Input)
	Hidden LayerType = LayerType(layout.Hidden)
	Output LayerType = LayerType(layout.Output)
)

// LayerTypes lists the layers in storage order.
var LayerTypes = [layout.NumLayers]LayerType{Input, Hidden, Output}

func (t LayerType) String() string {
	return layout.Kind(t).String()
}

// Valid reports whether t is Input, Hidden or Output.
func (t LayerType) Valid() bool {
	return layout.Kind(t).Valid()
}

// Activation is the activation function recorded for a layer.
type Activation uint8

const (
	Sigmoid Activation = iota
	Tanh
	Relu
)

func (a Activation) String() string {
	if !a.Valid() {
		return fmt.Sprintf("activation(%d)", uint8(a))
	}
	return layout.ActivationCases[a]
}

// Valid reports whether a is a known activation.
func (a Activation) Valid() bool {
	return int(a) < len(layout.ActivationCases)
}

// ParseActivation parses "sigmoid", "tanh" or "relu" (any case).
func ParseActivation(s string) (Activation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, c := range layout.ActivationCases {
		if c == name {
			return Activation(i), nil
		}
	}
	return 0, errors.InvalidEnum(errors.PhaseValidate, nil, s, "activation")
}

// Topology is the (input, hidden, output) node count triple.
type Topology struct {
	Inputs  int
	Hidden  int
	Outputs int
}

func (t Topology) String() string {
	return fmt.Sprintf("%d-%d-%d", t.Inputs, t.Hidden, t.Outputs)
}

// Header is the decoded buffer header.
type Header struct {
	InputNodeSize    uint32
	InputLayerSize   uint32
	HiddenNodeSize   uint32
	HiddenLayerSize  uint32
	OutputNodeSize   uint32
	OutputLayerSize  uint32
	LearningRate     float64
	HiddenActivation Activation
	OutputActivation Activation
}
