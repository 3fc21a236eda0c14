package layout

import (
	"go.bytecodealliance.org/wit"
)

// Node header fields.
const (
	FieldBias        = "bias"
	FieldOutput      = "output"
	FieldWeightCount = "wcount"
)

// Layer header fields.
const (
	FieldNodeCount = "ncount"
)

// Network header fields.
const (
	FieldInputNodeSize    = "inp-node-size"
	FieldInputLayerSize   = "inp-layer-size"
	FieldHiddenNodeSize   = "hid-node-size"
	FieldHiddenLayerSize  = "hid-layer-size"
	FieldOutputNodeSize   = "out-node-size"
	FieldOutputLayerSize  = "out-layer-size"
	FieldHiddenActivation = "hid-act"
	FieldOutputActivation = "out-act"
	FieldLearningRate     = "learning-rate"
)

// ActivationCases lists the activation enum in discriminant order.
var ActivationCases = []string{"sigmoid", "tanh", "relu"}

func named(name string, kind wit.TypeDefKind) *wit.TypeDef {
	return &wit.TypeDef{Name: &name, Kind: kind}
}

func activationType() *wit.TypeDef {
	cases := make([]wit.EnumCase, len(ActivationCases))
	for i, name := range ActivationCases {
		cases[i] = wit.EnumCase{Name: name}
	}
	return named("activation", &wit.Enum{Cases: cases})
}

// NodeHeaderType describes the fixed part of a node. The weight vector
// follows it in memory.
func NodeHeaderType() *wit.TypeDef {
	return named("node-header", &wit.Record{Fields: []wit.Field{
		{Name: FieldBias, Type: wit.F64{}},
		{Name: FieldOutput, Type: wit.F64{}},
		{Name: FieldWeightCount, Type: wit.U32{}},
	}})
}

// LayerHeaderType describes the fixed part of a layer. The node run follows
// it in memory.
func LayerHeaderType() *wit.TypeDef {
	return named("layer-header", &wit.Record{Fields: []wit.Field{
		{Name: FieldNodeCount, Type: wit.U32{}},
	}})
}

// NetworkHeaderType describes the buffer header.
func NetworkHeaderType() *wit.TypeDef {
	act := activationType()
	return named("network-header", &wit.Record{Fields: []wit.Field{
		{Name: FieldInputNodeSize, Type: wit.U32{}},
		{Name: FieldInputLayerSize, Type: wit.U32{}},
		{Name: FieldHiddenNodeSize, Type: wit.U32{}},
		{Name: FieldHiddenLayerSize, Type: wit.U32{}},
		{Name: FieldOutputNodeSize, Type: wit.U32{}},
		{Name: FieldOutputLayerSize, Type: wit.U32{}},
		{Name: FieldHiddenActivation, Type: act},
		{Name: FieldOutputActivation, Type: act},
		{Name: FieldLearningRate, Type: wit.F64{}},
	}})
}

// Records holds the computed header layouts and where each variable-length
// tail begins.
type Records struct {
	Node    Info
	Layer   Info
	Network Info

	WeightsOffset uint32 // first weight, relative to the node
	NodesOffset   uint32 // first node, relative to the layer
	LayersOffset  uint32 // first layer, relative to the buffer
}

var records = computeRecords()

// Headers returns the header layouts shared by every buffer.
func Headers() Records {
	return records
}

func computeRecords() Records {
	c := NewCalculator()
	node := c.Calculate(NodeHeaderType())
	layer := c.Calculate(LayerHeaderType())
	network := c.Calculate(NetworkHeaderType())

	return Records{
		Node:          node,
		Layer:         layer,
		Network:       network,
		WeightsOffset: AlignTo(node.Size, F64Size),
		NodesOffset:   AlignTo(layer.Size, node.Align),
		LayersOffset:  AlignTo(network.Size, node.Align),
	}
}
