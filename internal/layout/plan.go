package layout

import (
	"fmt"
	"math"

	"github.com/wippyai/ffnet/errors"
)

// Kind identifies one of the three fixed layers.
type Kind uint8

const (
	Input Kind = iota
	Hidden
	Output
)

// NumLayers is the fixed layer count of a buffer.
const NumLayers = 3

func (k Kind) String() string {
	switch k {
	case Input:
		return "input"
	case Hidden:
		return "hidden"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("layer(%d)", uint8(k))
	}
}

// Valid reports whether k names one of the three layers.
func (k Kind) Valid() bool {
	return k < NumLayers
}

// LayerPlan is one row of the stride table. All offsets are relative to the
// start of the buffer.
type LayerPlan struct {
	Offset      uint32
	NodesOffset uint32
	Size        uint32
	NodeSize    uint32 // stride between consecutive nodes
	NodeCount   uint32
	WeightCount uint32 // fan-in, identical for every node of the layer
	Kind        Kind
}

// NodeOffset returns the offset of node index. ok is false when index is out
// of range.
func (l LayerPlan) NodeOffset(index int) (uint32, bool) {
	if index < 0 || uint64(index) >= uint64(l.NodeCount) {
		return 0, false
	}
	return l.NodesOffset + uint32(index)*l.NodeSize, true
}

// WeightOffset returns the offset of weight i of the node at nodeOffset. ok
// is false when i is out of range.
func (l LayerPlan) WeightOffset(nodeOffset uint32, i int) (uint32, bool) {
	if i < 0 || uint64(i) >= uint64(l.WeightCount) {
		return 0, false
	}
	return nodeOffset + records.WeightsOffset + uint32(i)*F64Size, true
}

// End returns the first offset past the layer.
func (l LayerPlan) End() uint32 {
	return l.Offset + l.Size
}

// Plan is the stride table of a buffer, computed once from the topology.
type Plan struct {
	Layers     [NumLayers]LayerPlan
	HeaderSize uint32
	Total      uint32
}

// NewPlan validates a topology and computes every layer and node size.
func NewPlan(inputs, hidden, outputs int) (Plan, error) {
	counts := [NumLayers]int{inputs, hidden, outputs}
	for k, n := range counts {
		if n < 1 {
			return Plan{}, errors.InvalidTopology(
				fmt.Sprintf("%s count must be positive, got %d", Kind(k), n), n)
		}
		if uint64(n) > math.MaxUint32 {
			return Plan{}, errors.InvalidTopology(
				fmt.Sprintf("%s count %d exceeds uint32", Kind(k), n), n)
		}
	}

	fanIn := [NumLayers]uint32{0, uint32(inputs), uint32(hidden)}

	p := Plan{HeaderSize: records.LayersOffset}
	offset := p.HeaderSize
	for k := range counts {
		kind := Kind(k)
		nodes := uint32(counts[k])

		nodeSize, ok := NodeSize(fanIn[k])
		if !ok {
			return Plan{}, errors.Overflow(errors.PhaseLayout, []string{kind.String()}, "node size")
		}
		layerSize, ok := LayerSize(nodes, fanIn[k])
		if !ok {
			return Plan{}, errors.Overflow(errors.PhaseLayout, []string{kind.String()}, "layer size")
		}

		p.Layers[k] = LayerPlan{
			Kind:        kind,
			Offset:      offset,
			NodesOffset: offset + records.NodesOffset,
			Size:        layerSize,
			NodeSize:    nodeSize,
			NodeCount:   nodes,
			WeightCount: fanIn[k],
		}

		offset, ok = SafeAddU32(offset, layerSize)
		if !ok {
			return Plan{}, errors.Overflow(errors.PhaseLayout, []string{kind.String()}, "buffer size")
		}
	}
	p.Total = offset

	if p.Total > MaxAlloc {
		return Plan{}, errors.New(errors.PhaseLayout, errors.KindAllocation).
			Value(p.Total).
			Detail("buffer of %d bytes exceeds limit of %d", p.Total, MaxAlloc).
			Build()
	}

	return p, nil
}

// Layer returns the stride table row for k.
func (p Plan) Layer(k Kind) (LayerPlan, bool) {
	if !k.Valid() {
		return LayerPlan{}, false
	}
	return p.Layers[k], true
}

// NodeCount returns the number of nodes across all layers.
func (p Plan) NodeCount() int {
	total := 0
	for _, l := range p.Layers {
		total += int(l.NodeCount)
	}
	return total
}

// NodeSize is the node header plus weights f64 slots.
func NodeSize(weights uint32) (uint32, bool) {
	w, ok := SafeMulU32(weights, F64Size)
	if !ok {
		return 0, false
	}
	return SafeAddU32(records.WeightsOffset, w)
}

// LayerSize is the padded layer header plus nodes nodes of NodeSize(weights).
func LayerSize(nodes, weights uint32) (uint32, bool) {
	nodeSize, ok := NodeSize(weights)
	if !ok {
		return 0, false
	}
	run, ok := SafeMulU32(nodes, nodeSize)
	if !ok {
		return 0, false
	}
	return SafeAddU32(records.NodesOffset, run)
}
