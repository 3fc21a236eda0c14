package network

import (
	"fmt"

	"github.com/wippyai/ffnet/errors"
	"github.com/wippyai/ffnet/internal/layout"
)

// Layer is a handle to one layer record. It holds no copy of node data;
// every read goes to the region.
type Layer struct {
	net  *Network
	plan layout.LayerPlan
}

// Type returns which layer this is.
func (l Layer) Type() LayerType {
	return LayerType(l.plan.Kind)
}

// Offset returns the byte offset of the layer record in the region.
func (l Layer) Offset() uint32 {
	return l.plan.Offset
}

// Size returns the layer record size in bytes, header included.
func (l Layer) Size() uint32 {
	return l.plan.Size
}

// Stride returns the byte distance between consecutive nodes.
func (l Layer) Stride() uint32 {
	return l.plan.NodeSize
}

// NodeCount returns the number of nodes in the layer.
func (l Layer) NodeCount() int {
	return int(l.plan.NodeCount)
}

// WeightCount returns the fan-in shared by every node of the layer.
func (l Layer) WeightCount() int {
	return int(l.plan.WeightCount)
}

// StoredNodeCount reads the node count from the layer header in the region.
func (l Layer) StoredNodeCount() (int, error) {
	mem, err := l.net.memory(errors.PhaseAccess)
	if err != nil {
		return 0, err
	}
	v, err := mem.ReadU32(l.plan.Offset)
	if err != nil {
		return 0, accessErr(err, []string{l.Type().String(), layout.FieldNodeCount}, "read node count")
	}
	return int(v), nil
}

// Node returns node index. index must be in [0, NodeCount()).
func (l Layer) Node(index int) (Node, error) {
	if _, err := l.net.memory(errors.PhaseAddress); err != nil {
		return Node{}, err
	}
	off, ok := l.plan.NodeOffset(index)
	if !ok {
		return Node{}, errors.OutOfBounds(errors.PhaseAddress, []string{l.Type().String()}, index, l.NodeCount())
	}
	return Node{layer: l, index: index, offset: off}, nil
}

// Node is a handle to one node record inside a layer.
type Node struct {
	layer  Layer
	index  int
	offset uint32
}

// Index returns the node's position within its layer.
func (n Node) Index() int {
	return n.index
}

// Offset returns the byte offset of the node record in the region.
func (n Node) Offset() uint32 {
	return n.offset
}

// Layer returns the type of the layer holding the node.
func (n Node) Layer() LayerType {
	return n.layer.Type()
}

// WeightCount returns the node's fan-in from the stride table.
func (n Node) WeightCount() int {
	return n.layer.WeightCount()
}

func (n Node) path(extra ...string) []string {
	return append([]string{n.layer.Type().String(), nodeName(n.index)}, extra...)
}

func (n Node) readF64(field string) (float64, error) {
	mem, err := n.layer.net.memory(errors.PhaseAccess)
	if err != nil {
		return 0, err
	}
	v, err := mem.ReadF64(n.offset + layout.Headers().Node.FieldOffs[field])
	if err != nil {
		return 0, accessErr(err, n.path(field), "read "+field)
	}
	return v, nil
}

func (n Node) writeF64(field string, v float64) error {
	mem, err := n.layer.net.memory(errors.PhaseAccess)
	if err != nil {
		return err
	}
	if err := mem.WriteF64(n.offset+layout.Headers().Node.FieldOffs[field], v); err != nil {
		return accessErr(err, n.path(field), "write "+field)
	}
	return nil
}

// Bias returns the node's bias.
func (n Node) Bias() (float64, error) {
	return n.readF64(layout.FieldBias)
}

// SetBias stores the node's bias.
func (n Node) SetBias(v float64) error {
	return n.writeF64(layout.FieldBias, v)
}

// Output returns the node's last output.
func (n Node) Output() (float64, error) {
	return n.readF64(layout.FieldOutput)
}

// SetOutput stores the node's output.
func (n Node) SetOutput(v float64) error {
	return n.writeF64(layout.FieldOutput, v)
}

// StoredWeightCount reads wcount from the node header in the region.
func (n Node) StoredWeightCount() (int, error) {
	mem, err := n.layer.net.memory(errors.PhaseAccess)
	if err != nil {
		return 0, err
	}
	v, err := mem.ReadU32(n.offset + layout.Headers().Node.FieldOffs[layout.FieldWeightCount])
	if err != nil {
		return 0, accessErr(err, n.path(layout.FieldWeightCount), "read weight count")
	}
	return int(v), nil
}

func (n Node) weightOffset(i int) (uint32, error) {
	off, ok := n.layer.plan.WeightOffset(n.offset, i)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseAccess, n.path(weightName(i)), i, n.WeightCount())
	}
	return off, nil
}

// Weight returns weight i. i must be in [0, WeightCount()).
func (n Node) Weight(i int) (float64, error) {
	mem, err := n.layer.net.memory(errors.PhaseAccess)
	if err != nil {
		return 0, err
	}
	off, err := n.weightOffset(i)
	if err != nil {
		return 0, err
	}
	v, err := mem.ReadF64(off)
	if err != nil {
		return 0, accessErr(err, n.path(weightName(i)), "read weight")
	}
	return v, nil
}

// SetWeight stores weight i. i must be in [0, WeightCount()).
func (n Node) SetWeight(i int, v float64) error {
	mem, err := n.layer.net.memory(errors.PhaseAccess)
	if err != nil {
		return err
	}
	off, err := n.weightOffset(i)
	if err != nil {
		return err
	}
	if err := mem.WriteF64(off, v); err != nil {
		return accessErr(err, n.path(weightName(i)), "write weight")
	}
	return nil
}

// Weights returns a copy of the weight vector.
func (n Node) Weights() ([]float64, error) {
	out := make([]float64, n.WeightCount())
	for i := range out {
		v, err := n.Weight(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// SetWeights stores the whole weight vector. len(ws) must equal
// WeightCount(); the count itself never changes.
func (n Node) SetWeights(ws []float64) error {
	if len(ws) != n.WeightCount() {
		return errors.New(errors.PhaseAccess, errors.KindInvalidInput).
			Path(n.path()...).
			Value(len(ws)).
			Detail("got %d weights, node holds %d", len(ws), n.WeightCount()).
			Build()
	}
	for i, v := range ws {
		if err := n.SetWeight(i, v); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(i int) string {
	return fmt.Sprintf("node[%d]", i)
}

func weightName(i int) string {
	return fmt.Sprintf("weight[%d]", i)
}

func accessErr(err error, path []string, detail string) error {
	return errors.New(errors.PhaseAccess, errors.KindOutOfBounds).
		Path(path...).
		Cause(err).
		Detail("%s", detail).
		Build()
}
