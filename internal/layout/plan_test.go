package layout

import (
	"math"
	"testing"

	"github.com/wippyai/ffnet/errors"
)

func TestNewPlan_Scenario(t *testing.T) {
	p, err := NewPlan(3, 4, 2)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}

	tests := []struct {
		kind      Kind
		offset    uint32
		size      uint32
		stride    uint32
		nodes     uint32
		weights   uint32
		firstNode uint32
	}{
		{Input, 40, 80, 24, 3, 0, 48},
		{Hidden, 120, 200, 48, 4, 3, 128},
		{Output, 320, 120, 56, 2, 4, 328},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			l, ok := p.Layer(tc.kind)
			if !ok {
				t.Fatal("layer not found")
			}
			if l.Offset != tc.offset {
				t.Errorf("offset: got %d, want %d", l.Offset, tc.offset)
			}
			if l.Size != tc.size {
				t.Errorf("size: got %d, want %d", l.Size, tc.size)
			}
			if l.NodeSize != tc.stride {
				t.Errorf("stride: got %d, want %d", l.NodeSize, tc.stride)
			}
			if l.NodeCount != tc.nodes {
				t.Errorf("nodes: got %d, want %d", l.NodeCount, tc.nodes)
			}
			if l.WeightCount != tc.weights {
				t.Errorf("weights: got %d, want %d", l.WeightCount, tc.weights)
			}
			if l.NodesOffset != tc.firstNode {
				t.Errorf("first node: got %d, want %d", l.NodesOffset, tc.firstNode)
			}
		})
	}

	if p.Total != 440 {
		t.Errorf("total: got %d, want 440", p.Total)
	}
	if p.NodeCount() != 9 {
		t.Errorf("node count: got %d, want 9", p.NodeCount())
	}
}

func TestNewPlan_LayersAreContiguous(t *testing.T) {
	p, err := NewPlan(5, 7, 3)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	if p.Layers[Input].Offset != p.HeaderSize {
		t.Errorf("input layer does not follow header")
	}
	if p.Layers[Hidden].Offset != p.Layers[Input].End() {
		t.Errorf("hidden layer does not follow input layer")
	}
	if p.Layers[Output].Offset != p.Layers[Hidden].End() {
		t.Errorf("output layer does not follow hidden layer")
	}
	if p.Layers[Output].End() != p.Total {
		t.Errorf("output layer does not end the buffer")
	}
	for _, l := range p.Layers {
		if l.Offset%8 != 0 || l.NodeSize%8 != 0 {
			t.Errorf("%s: misaligned offset %d stride %d", l.Kind, l.Offset, l.NodeSize)
		}
	}
}

func TestNewPlan_Minimal(t *testing.T) {
	p, err := NewPlan(1, 1, 1)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	if p.Layers[Hidden].WeightCount != 1 || p.Layers[Output].WeightCount != 1 {
		t.Errorf("got fan-in %d/%d, want 1/1", p.Layers[Hidden].WeightCount, p.Layers[Output].WeightCount)
	}
	for _, l := range p.Layers {
		if l.NodeCount != 1 {
			t.Errorf("%s: got %d nodes, want 1", l.Kind, l.NodeCount)
		}
	}
}

func TestNewPlan_Rejects(t *testing.T) {
	tests := []struct {
		name                    string
		inputs, hidden, outputs int
		kind                    errors.Kind
	}{
		{"zero inputs", 0, 4, 2, errors.KindInvalidTopology},
		{"zero hidden", 3, 0, 2, errors.KindInvalidTopology},
		{"negative outputs", 3, 4, -1, errors.KindInvalidTopology},
		{"node size overflow", 1, math.MaxUint32 / 8, 1, errors.KindOverflow},
		{"layer size overflow", 1 << 20, 1 << 20, 1, errors.KindOverflow},
		{"beyond max alloc", 1 << 14, 1 << 13, 1, errors.KindAllocation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPlan(tc.inputs, tc.hidden, tc.outputs)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.HasKind(err, tc.kind) {
				t.Errorf("got %v, want kind %s", err, tc.kind)
			}
		})
	}
}

func TestLayerPlan_NodeOffset(t *testing.T) {
	p, err := NewPlan(3, 4, 2)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	hidden := p.Layers[Hidden]

	for i := 0; i < 4; i++ {
		off, ok := hidden.NodeOffset(i)
		if !ok {
			t.Fatalf("node %d: unexpected bounds failure", i)
		}
		if want := hidden.NodesOffset + uint32(i)*hidden.NodeSize; off != want {
			t.Errorf("node %d: got %d, want %d", i, off, want)
		}
	}

	for _, bad := range []int{-1, 4, 100} {
		if _, ok := hidden.NodeOffset(bad); ok {
			t.Errorf("node %d: expected bounds failure", bad)
		}
	}
}

func TestLayerPlan_WeightOffset(t *testing.T) {
	p, err := NewPlan(3, 4, 2)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	out := p.Layers[Output]
	node, _ := out.NodeOffset(1)

	off, ok := out.WeightOffset(node, 3)
	if !ok {
		t.Fatal("weight 3: unexpected bounds failure")
	}
	if want := node + 24 + 3*8; off != want {
		t.Errorf("got %d, want %d", off, want)
	}
	if off+8 > out.End() {
		t.Errorf("last weight %d runs past layer end %d", off, out.End())
	}

	if _, ok := out.WeightOffset(node, 4); ok {
		t.Error("weight 4: expected bounds failure")
	}
	if _, ok := p.Layers[Input].WeightOffset(p.Layers[Input].NodesOffset, 0); ok {
		t.Error("input weight 0: expected bounds failure")
	}
}

func TestPlan_UnknownLayer(t *testing.T) {
	p, err := NewPlan(1, 1, 1)
	if err != nil {
		t.Fatalf("NewPlan: %v", err)
	}
	if _, ok := p.Layer(Kind(3)); ok {
		t.Error("expected unknown layer to be rejected")
	}
	if Kind(7).String() != "layer(7)" {
		t.Errorf("got %q", Kind(7).String())
	}
}
