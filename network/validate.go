package network

import (
	"github.com/wippyai/ffnet/errors"
	"github.com/wippyai/ffnet/internal/layout"
)

// Header reads the header stored at the start of the region.
func (n *Network) Header() (Header, error) {
	mem, err := n.memory(errors.PhaseAccess)
	if err != nil {
		return Header{}, err
	}
	offs := layout.Headers().Network.FieldOffs

	var h Header
	sizes := []struct {
		field string
		dst   *uint32
	}{
		{layout.FieldInputNodeSize, &h.InputNodeSize},
		{layout.FieldInputLayerSize, &h.InputLayerSize},
		{layout.FieldHiddenNodeSize, &h.HiddenNodeSize},
		{layout.FieldHiddenLayerSize, &h.HiddenLayerSize},
		{layout.FieldOutputNodeSize, &h.OutputNodeSize},
		{layout.FieldOutputLayerSize, &h.OutputLayerSize},
	}
	for _, s := range sizes {
		v, err := mem.ReadU32(offs[s.field])
		if err != nil {
			return Header{}, accessErr(err, []string{"header", s.field}, "read header")
		}
		*s.dst = v
	}

	acts := []struct {
		field string
		dst   *Activation
	}{
		{layout.FieldHiddenActivation, &h.HiddenActivation},
		{layout.FieldOutputActivation, &h.OutputActivation},
	}
	for _, a := range acts {
		v, err := mem.ReadU8(offs[a.field])
		if err != nil {
			return Header{}, accessErr(err, []string{"header", a.field}, "read header")
		}
		if !Activation(v).Valid() {
			return Header{}, errors.InvalidEnum(errors.PhaseValidate, []string{"header", a.field}, v, "activation")
		}
		*a.dst = Activation(v)
	}

	lr, err := mem.ReadF64(offs[layout.FieldLearningRate])
	if err != nil {
		return Header{}, accessErr(err, []string{"header", layout.FieldLearningRate}, "read header")
	}
	h.LearningRate = lr

	return h, nil
}

// Validate checks the stored header sizes, layer node counts and node weight
// counts against the stride table.
func (n *Network) Validate() error {
	h, err := n.Header()
	if err != nil {
		return err
	}

	in, hid, out := n.plan.Layers[layout.Input], n.plan.Layers[layout.Hidden], n.plan.Layers[layout.Output]
	checks := []struct {
		field         string
		stored, table uint32
	}{
		{layout.FieldInputNodeSize, h.InputNodeSize, in.NodeSize},
		{layout.FieldInputLayerSize, h.InputLayerSize, in.Size},
		{layout.FieldHiddenNodeSize, h.HiddenNodeSize, hid.NodeSize},
		{layout.FieldHiddenLayerSize, h.HiddenLayerSize, hid.Size},
		{layout.FieldOutputNodeSize, h.OutputNodeSize, out.NodeSize},
		{layout.FieldOutputLayerSize, h.OutputLayerSize, out.Size},
	}
	for _, c := range checks {
		if c.stored != c.table {
			return errors.StrideMismatch([]string{"header"}, c.field, c.stored, c.table)
		}
	}

	for _, t := range LayerTypes {
		l, err := n.Layer(t)
		if err != nil {
			return err
		}
		count, err := l.StoredNodeCount()
		if err != nil {
			return err
		}
		if count != l.NodeCount() {
			return errors.StrideMismatch([]string{t.String()}, layout.FieldNodeCount,
				uint32(count), uint32(l.NodeCount()))
		}

		for i := 0; i < l.NodeCount(); i++ {
			node, err := l.Node(i)
			if err != nil {
				return err
			}
			w, err := node.StoredWeightCount()
			if err != nil {
				return err
			}
			if w != l.WeightCount() {
				return errors.StrideMismatch(node.path(), layout.FieldWeightCount,
					uint32(w), uint32(l.WeightCount()))
			}
		}
	}
	return nil
}
