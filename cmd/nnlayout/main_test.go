package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/ffnet/network"
)

func testOptions() options {
	return options{
		inputs:       3,
		hidden:       4,
		outputs:      2,
		hiddenAct:    "sigmoid",
		outputAct:    "tanh",
		learningRate: 0.1,
		seed:         9,
		backend:      "heap",
	}
}

func TestBuild(t *testing.T) {
	ctx := context.Background()

	for _, backend := range []string{"heap", "wazero"} {
		opts := testOptions()
		opts.backend = backend
		net, err := build(ctx, opts)
		if err != nil {
			t.Fatalf("%s: build: %v", backend, err)
		}
		if net.OutputActivation() != network.Tanh {
			t.Errorf("%s: output activation = %v, want tanh", backend, net.OutputActivation())
		}
		if err := net.Close(ctx); err != nil {
			t.Errorf("%s: close: %v", backend, err)
		}
	}

	opts := testOptions()
	opts.backend = "mmap"
	if _, err := build(ctx, opts); err == nil {
		t.Error("expected error for unknown backend")
	}

	opts = testOptions()
	opts.source = "urandom"
	if _, err := build(ctx, opts); err == nil {
		t.Error("expected error for unknown source")
	}

	opts = testOptions()
	opts.hiddenAct = "softmax"
	if _, err := build(ctx, opts); err == nil {
		t.Error("expected error for unknown activation")
	}
}

func TestSource(t *testing.T) {
	tests := []struct {
		name string
		seed uint64
		want string
	}{
		{"", 0, "*random.Insecure"},
		{"", 7, "*random.Seeded"},
		{"insecure", 7, "*random.Insecure"},
		{"seeded", 0, "*random.Seeded"},
		{"secure", 0, "*random.Secure"},
	}
	for _, tt := range tests {
		src, err := source(tt.name, tt.seed)
		if err != nil {
			t.Fatalf("source(%q, %d): %v", tt.name, tt.seed, err)
		}
		if got := fmt.Sprintf("%T", src); got != tt.want {
			t.Errorf("source(%q, %d) = %s, want %s", tt.name, tt.seed, got, tt.want)
		}
	}

	ctx := context.Background()
	opts := testOptions()
	opts.seed = 0
	opts.source = "secure"
	net, err := build(ctx, opts)
	if err != nil {
		t.Fatalf("build with secure source: %v", err)
	}
	defer net.Close(ctx)
	if err := net.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestBuild_ZeroLearningRate(t *testing.T) {
	ctx := context.Background()
	opts := testOptions()
	opts.learningRate = 0
	net, err := build(ctx, opts)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer net.Close(ctx)
	if net.LearningRate() != network.DefaultLearningRate {
		t.Errorf("learning rate = %v, want default %v", net.LearningRate(), network.DefaultLearningRate)
	}
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	net, err := build(ctx, testOptions())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer net.Close(ctx)

	var buf bytes.Buffer
	if err := report(&buf, net, true, false); err != nil {
		t.Fatalf("report: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"3-4-2 (440 bytes, 9 nodes)",
		"sigmoid / tanh",
		"hidden       120      200       48      4        3",
		"Output weights",
		"bias",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestBrowserNavigation(t *testing.T) {
	ctx := context.Background()
	net, err := build(ctx, testOptions())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer net.Close(ctx)

	m := newBrowserModel(net)
	press := func(k tea.KeyType) {
		m.Update(tea.KeyMsg{Type: k})
	}

	press(tea.KeyDown)
	press(tea.KeyDown)
	if m.node != 2 {
		t.Errorf("node = %d, want 2", m.node)
	}

	press(tea.KeyRight)
	if network.LayerTypes[m.layer] != network.Output || m.node != 0 {
		t.Errorf("layer/node = %d/%d, want output/0", m.layer, m.node)
	}
	press(tea.KeyDown)
	press(tea.KeyDown)
	if m.node != 1 {
		t.Errorf("node = %d, want 1 (clamped)", m.node)
	}

	m.jumpTo("5")
	if m.err == nil {
		t.Error("expected out of range jump to fail")
	}
	m.jumpTo("0")
	if m.err != nil || m.node != 0 {
		t.Errorf("jump to 0: node %d err %v", m.node, m.err)
	}

	if !strings.Contains(m.View(), "node[1]") {
		t.Error("view should list output nodes")
	}
}
