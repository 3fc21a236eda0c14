package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gonum.org/v1/gonum/mat"

	"github.com/wippyai/ffnet"
	"github.com/wippyai/ffnet/memory"
	"github.com/wippyai/ffnet/network"
	"github.com/wippyai/ffnet/random"
)

type options struct {
	inputs, hidden, outputs int
	hiddenAct, outputAct    string
	learningRate            float64
	seed                    uint64
	source                  string
	backend                 string
	weights                 bool
	verbose                 bool
}

func main() {
	var (
		opts        options
		interactive bool
	)
	flag.IntVar(&opts.inputs, "inputs", 3, "Input layer node count")
	flag.IntVar(&opts.hidden, "hidden", 4, "Hidden layer node count")
	flag.IntVar(&opts.outputs, "outputs", 2, "Output layer node count")
	flag.StringVar(&opts.hiddenAct, "hidden-act", "sigmoid", "Hidden layer activation (sigmoid, tanh, relu)")
	flag.StringVar(&opts.outputAct, "output-act", "sigmoid", "Output layer activation (sigmoid, tanh, relu)")
	flag.Float64Var(&opts.learningRate, "lr", network.DefaultLearningRate, "Learning rate stored in the header (0 stores the default 0.1)")
	flag.Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible weights (implies -source seeded)")
	flag.StringVar(&opts.source, "source", "", "Weight source (insecure, seeded, secure); empty picks seeded when -seed is set")
	flag.StringVar(&opts.backend, "backend", "heap", "Buffer backend (heap, wazero)")
	flag.BoolVar(&opts.weights, "weights", false, "Print weight matrices and bias vectors")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	flag.BoolVar(&interactive, "i", false, "Interactive mode with TUI")
	flag.Parse()

	if opts.verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()
		network.SetLogger(log)
		memory.SetLogger(log)
	}

	ctx := context.Background()
	net, err := build(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer net.Close(ctx)

	if interactive {
		err = runInteractive(net)
	} else {
		err = report(os.Stdout, net, opts.weights, term.IsTerminal(int(os.Stdout.Fd())))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func build(ctx context.Context, opts options) (*network.Network, error) {
	hiddenAct, err := network.ParseActivation(opts.hiddenAct)
	if err != nil {
		return nil, fmt.Errorf("hidden-act: %w", err)
	}
	outputAct, err := network.ParseActivation(opts.outputAct)
	if err != nil {
		return nil, fmt.Errorf("output-act: %w", err)
	}

	var alloc ffnet.Allocator
	switch opts.backend {
	case "heap":
		alloc = memory.NewHeap()
	case "wazero":
		alloc = memory.NewWazero()
	default:
		return nil, fmt.Errorf("unknown backend %q", opts.backend)
	}

	src, err := source(opts.source, opts.seed)
	if err != nil {
		return nil, err
	}

	cfg := &network.Config{
		Allocator:        alloc,
		Source:           src,
		HiddenActivation: hiddenAct,
		OutputActivation: outputAct,
		LearningRate:     opts.learningRate,
	}
	return network.NewWithConfig(ctx, opts.inputs, opts.hidden, opts.outputs, cfg)
}

func source(name string, seed uint64) (random.Source, error) {
	if name == "" {
		name = "insecure"
		if seed != 0 {
			name = "seeded"
		}
	}
	switch name {
	case "insecure":
		return random.NewInsecure(), nil
	case "seeded":
		return random.NewSeeded(seed), nil
	case "secure":
		return random.NewSecure(), nil
	default:
		return nil, fmt.Errorf("unknown source %q", name)
	}
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
)

func report(w io.Writer, net *network.Network, weights, color bool) error {
	heading := func(s string) string {
		if color {
			return headingStyle.Render(s)
		}
		return s
	}
	label := func(s string) string {
		if color {
			return labelStyle.Render(s)
		}
		return s
	}

	h, err := net.Header()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s (%d bytes, %d nodes)\n\n", heading("Network"), net.Topology(), net.Size(), net.NodeCount())
	fmt.Fprintln(w, heading("Header"))
	fmt.Fprintf(w, "  %s %d / %d\n", label("input  node/layer size:"), h.InputNodeSize, h.InputLayerSize)
	fmt.Fprintf(w, "  %s %d / %d\n", label("hidden node/layer size:"), h.HiddenNodeSize, h.HiddenLayerSize)
	fmt.Fprintf(w, "  %s %d / %d\n", label("output node/layer size:"), h.OutputNodeSize, h.OutputLayerSize)
	fmt.Fprintf(w, "  %s %s / %s\n", label("activations:"), h.HiddenActivation, h.OutputActivation)
	fmt.Fprintf(w, "  %s %g\n\n", label("learning rate:"), h.LearningRate)

	fmt.Fprintln(w, heading("Layers"))
	fmt.Fprintf(w, "  %-7s %8s %8s %8s %6s %8s\n", "layer", "offset", "size", "stride", "nodes", "weights")
	for _, t := range network.LayerTypes {
		l, err := net.Layer(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-7s %8d %8d %8d %6d %8d\n",
			t, l.Offset(), l.Size(), l.Stride(), l.NodeCount(), l.WeightCount())
	}

	if !weights {
		return nil
	}
	for _, t := range []network.LayerType{network.Hidden, network.Output} {
		m, err := net.WeightMatrix(t)
		if err != nil {
			return err
		}
		b, err := net.BiasVector(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s\n", heading(strings.ToUpper(t.String()[:1])+t.String()[1:]+" weights"))
		fmt.Fprintf(w, "%v\n", mat.Formatted(m, mat.Prefix(""), mat.Squeeze()))
		fmt.Fprintf(w, "%s\n%v\n", label("bias"), mat.Formatted(b.T(), mat.Squeeze()))
	}
	return nil
}
