package network

import (
	"math"

	"go.uber.org/zap"

	"github.com/wippyai/ffnet"
	"github.com/wippyai/ffnet/errors"
	"github.com/wippyai/ffnet/memory"
	"github.com/wippyai/ffnet/random"
)

// DefaultLearningRate is stored when Config.LearningRate is 0.
const DefaultLearningRate = 0.1

// Config holds configuration for network creation
type Config struct {
	// Allocator provides the single region. nil means memory.NewHeap().
	Allocator ffnet.Allocator

	// Source draws the initial weights and biases. nil means
	// random.NewInsecure(), which is not reproducible.
	Source random.Source

	// Logger overrides the package logger for this network.
	Logger *zap.Logger

	// HiddenActivation and OutputActivation default to Sigmoid.
	HiddenActivation Activation
	OutputActivation Activation

	// LearningRate is stored in the header. 0 means DefaultLearningRate, so
	// a rate of exactly 0 cannot be stored.
	LearningRate float64
}

func (c *Config) withDefaults() (Config, error) {
	var cfg Config
	if c != nil {
		cfg = *c
	}

	if cfg.Allocator == nil {
		cfg.Allocator = memory.NewHeap()
	}
	if cfg.Source == nil {
		cfg.Source = random.NewInsecure()
	}
	if cfg.Logger == nil {
		cfg.Logger = Logger()
	}
	if cfg.LearningRate == 0 {
		cfg.LearningRate = DefaultLearningRate
	}

	if !cfg.HiddenActivation.Valid() {
		return Config{}, errors.InvalidEnum(errors.PhaseValidate, []string{"config", "hidden-activation"},
			uint8(cfg.HiddenActivation), "activation")
	}
	if !cfg.OutputActivation.Valid() {
		return Config{}, errors.InvalidEnum(errors.PhaseValidate, []string{"config", "output-activation"},
			uint8(cfg.OutputActivation), "activation")
	}
	if cfg.LearningRate < 0 || math.IsNaN(cfg.LearningRate) || math.IsInf(cfg.LearningRate, 0) {
		return Config{}, errors.New(errors.PhaseValidate, errors.KindInvalidInput).
			Path("config", "learning-rate").
			Value(cfg.LearningRate).
			Detail("learning rate must be a finite non-negative number").
			Build()
	}

	return cfg, nil
}
