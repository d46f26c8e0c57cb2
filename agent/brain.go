package agent

import (
	"checkers/game"

	"github.com/patrikeh/go-deep"
	"golang.org/x/exp/rand"
)

const (
	maxWeight = 10.0 // Weights are kept within ±maxWeight
	maxDelta  = 3.0  // Largest change a single mutation applies
)

// DefaultHidden is the hidden layout used when none is given.
var DefaultHidden = []int{100, 24}

// Brain is a feed-forward network evaluator with a single output.
// A Brain is not safe for concurrent use.
type Brain struct {
	net    *deep.Neural
	layout []int // Neurons per layer, output layer included
	rng    *rand.Rand
}

// NewBrain returns a randomly initialised Brain with the given hidden layers.
func NewBrain(hidden ...int) *Brain {
	if len(hidden) == 0 {
		hidden = DefaultHidden
	}
	layout := make([]int, 0, len(hidden)+1)
	layout = append(layout, hidden...)
	layout = append(layout, 1)
	return newBrain(layout)
}

func newBrain(layout []int) *Brain {
	net := deep.NewNeural(&deep.Config{
		Inputs:     Inputs,
		Layout:     layout,
		Activation: deep.ActivationSigmoid,
		Mode:       deep.ModeDefault,
		Weight:     deep.NewUniform(2*maxWeight, 0.0),
		Bias:       false,
	})
	return &Brain{
		net:    net,
		layout: layout,
		rng:    rand.New(rand.NewSource(rand.Uint64())),
	}
}

func (b *Brain) Encode(board game.Board) []float64 {
	return Encode(board)
}

func (b *Brain) Evaluate(input []float64) float64 {
	return b.net.Predict(input)[0]
}

// Mutate perturbs each weight with probability rate/1000 by a uniform delta in
// ±maxDelta, clamping the result to ±maxWeight.
func (b *Brain) Mutate(rate int) {
	if rate <= 0 {
		return
	}
	weights := b.Weights()
	for _, neurons := range weights {
		for _, in := range neurons {
			for i := range in {
				if b.rng.Intn(1000) >= rate {
					continue
				}
				w := in[i] + (b.rng.Float64()*2-1)*maxDelta
				in[i] = min(max(w, -maxWeight), maxWeight)
			}
		}
	}
	b.net.ApplyWeights(weights)
}

func (b *Brain) Clone() Evaluator {
	clone := newBrain(b.Layout())
	clone.net.ApplyWeights(b.Weights())
	return clone
}

// Weights returns a copy of the weights indexed by layer, neuron and input.
func (b *Brain) Weights() [][][]float64 {
	return b.net.Dump().Weights
}

// Layout returns the neurons per layer, output layer included.
func (b *Brain) Layout() []int {
	layout := make([]int, len(b.layout))
	copy(layout, b.layout)
	return layout
}
