// Package resbp implements a single hidden layer neural network that rates resources,
// trained online with backpropagation in Go
package resbp

import "golang.org/x/exp/rand"

const (
	// DefaultInputSize is the number of input feature slots used when none is configured
	DefaultInputSize = 3
	// DefaultHiddenSize is the number of hidden units used when none is configured
	DefaultHiddenSize = 5
)

// Network is a neural network with one hidden layer and a single logistic output.
// It has no internal locking: a Network must not be trained while it is being used for
// prediction or trained somewhere else at the same time.
type Network struct {
	InputSize           int       // the number of input feature slots
	HiddenSize          int       // the number of hidden units
	WeightsInputHidden  []float32 // the weights connecting the input slots to the hidden units, indexed by WeightIndex
	WeightsHiddenOutput []float32 // the weights connecting each hidden unit to the output
	HiddenBiases        []float32 // the bias of each hidden unit
	OutputBias          float32   // the bias of the output
}

// RandSource is a source of uniformly distributed random values in [0, 1).
// *rand.Rand from both math/rand and golang.org/x/exp/rand satisfy it.
type RandSource interface {
	Float32() float32
}

// NewNetwork creates and returns a new network with the given number of input slots and hidden units.
// Every weight and bias is drawn independently from a uniform distribution over [-1, 1] using rnd,
// in the order input-hidden weights, hidden-output weights, hidden biases, output bias.
func NewNetwork(inputSize, hiddenSize int, rnd RandSource) *Network {
	n := &Network{
		InputSize:  inputSize,
		HiddenSize: hiddenSize,
		// each input slot connects to each hidden unit
		WeightsInputHidden:  make([]float32, inputSize*hiddenSize),
		WeightsHiddenOutput: make([]float32, hiddenSize),
		HiddenBiases:        make([]float32, hiddenSize),
	}
	uniform := func() float32 {
		return 2*rnd.Float32() - 1
	}
	for i := range n.WeightsInputHidden {
		n.WeightsInputHidden[i] = uniform()
	}
	for i := range n.WeightsHiddenOutput {
		n.WeightsHiddenOutput[i] = uniform()
	}
	for i := range n.HiddenBiases {
		n.HiddenBiases[i] = uniform()
	}
	n.OutputBias = uniform()
	return n
}

// NewNetworkSeed is like NewNetwork, but draws the initial parameters from a PCG generator seeded with seed,
// so that the same seed always produces the same network
func NewNetworkSeed(inputSize, hiddenSize int, seed uint64) *Network {
	return NewNetwork(inputSize, hiddenSize, rand.New(rand.NewSource(seed)))
}

// WeightIndex returns the index in WeightsInputHidden of the weight from the given input slot (feature) to the given hidden unit (unit)
func (n *Network) WeightIndex(feature, unit int) int {
	// we offset by feature multiplied by HiddenSize, and then we get to final position with unit
	// (like base 10 and multiplying by 10 to change effect of digit, except with base HiddenSize)
	return feature*n.HiddenSize + unit
}

// NumParams returns the total number of weights and biases in the network
func (n *Network) NumParams() int {
	return len(n.WeightsInputHidden) + len(n.WeightsHiddenOutput) + len(n.HiddenBiases) + 1
}
