package resbp

import (
	"math/rand"
	"testing"
)

// countingSource is a RandSource that always returns val and counts how many times it has been called
type countingSource struct {
	val   float32
	draws int
}

func (c *countingSource) Float32() float32 {
	c.draws++
	return c.val
}

// constNetwork returns a network with every weight and bias set to v
func constNetwork(inputSize, hiddenSize int, v float32) *Network {
	n := &Network{
		InputSize:           inputSize,
		HiddenSize:          hiddenSize,
		WeightsInputHidden:  make([]float32, inputSize*hiddenSize),
		WeightsHiddenOutput: make([]float32, hiddenSize),
		HiddenBiases:        make([]float32, hiddenSize),
		OutputBias:          v,
	}
	for _, s := range [][]float32{n.WeightsInputHidden, n.WeightsHiddenOutput, n.HiddenBiases} {
		for i := range s {
			s[i] = v
		}
	}
	return n
}

func TestNewNetwork(t *testing.T) {
	src := &countingSource{val: 0.75}
	n := NewNetwork(4, 6, src)

	if len(n.WeightsInputHidden) != 24 || len(n.WeightsHiddenOutput) != 6 || len(n.HiddenBiases) != 6 {
		t.Fatalf("error: wrong parameter sizes: %d, %d, %d", len(n.WeightsInputHidden), len(n.WeightsHiddenOutput), len(n.HiddenBiases))
	}
	// one draw for each weight and bias: 4*6 + 6 + 6 + 1
	if src.draws != 37 || n.NumParams() != 37 {
		t.Errorf("error: expected 37 draws and params, but got %d draws and %d params", src.draws, n.NumParams())
	}
	// 0.75 maps to 2*0.75-1 = 0.5
	for _, s := range [][]float32{n.WeightsInputHidden, n.WeightsHiddenOutput, n.HiddenBiases, {n.OutputBias}} {
		for i, w := range s {
			if w != 0.5 {
				t.Errorf("error: expected parameter %d to be 0.5, but got %g", i, w)
			}
		}
	}
}

func TestNewNetworkRange(t *testing.T) {
	n := NewNetwork(DefaultInputSize, DefaultHiddenSize, rand.New(rand.NewSource(3)))
	for _, s := range [][]float32{n.WeightsInputHidden, n.WeightsHiddenOutput, n.HiddenBiases, {n.OutputBias}} {
		for i, w := range s {
			if w < -1 || w > 1 {
				t.Errorf("error: parameter %d is %g, which is outside of [-1, 1]", i, w)
			}
		}
	}
}

func TestNewNetworkSeed(t *testing.T) {
	a := NewNetworkSeed(3, 5, 42)
	b := NewNetworkSeed(3, 5, 42)
	c := NewNetworkSeed(3, 5, 43)

	same := true
	for i := range a.WeightsInputHidden {
		if a.WeightsInputHidden[i] != b.WeightsInputHidden[i] {
			t.Errorf("error: same seed gave different weight at index %d: %g != %g", i, a.WeightsInputHidden[i], b.WeightsInputHidden[i])
		}
		if a.WeightsInputHidden[i] != c.WeightsInputHidden[i] {
			same = false
		}
	}
	if a.OutputBias != b.OutputBias {
		t.Errorf("error: same seed gave different output bias: %g != %g", a.OutputBias, b.OutputBias)
	}
	if same {
		t.Errorf("error: different seeds gave the same weights %v", a.WeightsInputHidden)
	}
}

func TestWeightIndex(t *testing.T) {
	n := NewNetworkSeed(9, 6, 1)

	// how many times each index has occurred
	indexMap := map[int]int{}
	for feature := 0; feature < n.InputSize; feature++ {
		for unit := 0; unit < n.HiddenSize; unit++ {
			indexMap[n.WeightIndex(feature, unit)]++
		}
	}

	for i := 0; i < len(n.WeightsInputHidden); i++ {
		// each index should only occur once
		if indexMap[i] != 1 {
			t.Errorf("error: weight index %d occurs %d times, when it should occur 1 time", i, indexMap[i])
		}
	}
	if len(indexMap) != len(n.WeightsInputHidden) {
		t.Errorf("error: %d distinct indices for %d weights", len(indexMap), len(n.WeightsInputHidden))
	}
}

// defTol is a good default tolerance for how much two values can differ to be used with the aboutEqual function
const defTol = 1e-4

// aboutEqual returns whether x is about equal to y with the given tolerance
func aboutEqual(x, y, tol float32) bool {
	diff := x - y
	if diff < 0 {
		diff = -diff
	}
	return diff < tol
}
