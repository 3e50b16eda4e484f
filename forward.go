package resbp

// Features returns the input encoding for the given context resources and target resource:
// slots 0 to len(collected)-1 hold the collected resources and the final slot holds the target resource.
// The result may be longer than InputSize; slots past it are ignored by Forward.
func Features(collected []float32, target float32) []float32 {
	features := make([]float32, len(collected)+1)
	copy(features, collected)
	features[len(collected)] = target
	return features
}

// Forward computes the forward propagation pass for the given input features and returns the output activation.
// The activation value of each hidden unit is stored in the first HiddenSize elements of hidden.
// Any weight index past the end of WeightsInputHidden contributes nothing to the net input.
// Forward does not modify the network.
func (n *Network) Forward(features, hidden []float32) float32 {
	hidden = hidden[:n.HiddenSize]
	nw := len(n.WeightsInputHidden)
	for i := 0; i < n.HiddenSize; i++ {
		net := n.HiddenBiases[i]
		for j, x := range features {
			wi := n.WeightIndex(j, i)
			if wi >= nw {
				// later input slots only have larger indices
				break
			}
			net += n.WeightsInputHidden[wi] * x
		}
		hidden[i] = LogisticFunc(net)
	}
	out := n.OutputBias
	for i, act := range hidden {
		out += n.WeightsHiddenOutput[i] * act
	}
	return LogisticFunc(out)
}

// Predict returns the rating in (0, 1) for the given target resource alone, with no context resources
func (n *Network) Predict(target float32) float32 {
	return n.Forward([]float32{target}, make([]float32, n.HiddenSize))
}

// PredictContext returns the rating in (0, 1) for the given target resource in the context of the given collected resources
func (n *Network) PredictContext(collected []float32, target float32) float32 {
	return n.Forward(Features(collected, target), make([]float32, n.HiddenSize))
}
