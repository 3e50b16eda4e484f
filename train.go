package resbp

const (
	// LearningRate is the rate at which the network learns from each example
	LearningRate = 0.1
	// RatingScale is the largest expected user rating; ratings are divided by it to get the output target
	RatingScale = 10
)

// Example is one labeled training example
type Example struct {
	TargetResource     float32   // the resource being rated
	CollectedResources []float32 // the resources that make up the context of the rating, in order
	UserRating         float32   // the rating the user gave, expected to be in [0, RatingScale]
}

// Target returns the output target for the example (the user rating divided by RatingScale).
// Ratings outside of [0, RatingScale] are not clamped.
func (ex Example) Target() float32 {
	return ex.UserRating / RatingScale
}

// Train trains the network on each of the given examples in order, one example at a time
func (n *Network) Train(examples []Example) {
	hidden := make([]float32, n.HiddenSize)
	for _, ex := range examples {
		n.trainExample(ex, hidden)
	}
}

// TrainExample trains the network on the given example and returns the squared error of the prediction made before the update
func (n *Network) TrainExample(ex Example) float32 {
	return n.trainExample(ex, make([]float32, n.HiddenSize))
}

// trainExample does one forward, backward, and update cycle for ex, using hidden as the buffer for the hidden activations
func (n *Network) trainExample(ex Example, hidden []float32) float32 {
	target := ex.Target()
	pred := n.Forward(Features(ex.CollectedResources, ex.TargetResource), hidden)

	err := target - pred
	delOut := err * LogisticActDerivative(pred)

	// output layer first
	for i, act := range hidden {
		n.WeightsHiddenOutput[i] += LearningRate * delOut * act
	}
	n.OutputBias += LearningRate * delOut

	// the hidden deltas are computed from the output weights that were just updated above
	nw := len(n.WeightsInputHidden)
	for i, act := range hidden {
		delHid := LogisticActDerivative(act) * n.WeightsHiddenOutput[i] * delOut
		for j, x := range ex.CollectedResources {
			wi := n.WeightIndex(j, i)
			if wi >= nw {
				break
			}
			n.WeightsInputHidden[wi] += LearningRate * delHid * x
		}
		if wi := n.WeightIndex(len(ex.CollectedResources), i); wi < nw {
			n.WeightsInputHidden[wi] += LearningRate * delHid * ex.TargetResource
		}
		// scaled by the target, not by 1
		n.HiddenBiases[i] += LearningRate * delHid * target
	}
	return err * err
}
