package resbp

import "github.com/goki/mat32"

// LogisticFunc returns the value of the standard logistic / Sigmoid activation function at the given point (1 / (1 + e^-x))
func LogisticFunc(x float32) float32 {
	return 1 / (1 + mat32.Exp(-x))
}

// LogisticActDerivative returns the derivative of the logistic activation function,
// expressed in terms of the activation value it produced (act * (1 - act)) instead of the net input
func LogisticActDerivative(act float32) float32 {
	return act * (1 - act)
}
