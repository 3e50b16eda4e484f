package resbp

import (
	"math"

	"github.com/pkg/errors"
)

// Validate returns an error if the example has a non-finite value or a rating outside of [0, RatingScale].
// Train does not call it; it is meant for callers that want to reject bad examples before training on them.
func (ex Example) Validate() error {
	if !finite(ex.TargetResource) {
		return errors.Errorf("target resource %g is not finite", ex.TargetResource)
	}
	for j, x := range ex.CollectedResources {
		if !finite(x) {
			return errors.Errorf("collected resource %d (%g) is not finite", j, x)
		}
	}
	if !finite(ex.UserRating) || ex.UserRating < 0 || ex.UserRating > RatingScale {
		return errors.Errorf("user rating %g is outside of [0, %d]", ex.UserRating, RatingScale)
	}
	return nil
}

// ValidateExamples validates each of the given examples and returns an error for the first invalid one
func ValidateExamples(examples []Example) error {
	for i, ex := range examples {
		if err := ex.Validate(); err != nil {
			return errors.Wrapf(err, "example %d", i)
		}
	}
	return nil
}

func finite(x float32) bool {
	f := float64(x)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
