// Package dataset reads rated resource examples from JSON files.
package dataset

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/kkoreilly/resbp"
)

// ExampleJSON is the on-disk form of one training example.
type ExampleJSON struct {
	TargetResource     float32   `json:"target_resource"`
	CollectedResources []float32 `json:"collected_resources"`
	UserRating         float32   `json:"user_rating"`
}

// File is the on-disk form of a set of training examples.
type File struct {
	Examples []ExampleJSON `json:"examples"`
}

// Load reads and validates the examples in the JSON file at path.
func Load(path string) ([]resbp.Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer f.Close()

	exs, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return exs, nil
}

// Decode reads and validates the examples in a JSON document from r.
func Decode(r io.Reader) ([]resbp.Example, error) {
	var file File
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decode dataset")
	}
	exs := make([]resbp.Example, len(file.Examples))
	for i, ej := range file.Examples {
		exs[i] = resbp.Example{
			TargetResource:     ej.TargetResource,
			CollectedResources: ej.CollectedResources,
			UserRating:         ej.UserRating,
		}
	}
	if err := resbp.ValidateExamples(exs); err != nil {
		return nil, err
	}
	return exs, nil
}
