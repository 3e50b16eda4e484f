// Package trainer runs repeated online training passes over a fixed set of examples.
package trainer

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/kkoreilly/resbp"
)

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	Epochs   int
	LogEvery int
}

// Run trains net on examples, in order, once per epoch, and returns the mean squared error of the last epoch.
// The context is only checked between epochs; an epoch that has started always runs to completion.
func Run(ctx context.Context, net *resbp.Network, examples []resbp.Example, cfg RunConfig) (float32, error) {
	if cfg.Epochs <= 0 {
		return 0, errors.New("trainer: epochs must be > 0")
	}
	if len(examples) == 0 {
		return 0, errors.New("trainer: no examples")
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = 1
	}

	var mse float32
	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return mse, errors.Wrapf(err, "trainer: stopped before epoch %d", epoch)
		}
		start := time.Now()
		mse = Epoch(net, examples)
		if epoch%cfg.LogEvery == 0 || epoch == cfg.Epochs {
			elapsed := time.Since(start)
			log.Printf("epoch=%d examples=%d mse=%.6f epoch_ms=%.3f",
				epoch,
				len(examples),
				mse,
				elapsed.Seconds()*1000,
			)
		}
	}
	return mse, nil
}

// Epoch trains net once on each of the examples in order and returns the mean squared error of the predictions made before each update.
func Epoch(net *resbp.Network, examples []resbp.Example) float32 {
	if len(examples) == 0 {
		return 0
	}
	var sse float32
	for _, ex := range examples {
		sse += net.TrainExample(ex)
	}
	return sse / float32(len(examples))
}
