package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/kkoreilly/resbp"
	"github.com/kkoreilly/resbp/internal/config"
	"github.com/kkoreilly/resbp/internal/dataset"
	"github.com/kkoreilly/resbp/internal/trainer"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (defaults are used when empty)")
	data := flag.String("data", "", "Override the JSON examples file")
	inputSize := flag.Int("input-size", 0, "Number of input feature slots")
	hiddenSize := flag.Int("hidden-size", 0, "Number of hidden units")
	epochs := flag.Int("epochs", 0, "Number of passes over the examples")
	seed := flag.Uint64("seed", 0, "PRNG seed for the initial weights")
	logEvery := flag.Int("log-every", 0, "Log every N epochs")
	predict := flag.String("predict", "", "Comma separated target resources to rate after training")

	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	cfg.ApplyOverrides(config.Overrides{
		InputSize:  *inputSize,
		HiddenSize: *hiddenSize,
		Seed:       *seed,
		SeedSet:    isFlagSet(flag.CommandLine, "seed"),
		Epochs:     *epochs,
		Data:       *data,
		LogEvery:   *logEvery,
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	targets, err := parseTargets(*predict)
	if err != nil {
		log.Fatalf("invalid -predict: %v", err)
	}

	examples, err := dataset.Load(cfg.Data)
	if err != nil {
		log.Fatalf("failed to load examples: %v", err)
	}
	log.Printf("data=%s examples=%d input_size=%d hidden_size=%d seed=%d", cfg.Data, len(examples), cfg.InputSize, cfg.HiddenSize, cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	net := resbp.NewNetworkSeed(cfg.InputSize, cfg.HiddenSize, cfg.Seed)
	runCfg := trainer.RunConfig{
		Epochs:   cfg.Epochs,
		LogEvery: cfg.LogEvery,
	}
	if _, err := trainer.Run(ctx, net, examples, runCfg); err != nil {
		log.Fatalf("training failed: %v", err)
	}

	for _, target := range targets {
		fmt.Printf("%g\t%.6f\n", target, net.Predict(target))
	}
}

// isFlagSet returns whether the flag with the given name was given on the command line
func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// parseTargets parses a comma separated list of target resources
func parseTargets(s string) ([]float32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	targets := make([]float32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, err
		}
		targets[i] = float32(v)
	}
	return targets, nil
}
