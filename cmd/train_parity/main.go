package main

import "fmt"

import "github.com/klauspost/cpuid/v2"
import "go.uber.org/zap"

import "github.com/neurlang/backprop/datasets/parity"
import "github.com/neurlang/backprop/hash"
import "github.com/neurlang/backprop/layer/full"
import "github.com/neurlang/backprop/learning"
import "github.com/neurlang/backprop/net/feedforward"
import "github.com/neurlang/backprop/trainer"

func main() {
	h, err := learning.Load()
	if err != nil {
		panic(err.Error())
	}
	logger, err := h.Logger()
	if err != nil {
		panic(err.Error())
	}
	defer logger.Sync()

	logger.Info("cpu",
		zap.String("brand", cpuid.CPU.BrandName),
		zap.Int("cores", cpuid.CPU.PhysicalCores),
		zap.Int("threads", cpuid.CPU.LogicalCores))

	var dataset = parity.Dataset()

	net := feedforward.New(feedforward.WithWeights(hash.NewSequence(h.Seed)), feedforward.WithLogger(logger))
	full.MustNewNetwork(net, parity.Bits, 1, 3)

	if _, err := trainer.NewLoopFunc(net, dataset, h, logger)(); err != nil {
		logger.Fatal("training failed", zap.Error(err))
	}

	for _, ex := range dataset {
		y, err := net.Evaluate(ex.Input)
		if err != nil {
			logger.Fatal("evaluation failed", zap.Error(err))
		}
		fmt.Printf("Error for %v is %0.4f. Output was: %0.4f\n", ex.Input, ex.Label-y, y)
	}

	misclassified, err := trainer.MeanRoundedError(net, dataset)
	if err != nil {
		logger.Fatal("evaluation failed", zap.Error(err))
	}
	fmt.Printf("Misclassified: %0.4f\n", misclassified)
}
