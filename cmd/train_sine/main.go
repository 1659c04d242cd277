package main

import "flag"
import "fmt"
import "math/rand"

import "github.com/klauspost/cpuid/v2"
import "go.uber.org/zap"

import "github.com/neurlang/backprop/datasets/sine"
import "github.com/neurlang/backprop/hash"
import "github.com/neurlang/backprop/layer/full"
import "github.com/neurlang/backprop/learning"
import "github.com/neurlang/backprop/net/feedforward"
import "github.com/neurlang/backprop/trainer"

func main() {
	layers := flag.Int("layers", 1, "number of hidden layers")
	nodes := flag.Int("nodes", 20, "nodes in each hidden layer")
	samples := flag.Int("samples", 100, "training and test points")
	rate := flag.Float64("rate", 0.25, "learning rate")
	iterations := flag.Int("iterations", 100000, "examples to train on")
	flag.Parse()

	h, err := learning.Load()
	if err != nil {
		panic(err.Error())
	}
	h.LearningRate = *rate
	h.MaxIterations = *iterations

	logger, err := h.Logger()
	if err != nil {
		panic(err.Error())
	}
	defer logger.Sync()

	logger.Info("cpu",
		zap.String("brand", cpuid.CPU.BrandName),
		zap.Int("cores", cpuid.CPU.PhysicalCores),
		zap.Int("threads", cpuid.CPU.LogicalCores))

	var points = rand.New(rand.NewSource(int64(h.Seed)))
	var training = sine.Sample(points, *samples)
	var test = sine.Sample(points, *samples)

	net := feedforward.New(feedforward.WithWeights(hash.NewSequence(h.Seed)), feedforward.WithLogger(logger))
	if err := full.NewNetwork(net, 1, *layers, *nodes); err != nil {
		logger.Fatal("bad topology", zap.Error(err))
	}

	if _, err := trainer.NewLoopFunc(net, training, h, logger)(); err != nil {
		logger.Fatal("training failed", zap.Error(err))
	}

	avg, err := trainer.MeanAbsoluteError(net, test)
	if err != nil {
		logger.Fatal("evaluation failed", zap.Error(err))
	}
	fmt.Printf("Avg error: %.4f\n", avg)
}
