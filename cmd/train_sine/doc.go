// Package main trains a network with one input to approximate
// 0.5 * (1 + sin x) on two periods, then reports the average error on points
// it was not trained on.
//
// The topology, learning rate and iteration budget come from flags; the
// remaining hyperparameters from BACKPROP_* environment variables, see
// package learning.
package main
