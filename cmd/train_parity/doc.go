// Package main trains a network with three inputs, one hidden layer of three
// nodes and one output to tell even three bit numbers from odd ones, then
// prints the error on each number.
//
// Hyperparameters are read from BACKPROP_* environment variables, see
// package learning.
package main
