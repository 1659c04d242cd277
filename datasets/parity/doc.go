// Package parity provides the eight three bit numbers labeled by whether they
// are even. Only the last bit decides the label, which a single hidden layer
// learns quickly.
package parity
