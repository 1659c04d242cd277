// Package sine provides samples of 0.5 * (1 + sin x) over two periods, a one
// input regression task for networks with a wide hidden layer.
package sine
