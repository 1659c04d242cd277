// Package trainer provides high-level training orchestration for feedforward
// networks. It measures a network against a dataset and drives training in
// rounds, logging progress and stopping once the error is low enough.
package trainer
