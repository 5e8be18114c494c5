package agent

import (
	"github.com/lixantech/leadgate/pkg/logger"
)

// Option applies a configuration option to the Agent.
type Option func(*Agent)

// WithMaxTurns bounds how many recent transcript turns reach the model.
func WithMaxTurns(maxTurns int) Option {
	return func(a *Agent) {
		if maxTurns > 0 {
			a.maxTurns = maxTurns
		}
	}
}

// WithTemperature sets the sampling temperature for completions.
func WithTemperature(temperature float32) Option {
	return func(a *Agent) {
		if temperature > 0 {
			a.temperature = temperature
		}
	}
}

// WithLogger sets a custom logger for the agent.
func WithLogger(l logger.Logger) Option {
	return func(a *Agent) {
		if l != nil {
			a.logger = l
		}
	}
}
