package provisioning

import "log"

// Observer receives progress output from the pipeline.
type Observer interface {
	Printf(format string, args ...interface{})
}

// ConsoleObserver writes progress to the standard logger.
type ConsoleObserver struct{}

// NewConsoleObserver returns an Observer backed by the standard logger.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{}
}

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

// NopObserver discards progress output. Used in tests.
type NopObserver struct{}

// Printf implements Observer.
func (NopObserver) Printf(string, ...interface{}) {}
