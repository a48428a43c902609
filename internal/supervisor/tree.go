// Package supervisor runs the long-lived services of the server under a
// suture tree so that a crashed service is restarted with backoff.
package supervisor

import (
	"context"
	"time"

	"xgrowth-backend/internal/logger"

	"github.com/thejerf/suture/v4"
)

// TreeConfig tunes restart behaviour
type TreeConfig struct {
	FailureThreshold float64
	FailureDecay     float64
	FailureBackoff   time.Duration
	ShutdownTimeout  time.Duration
}

// DefaultTreeConfig returns the restart settings used by the server
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

// Tree is the root supervisor with one child each for the API and workers
type Tree struct {
	root    *suture.Supervisor
	api     *suture.Supervisor
	workers *suture.Supervisor
}

// NewTree builds the supervisor hierarchy. Zero config values take defaults.
func NewTree(config TreeConfig) *Tree {
	defaults := DefaultTreeConfig()
	if config.FailureThreshold == 0 {
		config.FailureThreshold = defaults.FailureThreshold
	}
	if config.FailureDecay == 0 {
		config.FailureDecay = defaults.FailureDecay
	}
	if config.FailureBackoff == 0 {
		config.FailureBackoff = defaults.FailureBackoff
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = defaults.ShutdownTimeout
	}

	spec := suture.Spec{
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}
	rootSpec := spec
	rootSpec.EventHook = EventHook

	t := &Tree{
		root:    suture.New("xgrowth", rootSpec),
		api:     suture.New("api", spec),
		workers: suture.New("workers", spec),
	}
	t.root.Add(t.api)
	t.root.Add(t.workers)
	return t
}

// AddAPIService supervises an API-facing service
func (t *Tree) AddAPIService(svc suture.Service) suture.ServiceToken {
	return t.api.Add(svc)
}

// AddWorker supervises a background worker
func (t *Tree) AddWorker(svc suture.Service) suture.ServiceToken {
	return t.workers.Add(svc)
}

// Serve blocks until ctx is cancelled or the tree terminates
func (t *Tree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground runs the tree in a goroutine
func (t *Tree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// EventHook forwards suture events to logrus
func EventHook(e suture.Event) {
	entry := logger.New().WithFields(e.Map())
	switch e.Type() {
	case suture.EventTypeServicePanic, suture.EventTypeServiceTerminate:
		entry.Error(e.String())
	case suture.EventTypeBackoff, suture.EventTypeStopTimeout:
		entry.Warn(e.String())
	default:
		entry.Info(e.String())
	}
}
