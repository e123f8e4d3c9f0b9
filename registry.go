/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package pool

import (
	"reflect"

	"go.uber.org/zap"
)

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry: no initial counts, no depth reporters, depth reporting is off
func NewRegistry() *Registry {
	return &Registry{
		depthReporters: map[reflect.Type]DepthReporter{},
		logger:         zap.NewNop(),
	}
}

// DefaultRegistry returns the process-wide registry used by pools created without WithRegistry()
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// GetInitialCount returns the initial pool size configured for the message type
// false if not configured
func (r *Registry) GetInitialCount(msgType reflect.Type) (int, bool) {
	count, ok := r.initialCounts[msgType]
	return count, ok
}

// SetInitialCounts replaces all configured initial pool sizes at once
// should be called once before pools are created. Existing pools are not resized
func (r *Registry) SetInitialCounts(counts map[reflect.Type]int) {
	initialCounts := make(map[reflect.Type]int, len(counts))
	for msgType, count := range counts {
		initialCounts[msgType] = count
	}
	r.initialCounts = initialCounts
	r.logger.Debug("pool initial counts set", zap.Int("types", len(initialCounts)))
}

// BindDepthReporter binds the depth reporter to the message type replacing the previous one if any
// called automatically by NewPool() and NewSyncPool() if depth reporting is on
func (r *Registry) BindDepthReporter(msgType reflect.Type, reporter DepthReporter) {
	if _, ok := r.depthReporters[msgType]; ok {
		r.logger.Debug("pool depth reporter replaced", zap.Stringer("type", msgType))
	}
	r.depthReporters[msgType] = reporter
}

// DepthOf returns the current amount of idle objects in the pool bound to the message type
// false if nothing is bound
func (r *Registry) DepthOf(msgType reflect.Type) (int, bool) {
	reporter, ok := r.depthReporters[msgType]
	if !ok {
		return 0, false
	}
	return reporter.Len(), true
}

// SetDepthReporting switches whether new pools bind themselves as depth reporters
func (r *Registry) SetDepthReporting(enabled bool) {
	r.reportingEnabled = enabled
	r.logger.Debug("pool depth reporting switched", zap.Bool("enabled", enabled))
}

func (r *Registry) DepthReporting() bool {
	return r.reportingEnabled
}

// SetLogger sets the logger for registry configuration events. nil means no logging
func (r *Registry) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r.logger = logger
}

func (r *Registry) boundTypes() []reflect.Type {
	res := make([]reflect.Type, 0, len(r.depthReporters))
	for msgType := range r.depthReporters {
		res = append(res, msgType)
	}
	return res
}
