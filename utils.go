/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package pool

import (
	"reflect"
)

// TypeOf returns the message type identifier used by the registry
// T is the pooled pointer type, e.g. TypeOf[*MyMessage]()
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// SetInitialCounts sets initial pool sizes in the default registry
// call it once before pools are created
func SetInitialCounts(counts map[reflect.Type]int) {
	defaultRegistry.SetInitialCounts(counts)
}

// GetInitialCount returns the initial pool size configured in the default registry
func GetInitialCount(msgType reflect.Type) (int, bool) {
	return defaultRegistry.GetInitialCount(msgType)
}

// BindDepthReporter binds the depth reporter in the default registry
// useful if e.g. we have different pool somewhere else it is useful to bind it here and use pool.DepthOf() only
// note: reporter must be safe to call from wherever DepthOf() is called
func BindDepthReporter(msgType reflect.Type, reporter DepthReporter) {
	defaultRegistry.BindDepthReporter(msgType, reporter)
}

// DepthOf returns idle objects amount of the pool bound to the message type in the default registry
// useful in tests
func DepthOf(msgType reflect.Type) (int, bool) {
	return defaultRegistry.DepthOf(msgType)
}

// SetDepthReporting switches depth reporting in the default registry
// pools created before the call are not affected
func SetDepthReporting(enabled bool) {
	defaultRegistry.SetDepthReporting(enabled)
}
