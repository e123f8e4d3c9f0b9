/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package pool

// IPool s.e.
// use NewPool(), NewSyncPool() or NewPoolStub()
// pool returned by NewPool() is not safe for concurrent use: keep it per goroutine or guard it externally
type IPool[T any] interface {
	// Get borrows the oldest idle object or constructs a new one if the pool is empty
	// object is not reset here: it was reset on Release() or it is brand new
	Get() T

	// Release resets the object by its Reset() and puts it to the back of the pool
	// pool is unbounded: releasing objects that were never borrowed grows the pool
	// releasing the same object twice puts it to the pool twice, the caller must not do that
	Release(obj T)

	// Len returns the amount of idle objects currently in the pool
	Len() int
}

// Message is the capability each pooled type must provide:
// default construction (new(M)) and in-place reset to the default state
// every generated protobuf message satisfies it
type Message[M any] interface {
	*M
	Reset()
}

// DepthReporter reports the current amount of idle objects in a pool
// every IPool is a DepthReporter
type DepthReporter interface {
	Len() int
}

// DepthReporterFunc adapts an ordinary func to DepthReporter
type DepthReporterFunc func() int

func (f DepthReporterFunc) Len() int { return f() }

// Option configures NewPool() and NewSyncPool()
type Option func(*poolOptions)
