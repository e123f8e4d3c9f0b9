/*
 * Copyright (c) 2021-present unTill Pro, Ltd.
 */

package pool

import (
	"reflect"
	"sync"

	"github.com/eapache/queue"
	"go.uber.org/zap"
)

// DefaultInitialCount is the amount of objects a new pool is pre-populated with
// unless WithInitialCount() or the registry says otherwise
const DefaultInitialCount = 10

type implPool[M any, T Message[M]] struct {
	queue   *queue.Queue
	msgType reflect.Type
}

type implSyncPool[M any, T Message[M]] struct {
	sync.Mutex
	pool *implPool[M, T]
}

type implPoolStub[M any, T Message[M]] struct{}

type poolOptions struct {
	initialCount int
	registry     *Registry
}

// Registry keeps per message type initial pool sizes and depth reporters
// not safe for concurrent use: configure it before pools are used concurrently
type Registry struct {
	initialCounts    map[reflect.Type]int
	depthReporters   map[reflect.Type]DepthReporter
	reportingEnabled bool
	logger           *zap.Logger
}
