/*
 * Copyright (c) 2020-present unTill Pro, Ltd.
 */

package pool

import (
	"github.com/eapache/queue"
)

func (p *implPool[M, T]) Get() T {
	if p.queue.Length() == 0 {
		// not added to the queue, the caller may Release() it later
		return T(new(M))
	}
	return p.queue.Remove().(T)
}

func (p *implPool[M, T]) Release(obj T) {
	obj.Reset()
	p.queue.Add(obj)
}

func (p *implPool[M, T]) Len() int {
	return p.queue.Length()
}

func (p *implPool[M, T]) init(opts poolOptions, reporter DepthReporter) {
	p.msgType = TypeOf[T]()
	initialCount := opts.initialCount
	if count, ok := opts.registry.GetInitialCount(p.msgType); ok {
		initialCount = count
	}
	p.queue = queue.New()
	if opts.registry.DepthReporting() {
		opts.registry.BindDepthReporter(p.msgType, reporter)
	}
	for i := 0; i < initialCount; i++ {
		p.queue.Add(T(new(M)))
	}
}

func (p *implSyncPool[M, T]) Get() T {
	p.Lock()
	defer p.Unlock()
	return p.pool.Get()
}

func (p *implSyncPool[M, T]) Release(obj T) {
	p.Lock()
	defer p.Unlock()
	p.pool.Release(obj)
}

func (p *implSyncPool[M, T]) Len() int {
	p.Lock()
	defer p.Unlock()
	return p.pool.Len()
}

func (p *implPoolStub[M, T]) Get() T {
	return T(new(M))
}

func (p *implPoolStub[M, T]) Release(obj T) {
	obj.Reset()
}

func (p *implPoolStub[M, T]) Len() int {
	return 0
}

// NewPool creates a pool of *M pre-populated with the effective initial count of objects:
// the count configured in the registry for *M if any, WithInitialCount() value otherwise (DefaultInitialCount by default)
// negative count means no pre-population
// if depth reporting is on in the registry the pool is bound as the depth reporter for *M
// not safe for concurrent use, see NewSyncPool()
func NewPool[M any, T Message[M]](opts ...Option) IPool[T] {
	res := &implPool[M, T]{}
	res.init(applyOptions(opts), res)
	return res
}

// NewSyncPool creates the same pool as NewPool() does but guards each call with a mutex
// the guarded pool is bound as the depth reporter so DepthOf() is guarded as well
func NewSyncPool[M any, T Message[M]](opts ...Option) IPool[T] {
	res := &implSyncPool[M, T]{pool: &implPool[M, T]{}}
	res.pool.init(applyOptions(opts), res)
	return res
}

// NewPoolStub creates pool which does not act as a pool. I.e. just creates a new instance on each Get()
// Release() does nothing more but Reset()
// never bound as a depth reporter
// useful for investigations
func NewPoolStub[M any, T Message[M]]() IPool[T] {
	return &implPoolStub[M, T]{}
}

// WithInitialCount sets the pre-population size used when the registry has no count for the message type
func WithInitialCount(count int) Option {
	return func(o *poolOptions) {
		o.initialCount = count
	}
}

// WithRegistry makes the pool read its initial count from and report its depth to the provided registry
// instead of the default one
func WithRegistry(r *Registry) Option {
	return func(o *poolOptions) {
		if r != nil {
			o.registry = r
		}
	}
}

func applyOptions(opts []Option) poolOptions {
	res := poolOptions{
		initialCount: DefaultInitialCount,
		registry:     DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(&res)
	}
	return res
}
