package adapter

import (
	"context"

	"github.com/dop251/goja"
)

// runtimePool hands out JavaScript runtimes. A goja runtime must only be used
// by one goroutine at a time, and loading a bundle into it is expensive, so
// runtimes are created lazily up to size and reused afterwards.
type runtimePool struct {
	init  func() (*goja.Runtime, error)
	idle  chan *goja.Runtime
	slots chan struct{}
}

func newRuntimePool(size int, init func() (*goja.Runtime, error)) *runtimePool {
	if size <= 0 {
		size = 1
	}

	return &runtimePool{
		init:  init,
		idle:  make(chan *goja.Runtime, size),
		slots: make(chan struct{}, size),
	}
}

func (p *runtimePool) acquire(ctx context.Context) (*goja.Runtime, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case rt := <-p.idle:
		return rt, nil
	default:
	}

	select {
	case rt := <-p.idle:
		return rt, nil
	case p.slots <- struct{}{}:
		rt, err := p.init()
		if err != nil {
			<-p.slots
			return nil, err
		}

		return rt, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *runtimePool) release(rt *goja.Runtime) {
	p.idle <- rt
}

// discard drops a runtime left in an unknown state and frees its slot.
func (p *runtimePool) discard(_ *goja.Runtime) {
	<-p.slots
}
