package concurrent

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrScheduleTimeout = errors.New("schedule error: timed out")
	ErrPoolClosed      = errors.New("schedule error: pool closed")
)

// GoroutinePool. at most size goroutines run scheduled tasks; idle goroutines wait on the shared queue.
// used by the websocket server so that a burst of ready connections does not spawn a goroutine each.
type GoroutinePool struct {
	sem  chan struct{}
	work chan func()

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewGoroutinePool(size, queue, spawn int) *GoroutinePool {
	if spawn <= 0 && queue > 0 {
		panic("dead queue configuration detected")
	}
	if spawn > size {
		panic("spawn > workers")
	}
	p := &GoroutinePool{
		sem:  make(chan struct{}, size),
		work: make(chan func(), queue),
	}
	for i := 0; i < spawn; i++ {
		p.sem <- struct{}{}
		p.wg.Add(1)
		go p.worker(func() {})
	}
	return p
}

// Schedule. blocks until a goroutine picks task up.
func (p *GoroutinePool) Schedule(task func()) error {
	return p.schedule(task, nil)
}

// ScheduleTimeout. like Schedule but gives up with ErrScheduleTimeout after timeout.
func (p *GoroutinePool) ScheduleTimeout(timeout time.Duration, task func()) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	return p.schedule(task, timer.C)
}

func (p *GoroutinePool) schedule(task func(), timeout <-chan time.Time) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	select {
	case <-timeout:
		return ErrScheduleTimeout
	case p.work <- task:
		return nil
	case p.sem <- struct{}{}:
		p.wg.Add(1)
		go p.worker(task)
		return nil
	}
}

func (p *GoroutinePool) worker(task func()) {
	defer func() {
		<-p.sem
		p.wg.Done()
	}()

	task()

	for task := range p.work {
		task()
	}
}

// Close. stops accepting tasks and waits for the queued ones to finish.
func (p *GoroutinePool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.work)
	p.mu.Unlock()

	p.wg.Wait()
}
