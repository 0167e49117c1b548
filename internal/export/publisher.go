package export

import (
	"sync"
	"sync/atomic"

	"StylusBoard/internal/state"
)

// Result is one finished asynchronous export.
type Result struct {
	Image string // data URI, empty when OK is false
	OK    bool
	Err   error
}

// Publisher exports in the background and hands results to a callback.
// When exports overlap only the most recent submission is delivered;
// older results are dropped.
type Publisher struct {
	opts    Options
	deliver func(Result)
	encode  func(state.PathList, Options) (string, bool, error)

	latest    atomic.Uint64
	deliverMu sync.Mutex
	wg        sync.WaitGroup
}

// NewPublisher returns a publisher calling deliver from a background
// goroutine. Deliveries never run concurrently with each other.
func NewPublisher(opts Options, deliver func(Result)) *Publisher {
	return &Publisher{opts: opts, deliver: deliver, encode: DataURI}
}

// Submit starts an export of paths. The list is copied first, so the
// caller may keep mutating it.
func (p *Publisher) Submit(paths state.PathList) {
	snapshot := paths.Clone()
	seq := p.latest.Add(1)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		uri, ok, err := p.encode(snapshot, p.opts)

		p.deliverMu.Lock()
		defer p.deliverMu.Unlock()
		if seq != p.latest.Load() {
			return
		}
		p.deliver(Result{Image: uri, OK: ok, Err: err})
	}()
}

// Supersede drops every export still in flight. A delivery already under
// way finishes before Supersede returns; none is made after it.
func (p *Publisher) Supersede() {
	p.latest.Add(1)
	p.deliverMu.Lock()
	p.deliverMu.Unlock()
}

// Wait blocks until all submitted exports have finished or been dropped.
func (p *Publisher) Wait() {
	p.wg.Wait()
}
