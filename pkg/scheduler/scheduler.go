package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/feedclip/feedclip/pkg/domain"
)

// Event is published after each completed ingestion batch. It carries the
// batch result, the refreshed cache snapshot and the articles promoted by
// this batch, so listeners never need a follow-up query.
type Event struct {
	Result   domain.IngestResult
	Items    []domain.RawItem
	Promoted []domain.Article
}

// Scheduler drives the ingestion pipeline: a recurring timer, an immediate
// run on start, and on-demand triggers from subscription changes or explicit
// refresh requests. At most one batch runs at a time; triggers arriving
// mid-batch collapse into a single follow-up run.
type Scheduler struct {
	pipeline *Pipeline
	interval time.Duration

	trigger chan bool // payload is the force flag
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	runMu sync.Mutex // serializes batches

	subMu       sync.Mutex
	subscribers map[chan Event]struct{}
}

// New creates a scheduler around a pipeline. interval is the nominal refresh
// period between automatic batches.
func New(pipeline *Pipeline, interval time.Duration) *Scheduler {
	if interval == 0 {
		interval = 30 * time.Minute
	}
	return &Scheduler{
		pipeline:    pipeline,
		interval:    interval,
		trigger:     make(chan bool, 1),
		subscribers: map[chan Event]struct{}{},
	}
}

// Start launches the scheduling loop, including an immediate first batch.
// Returns after the loop goroutine is running.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop(ctx)
	}()
	lgr.Printf("[INFO] scheduler started, refresh interval %v", s.interval)
}

// Stop terminates the loop and waits for an in-flight batch to finish
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	s.runBatch(ctx, false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runBatch(ctx, false)
		case force := <-s.trigger:
			s.runBatch(ctx, force)
		}
	}
}

// Trigger requests an asynchronous batch. Non-blocking: when a trigger is
// already pending the request folds into it.
func (s *Scheduler) Trigger(force bool) {
	select {
	case s.trigger <- force:
	default:
	}
}

// Refresh runs a batch synchronously and returns its result. Used by the
// refresh endpoint; concurrent callers queue behind the running batch.
func (s *Scheduler) Refresh(ctx context.Context, force bool) domain.IngestResult {
	return s.runBatch(ctx, force)
}

func (s *Scheduler) runBatch(ctx context.Context, force bool) domain.IngestResult {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if ctx.Err() != nil {
		return domain.IngestResult{}
	}

	result, promoted := s.pipeline.Run(ctx, force)

	items, err := s.pipeline.Snapshot(ctx)
	if err != nil {
		lgr.Printf("[WARN] failed to read cache snapshot after batch: %v", err)
	}
	s.publish(Event{Result: result, Items: items, Promoted: promoted})
	return result
}

// Subscribe registers a listener for batch completion events. The returned
// function unsubscribes and drains the channel.
func (s *Scheduler) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 4)

	s.subMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.subMu.Unlock()

	unsubscribe := func() {
		s.subMu.Lock()
		delete(s.subscribers, ch)
		s.subMu.Unlock()
		// drain so a concurrent publish can't be stuck on a full buffer
		for {
			select {
			case <-ch:
			default:
				return
			}
		}
	}
	return ch, unsubscribe
}

// publish fans an event out to all listeners, dropping it for any listener
// whose buffer is full. A slow SSE client never stalls the scheduler.
func (s *Scheduler) publish(ev Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
			lgr.Printf("[DEBUG] event listener buffer full, dropping update")
		}
	}
}
