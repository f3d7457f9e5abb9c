package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"consig_origination/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrQueueFull   = errors.New("task queue full")
	ErrQueueClosed = errors.New("task queue closed")
)

type task struct {
	name string
	run  func(ctx context.Context) error
}

// WorkerPool runs enqueued tasks on a fixed number of goroutines. Tasks get a context
// bounded by the task timeout and canceled on Shutdown.
type WorkerPool struct {
	tasks       chan task
	workers     int
	taskTimeout time.Duration
	logger      *zap.Logger

	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	started sync.Once
}

var _ interfaces.ITaskQueue = (*WorkerPool)(nil)

func NewWorkerPool(workers, size int, taskTimeout time.Duration, logger *zap.Logger) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if size <= 0 {
		size = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerPool{
		tasks:       make(chan task, size),
		workers:     workers,
		taskTimeout: taskTimeout,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (p *WorkerPool) Start() {
	p.started.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go p.work(i)
		}
		p.logger.Info("[queue][worker] pool started", zap.Int("workers", p.workers))
	})
}

// Enqueue never blocks: it fails with ErrQueueFull when the buffer is full.
func (p *WorkerPool) Enqueue(name string, run func(ctx context.Context) error) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrQueueClosed
	}
	select {
	case p.tasks <- task{name: name, run: run}:
		return nil
	default:
		p.logger.Warn("[queue][worker] queue full", zap.String("task", name))
		return ErrQueueFull
	}
}

// Shutdown stops accepting tasks and waits for the queued ones to finish. When ctx ends
// first the running tasks are canceled.
func (p *WorkerPool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()
	p.Start()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		<-done
		return ctx.Err()
	}
}

func (p *WorkerPool) work(id int) {
	defer p.wg.Done()
	for t := range p.tasks {
		p.run(id, t)
	}
}

func (p *WorkerPool) run(id int, t task) {
	ctx := p.ctx
	if p.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.taskTimeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("[queue][worker] task panicked", zap.Int("worker", id), zap.String("task", t.name), zap.Any("panic", r))
		}
	}()
	start := time.Now()
	if err := t.run(ctx); err != nil {
		p.logger.Warn("[queue][worker] task failed", zap.Int("worker", id), zap.String("task", t.name), zap.Error(err))
		return
	}
	p.logger.Debug("[queue][worker] task done", zap.Int("worker", id), zap.String("task", t.name), zap.Duration("elapsed", time.Since(start)))
}
