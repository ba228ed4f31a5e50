package settlement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gemasgo/gemasgo-ledger/internal/domain/entity"
	errs "github.com/gemasgo/gemasgo-ledger/internal/domain/error"
	coreport "github.com/gemasgo/gemasgo-ledger/internal/domain/port/core"
	"github.com/gemasgo/gemasgo-ledger/internal/domain/port/persistence"
)

// ErrShuttingDown is returned for settlements submitted after Shutdown
var ErrShuttingDown = fmt.Errorf("settlement executor is shutting down: %w", errs.ErrInternalServer)

// Func mutates the locked account and writes its ledger records through the
// repositories bound to ctx. The executor persists the account afterwards.
type Func func(ctx context.Context, account *entity.Account) error

// Options tunes the executor
type Options struct {
	// QueueSize bounds pending settlements per account
	QueueSize int
	// LockTimeout bounds one settlement including the wait for the row lock
	LockTimeout coreport.Duration
	// IdleTimeout retires an account's worker after it has been idle this long
	IdleTimeout coreport.Duration
}

// DefaultOptions returns the options used when configuration leaves them unset
func DefaultOptions() Options {
	return Options{
		QueueSize:   100,
		LockTimeout: 5 * coreport.Second,
		IdleTimeout: coreport.Minute,
	}
}

// Executor serializes balance mutations per account. Each account gets its own
// queue and worker goroutine, and every settlement runs in one database
// transaction that holds the account row lock.
type Executor struct {
	uow          persistence.UnitOfWork
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	metrics      coreport.Metrics
	opts         Options

	mu      sync.Mutex
	queues  map[string]*accountQueue
	closed  bool
	done    chan struct{}
	workers sync.WaitGroup
}

type accountQueue struct {
	requests chan *settleRequest
	stopped  chan struct{}
	// pending counts callers holding this queue; guarded by Executor.mu
	pending int
}

type settleRequest struct {
	ctx       context.Context
	operation string
	fn        Func
	result    chan settleResult
}

type settleResult struct {
	account *entity.Account
	err     error
}

// NewExecutor creates a settlement executor
func NewExecutor(
	uow persistence.UnitOfWork,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
	opts Options,
) *Executor {
	defaults := DefaultOptions()
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaults.QueueSize
	}
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = defaults.LockTimeout
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = defaults.IdleTimeout
	}

	return &Executor{
		uow:          uow,
		logger:       logger,
		timeProvider: timeProvider,
		metrics:      metrics,
		opts:         opts,
		queues:       make(map[string]*accountQueue),
		done:         make(chan struct{}),
	}
}

// Settle runs fn against the locked account once every earlier settlement for
// the same account has finished, and returns the account as committed.
// Settlements for different accounts run in parallel. A ctx error returned by
// Settle always means nothing was applied.
func (e *Executor) Settle(ctx context.Context, accountID, operation string, fn Func) (*entity.Account, error) {
	queue, err := e.acquire(accountID)
	if err != nil {
		return nil, err
	}

	req := &settleRequest{
		ctx:       ctx,
		operation: operation,
		fn:        fn,
		result:    make(chan settleResult, 1),
	}

	select {
	case queue.requests <- req:
	case <-ctx.Done():
		e.release(queue)
		e.logger.Warn("Context canceled while enqueueing settlement", map[string]any{
			"accountId": accountID,
			"operation": operation,
			"error":     ctx.Err().Error(),
		})
		return nil, ctx.Err()
	case <-e.done:
		e.release(queue)
		return nil, ErrShuttingDown
	}

	// Once accepted, the caller always gets the real outcome. The worker bounds
	// the settlement with LockTimeout and skips it if ctx ends before it starts.
	select {
	case res := <-req.result:
		return res.account, res.err
	case <-queue.stopped:
		select {
		case res := <-req.result:
			return res.account, res.err
		default:
			return nil, ErrShuttingDown
		}
	}
}

// acquire returns the account's queue, starting its worker when needed
func (e *Executor) acquire(accountID string) (*accountQueue, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrShuttingDown
	}

	queue, ok := e.queues[accountID]
	if !ok {
		queue = &accountQueue{
			requests: make(chan *settleRequest, e.opts.QueueSize),
			stopped:  make(chan struct{}),
		}
		e.queues[accountID] = queue
		e.workers.Add(1)
		go e.run(accountID, queue)

		e.logger.Debug("Started settlement worker", map[string]any{
			"accountId": accountID,
		})
	}
	queue.pending++
	return queue, nil
}

func (e *Executor) release(queue *accountQueue) {
	e.mu.Lock()
	queue.pending--
	e.mu.Unlock()
}

// retire removes an idle queue. It refuses while any caller still holds it.
func (e *Executor) retire(accountID string, queue *accountQueue) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if queue.pending > 0 {
		return false
	}
	delete(e.queues, accountID)
	return true
}

// run is the worker loop for one account
func (e *Executor) run(accountID string, queue *accountQueue) {
	defer e.workers.Done()
	defer close(queue.stopped)

	idle := time.NewTimer(e.opts.IdleTimeout.Std())
	defer idle.Stop()

	for {
		select {
		case req := <-queue.requests:
			e.execute(accountID, req)
			e.release(queue)
			idle.Reset(e.opts.IdleTimeout.Std())
		case <-idle.C:
			if e.retire(accountID, queue) {
				e.logger.Debug("Retired idle settlement worker", map[string]any{
					"accountId": accountID,
				})
				return
			}
			idle.Reset(e.opts.IdleTimeout.Std())
		case <-e.done:
			// drain what was accepted before shutdown
			for {
				select {
				case req := <-queue.requests:
					e.execute(accountID, req)
				default:
					return
				}
			}
		}
	}
}

// execute runs one settlement inside a transaction holding the account row lock
func (e *Executor) execute(accountID string, req *settleRequest) {
	if err := req.ctx.Err(); err != nil {
		e.logger.Warn("Settlement skipped, caller context ended while queued", map[string]any{
			"accountId": accountID,
			"operation": req.operation,
			"error":     err.Error(),
		})
		req.result <- settleResult{err: err}
		return
	}

	start := e.timeProvider.Now()
	var settled *entity.Account

	err := e.safely(func() error {
		ctx, cancel := e.timeProvider.WithTimeout(req.ctx, e.opts.LockTimeout)
		defer cancel()

		return e.uow.Within(ctx, func(txCtx context.Context) error {
			accounts := e.uow.GetAccountRepository(txCtx)

			account, err := accounts.GetForUpdate(txCtx, accountID)
			if err != nil {
				return err
			}
			if err := req.fn(txCtx, account); err != nil {
				return err
			}
			if err := accounts.Update(txCtx, account); err != nil {
				return err
			}
			settled = account
			return nil
		})
	})

	elapsed := e.timeProvider.Since(start)
	fields := map[string]any{
		"accountId":  accountID,
		"operation":  req.operation,
		"durationMs": elapsed.Std().Milliseconds(),
	}

	switch {
	case err == nil:
		fields["points"] = settled.Points()
		fields["lives"] = settled.Lives()
		e.logger.Info("Settlement committed", fields)
		e.metrics.RecordSettlement(req.operation, coreport.OutcomeSuccess, elapsed)
	case isRejection(err):
		fields["error"] = err.Error()
		var withFields interface{ LogFields() map[string]any }
		if errors.As(err, &withFields) {
			for k, v := range withFields.LogFields() {
				fields[k] = v
			}
		}
		e.logger.Warn("Settlement rejected", fields)
		e.metrics.RecordSettlement(req.operation, coreport.OutcomeRejected, elapsed)
	default:
		err = errs.NewSettlementError(accountID, req.operation, err)
		var settleErr *errs.SettlementError
		if errors.As(err, &settleErr) {
			for k, v := range settleErr.LogFields() {
				fields[k] = v
			}
		}
		e.logger.Error("Settlement failed", fields)
		e.metrics.RecordSettlement(req.operation, coreport.OutcomeError, elapsed)
	}

	req.result <- settleResult{account: settled, err: err}
}

// safely keeps a panicking settlement from taking the worker down
func (e *Executor) safely(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Settlement panicked", map[string]any{
				"panic": fmt.Sprint(r),
			})
			err = errs.ErrInternalServer
		}
	}()
	return fn()
}

func isRejection(err error) bool {
	return errs.IsInsufficientFundsError(err) ||
		errs.IsValidationError(err) ||
		errs.IsNotFoundError(err) ||
		errs.IsPermissionDeniedError(err)
}

// Shutdown stops accepting settlements, finishes the queued ones and waits
// for every worker to exit
func (e *Executor) Shutdown() {
	e.logger.Info("Shutting down settlement executor", nil)

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.done)
	e.mu.Unlock()

	e.workers.Wait()
	e.logger.Info("Settlement executor shut down successfully", nil)
}

// ActiveQueues reports how many accounts currently have a worker
func (e *Executor) ActiveQueues() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queues)
}

// Settler is the executor surface use cases depend on
type Settler interface {
	Settle(ctx context.Context, accountID, operation string, fn Func) (*entity.Account, error)
}

var _ Settler = (*Executor)(nil)
