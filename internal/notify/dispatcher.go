package notify

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const DefaultTimeout = 5 * time.Second

// Dispatcher runs a Notifier in the background. Callers never wait and never
// see its errors; failures are logged and counted.
type Dispatcher struct {
	notifier Notifier
	log      *zap.Logger
	timeout  time.Duration

	wg       sync.WaitGroup
	sent     atomic.Uint64
	failures atomic.Uint64
}

func NewDispatcher(n Notifier, logger *zap.Logger, timeout time.Duration) *Dispatcher {
	if n == nil {
		n = NoopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Dispatcher{notifier: n, log: logger, timeout: timeout}
}

// Dispatch starts a single delivery attempt for url and returns immediately.
func (d *Dispatcher) Dispatch(url string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.failures.Add(1)
				d.log.Error("notify: notifier panicked", zap.String("url", url), zap.Any("panic", r))
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		if err := d.notifier.Notify(ctx, url); err != nil {
			d.failures.Add(1)
			d.log.Warn("notify: download notification failed", zap.String("url", url), zap.Error(err))
			return
		}
		d.sent.Add(1)
		d.log.Info("notify: download notification sent", zap.String("url", url))
	}()
}

// Wait blocks until every dispatched delivery has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) Sent() uint64     { return d.sent.Load() }
func (d *Dispatcher) Failures() uint64 { return d.failures.Load() }
