// Package notify delivers payment receipts out of band. Delivery is
// best-effort: the settlement path never waits on it and never fails
// because of it.
package notify

import (
	"context"
	"sync"

	"github.com/scholarpay/scholarpay-backend/internal/settlement"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Dispatcher queues receipts and delivers them from a background loop,
// pacing sends so an upstream mail relay is never flooded. When the queue is
// full the receipt is dropped and logged rather than blocking the caller.
type Dispatcher struct {
	sender Sender
	logger *zap.Logger

	receipts chan settlement.Receipt
	rl       ratelimit.Limiter

	wg   sync.WaitGroup
	stop chan struct{}
}

// NewDispatcher constructs a Dispatcher with a queue of the given size.
func NewDispatcher(sender Sender, logger *zap.Logger, queueSize, rps int) *Dispatcher {
	return &Dispatcher{
		sender:   sender,
		logger:   logger.Named("notify"),
		receipts: make(chan settlement.Receipt, queueSize),
		rl:       ratelimit.New(rps),
		stop:     make(chan struct{}),
	}
}

// Start begins the background delivery loop.
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go d.run(ctx)
}

// Stop ends the delivery loop and waits for it to exit. Queued receipts
// that were not yet sent are dropped.
func (d *Dispatcher) Stop() {
	close(d.stop)
	d.wg.Wait()
}

// SendReceipt queues a receipt without blocking.
func (d *Dispatcher) SendReceipt(receipt settlement.Receipt) {
	select {
	case d.receipts <- receipt:
	default:
		d.logger.Warn("receipt queue full, dropping",
			zap.String("applicationId", receipt.ApplicationID),
			zap.String("paymentId", receipt.PaymentID),
		)
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	defer d.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stop:
			return
		case receipt := <-d.receipts:
			d.rl.Take()
			if err := d.sender.SendReceipt(ctx, receipt); err != nil {
				d.logger.Error("receipt not delivered",
					zap.String("applicationId", receipt.ApplicationID),
					zap.String("paymentId", receipt.PaymentID),
					zap.Error(err),
				)
				continue
			}
			d.logger.Debug("receipt delivered",
				zap.String("applicationId", receipt.ApplicationID),
			)
		}
	}
}
