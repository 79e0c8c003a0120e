package notify

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Semzy1/abbas-delight-bakry/pkg/order"
)

type job struct {
	name string
	run  func() error
}

// Dispatcher runs email deliveries on a background worker so the request
// path never waits on the mail transport. Jobs are at-most-once: there
// is no retry and no timeout, and a full queue drops the job. Failures
// go to the logger only.
//
// Dispatcher implements order.Notifier.
type Dispatcher struct {
	sender Sender
	log    *zap.Logger
	jobs   chan job
	wg     sync.WaitGroup
}

// NewDispatcher starts a dispatcher with a single delivery worker.
func NewDispatcher(sender Sender, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		log:    log,
		jobs:   make(chan job, 64),
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for j := range d.jobs {
		if err := j.run(); err != nil {
			d.log.Error("notification delivery failed",
				zap.String("notification", j.name),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) submit(j job) {
	select {
	case d.jobs <- j:
	default:
		d.log.Warn("notification queue full, dropping", zap.String("notification", j.name))
	}
}

// OrderConfirmation queues an order-confirmation email.
func (d *Dispatcher) OrderConfirmation(o order.Order) {
	d.submit(job{
		name: "order_confirmation",
		run:  func() error { return d.sender.SendOrderConfirmation(o) },
	})
}

// StatusUpdate queues a status-update email.
func (d *Dispatcher) StatusUpdate(o order.Order, message string) {
	d.submit(job{
		name: "status_update",
		run:  func() error { return d.sender.SendStatusUpdate(o, message) },
	})
}

// Enabled reports whether the underlying transport is configured.
func (d *Dispatcher) Enabled() bool {
	return d.sender.Enabled()
}

// Close stops accepting jobs and waits for in-flight deliveries.
func (d *Dispatcher) Close() {
	close(d.jobs)
	d.wg.Wait()
}
