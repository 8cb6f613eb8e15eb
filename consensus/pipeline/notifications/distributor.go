package notifications

import (
	"sync"

	"github.com/casperlabs/highway/model/highway"
)

type OnMessageAddedConsumer = func(msg *highway.Message)
type OnMessageFinalizedConsumer = func(msg *highway.Message)

// Distributor fans pipeline events out to subscribers. Consumers must be
// non-blocking: events are delivered synchronously on the pipeline's
// bookkeeping goroutine.
type Distributor struct {
	messageAddedConsumers     []OnMessageAddedConsumer
	messageFinalizedConsumers []OnMessageFinalizedConsumer
	lock                      sync.RWMutex
}

func NewDistributor() *Distributor {
	return &Distributor{}
}

func (d *Distributor) AddOnMessageAddedConsumer(consumer OnMessageAddedConsumer) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.messageAddedConsumers = append(d.messageAddedConsumers, consumer)
}

func (d *Distributor) AddOnMessageFinalizedConsumer(consumer OnMessageFinalizedConsumer) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.messageFinalizedConsumers = append(d.messageFinalizedConsumers, consumer)
}

// MessageAdded is called by the pipeline when a message (block or ballot)
// was durably persisted. It fires for equivocating messages as well, since
// they are persisted too.
func (d *Distributor) MessageAdded(msg *highway.Message) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	for _, consumer := range d.messageAddedConsumers {
		consumer(msg)
	}
}

// MessageFinalized is called by the pipeline when the finalizer reports a
// newly finalized message.
func (d *Distributor) MessageFinalized(msg *highway.Message) {
	d.lock.RLock()
	defer d.lock.RUnlock()
	for _, consumer := range d.messageFinalizedConsumers {
		consumer(msg)
	}
}
