package consumer

import (
	"context"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Tail follows the order events queue with a fixed number of workers, each
// on its own channel with one unacknowledged delivery at a time.
type Tail struct {
	conn      *amqp.Connection
	queueName string
	workers   int
	events    *EventLog
}

func NewTail(conn *amqp.Connection, queueName string, workers int, events *EventLog) *Tail {
	if workers < 1 {
		workers = 1
	}
	return &Tail{
		conn:      conn,
		queueName: queueName,
		workers:   workers,
		events:    events,
	}
}

// Run declares the queue, so the tail may start before the API, then
// consumes until ctx is done and every worker has stopped.
func (t *Tail) Run(ctx context.Context) error {
	workers := make([]*Worker, 0, t.workers)
	defer func() {
		for _, w := range workers {
			w.channel.Close()
		}
	}()

	for i := 1; i <= t.workers; i++ {
		ch, err := t.conn.Channel()
		if err != nil {
			return fmt.Errorf("failed to open channel for worker %d: %w", i, err)
		}
		workers = append(workers, &Worker{
			id:      i,
			tag:     fmt.Sprintf("events-tail-%d", i),
			channel: ch,
			events:  t.events,
		})
		if i == 1 {
			if _, err := ch.QueueDeclare(t.queueName, true, false, false, false, nil); err != nil {
				return fmt.Errorf("failed to declare queue %s: %w", t.queueName, err)
			}
		}
		if err := ch.Qos(1, 0, false); err != nil {
			return fmt.Errorf("failed to set QoS for worker %d: %w", i, err)
		}
	}

	log.Printf("Following queue %s with %d workers", t.queueName, len(workers))

	var wg sync.WaitGroup
	errs := make(chan error, len(workers))
	for _, w := range workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			if err := w.consume(ctx, t.queueName); err != nil {
				errs <- err
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	return <-errs
}
