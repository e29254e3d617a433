package consumer

import (
	"context"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Worker acknowledges the order events of one consumer channel once the
// EventLog has recorded them.
type Worker struct {
	id      int
	tag     string
	channel *amqp.Channel
	events  *EventLog
}

// consume registers the worker's consumer and records deliveries until ctx
// is done or the broker closes the delivery stream.
func (w *Worker) consume(ctx context.Context, queueName string) error {
	deliveries, err := w.channel.Consume(queueName, w.tag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("worker %d: failed to register consumer: %w", w.id, err)
	}

	log.Printf("Worker %d waiting for order events", w.id)
	for {
		select {
		case <-ctx.Done():
			// stop new deliveries; an unacked one is redelivered elsewhere
			if err := w.channel.Cancel(w.tag, false); err != nil {
				log.Printf("Worker %d: failed to cancel consumer: %v", w.id, err)
			}
			return nil
		case msg, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handle(msg)
		}
	}
}

// handle acks a recorded event and rejects an undecodable one without requeue.
func (w *Worker) handle(msg amqp.Delivery) {
	event, err := w.events.Record(w.id, msg.Body)
	if err != nil {
		log.Printf("Worker %d: %v", w.id, err)
		if err := msg.Nack(false, false); err != nil {
			log.Printf("Worker %d: failed to reject delivery %d: %v", w.id, msg.DeliveryTag, err)
		}
		return
	}

	if err := msg.Ack(false); err != nil {
		log.Printf("Worker %d: failed to acknowledge event %s: %v", w.id, event.EventID, err)
	}
}
