package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const dialTimeout = 2 * time.Second

var (
	ErrPoolClosed    = errors.New("order events pool is closed")
	ErrPoolExhausted = errors.New("no free order events channel")
)

// ChannelPool hands out channels on which the order events queue is declared.
// It holds a fixed number of slots; an empty slot (nil) or a channel the
// broker closed is refilled on Acquire, redialing the connection if needed.
// A slot whose refill fails goes back empty, so the pool never shrinks.
type ChannelPool struct {
	url       string
	queueName string
	slots     chan *amqp.Channel

	connMu sync.Mutex
	conn   *amqp.Connection

	mu     sync.Mutex
	closed bool
}

// NewChannelPool dials url and fills size slots.
func NewChannelPool(url string, queueName string, size int) (*ChannelPool, error) {
	if size < 1 {
		size = 1
	}

	pool := &ChannelPool{
		url:       url,
		queueName: queueName,
		slots:     make(chan *amqp.Channel, size),
	}

	for i := 0; i < size; i++ {
		ch, err := pool.openChannel()
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to fill order events slot %d: %w", i, err)
		}
		pool.slots <- ch
	}

	log.Printf("Order events pool ready: %d channels on queue %s", size, queueName)
	return pool, nil
}

// openChannel opens a channel with the order events queue declared on it,
// redialing first when the connection is gone.
func (p *ChannelPool) openChannel() (*amqp.Channel, error) {
	p.connMu.Lock()
	defer p.connMu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.DialConfig(p.url, amqp.Config{
			Heartbeat: 10 * time.Second,
			Locale:    "en_US",
			Dial:      amqp.DefaultDial(dialTimeout),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := ch.QueueDeclare(p.queueName, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", p.queueName, err)
	}
	return ch, nil
}

// Acquire takes a slot without waiting. It fails with ErrPoolExhausted when
// every channel is in use, so a publish never holds up the caller.
func (p *ChannelPool) Acquire(ctx context.Context) (*amqp.Channel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var ch *amqp.Channel
	select {
	case slot, ok := <-p.slots:
		if !ok {
			return nil, ErrPoolClosed
		}
		ch = slot
	default:
		return nil, ErrPoolExhausted
	}

	if ch != nil && !ch.IsClosed() {
		return ch, nil
	}

	ch, err := p.openChannel()
	if err != nil {
		p.put(nil)
		return nil, err
	}
	return ch, nil
}

// Release returns ch to its slot. A channel the broker closed goes back as
// is and is refilled by the next Acquire.
func (p *ChannelPool) Release(ch *amqp.Channel) {
	if ch == nil {
		return
	}
	if !p.put(ch) && !ch.IsClosed() {
		ch.Close()
	}
}

// put stores ch in a free slot and reports whether it was kept.
func (p *ChannelPool) put(ch *amqp.Channel) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return false
	}
	select {
	case p.slots <- ch:
		return true
	default:
		return false
	}
}

// Close closes all pooled channels and the connection. It is safe to call
// more than once.
func (p *ChannelPool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.slots)
	p.mu.Unlock()

	for ch := range p.slots {
		if ch != nil && !ch.IsClosed() {
			ch.Close()
		}
	}

	p.connMu.Lock()
	defer p.connMu.Unlock()
	if p.conn != nil {
		p.conn.Close()
	}
	log.Println("Closed order events pool")
}
