package eventsmock

import (
	"context"
	"sync"

	"navlend-backend/internal/events"
)

var _ events.Publisher = (*Publisher)(nil)

// Publisher records published events in memory. PublishFn, when set,
// overrides the default record-and-succeed behavior.
type Publisher struct {
	PublishFn func(ctx context.Context, topic string, event any) error

	mu        sync.Mutex
	Published []Published
}

type Published struct {
	Topic string
	Event any
}

func (p *Publisher) Publish(ctx context.Context, topic string, event any) error {
	if p.PublishFn != nil {
		return p.PublishFn(ctx, topic, event)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Published = append(p.Published, Published{Topic: topic, Event: event})
	return nil
}

func (p *Publisher) Close() error { return nil }

// Topics returns the topics published so far, in order.
func (p *Publisher) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.Published))
	for i, e := range p.Published {
		out[i] = e.Topic
	}
	return out
}
