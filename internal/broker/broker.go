// Package broker forwards catalog change events to Redis pub/sub so that
// processes outside this one can react to them.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"realestate/internal/config"
	"realestate/internal/service"
)

// Publisher writes events as JSON to one Redis channel
type Publisher struct {
	client  *redis.Client
	channel string
}

// NewPublisher wraps an existing client
func NewPublisher(client *redis.Client, channel string) *Publisher {
	if channel == "" {
		channel = config.DefaultChannel
	}
	return &Publisher{client: client, channel: channel}
}

// Dial connects to cfg.RedisURL and checks the connection. A URL that does
// not parse as redis:// is treated as a host:port address.
func Dial(ctx context.Context, cfg config.EventsConfig) (*Publisher, error) {
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("redis url is required")
	}

	var client *redis.Client
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		client = redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
	} else {
		client = redis.NewClient(opts)
	}

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewPublisher(client, cfg.Channel), nil
}

// Channel returns the Redis channel events are published on
func (p *Publisher) Channel() string {
	return p.channel
}

// Publish sends one event
func (p *Publisher) Publish(ctx context.Context, event service.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Run publishes everything received on events until ctx is cancelled or
// the channel is closed. Failures are logged and the event is dropped.
func (p *Publisher) Run(ctx context.Context, events <-chan service.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			if err := p.Publish(ctx, e); err != nil {
				log.Printf("Failed to forward %s event: %v", e.Type, err)
			}
		}
	}
}

// Subscribe decodes events published on the channel. The returned channel
// is closed when ctx is cancelled.
func (p *Publisher) Subscribe(ctx context.Context) (<-chan service.Event, error) {
	sub := p.client.Subscribe(ctx, p.channel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan service.Event, 16)
	go func() {
		defer close(out)
		defer sub.Close()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var e service.Event
				if err := json.Unmarshal([]byte(msg.Payload), &e); err != nil {
					log.Printf("Failed to decode event from %s: %v", p.channel, err)
					continue
				}
				select {
				case out <- e:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Close releases the Redis connection
func (p *Publisher) Close() error {
	return p.client.Close()
}
