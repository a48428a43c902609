package events

import (
	"context"
	"fmt"
	"time"

	"xgrowth-backend/internal/logger"
	"xgrowth-backend/internal/metrics"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerConfig configures the circuit breaker guarding publishes
type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// DefaultBreakerConfig returns the breaker settings used by the server
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:             "nats-publisher",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// NewCircuitBreaker creates a breaker that opens after FailureThreshold consecutive failures
func NewCircuitBreaker(cfg BreakerConfig) *gobreaker.CircuitBreaker[struct{}] {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.New().WithFields(map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
	}
	return gobreaker.NewCircuitBreaker[struct{}](settings)
}

// NATSPublisher publishes JSON encoded events to NATS
type NATSPublisher struct {
	conn    *nats.Conn
	breaker *gobreaker.CircuitBreaker[struct{}]
}

// NewNATSPublisher creates a publisher on an established connection
func NewNATSPublisher(conn *nats.Conn, cfg BreakerConfig) *NATSPublisher {
	return &NATSPublisher{conn: conn, breaker: NewCircuitBreaker(cfg)}
}

// Publish implements Publisher. When the breaker is open the call fails fast
// with gobreaker.ErrOpenState.
func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", subject, err)
	}

	_, err = p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.conn.Publish(subject, data)
	})
	metrics.RecordEventPublished(subject, err)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}
	return nil
}

// State reports the breaker state
func (p *NATSPublisher) State() gobreaker.State {
	return p.breaker.State()
}

// Check reports whether events can currently be published
func (p *NATSPublisher) Check() error {
	if !p.conn.IsConnected() {
		return fmt.Errorf("nats connection %s", p.conn.Status())
	}
	if p.breaker.State() == gobreaker.StateOpen {
		return gobreaker.ErrOpenState
	}
	return nil
}

// Decode unmarshals an event payload
func Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}
	return nil
}
