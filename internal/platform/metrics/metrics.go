// Package metrics counts what flows over the notification bus. Each session
// owns its registry, so several sessions never share counters.
package metrics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	contractsv1 "brandbridge/contracts/events/v1"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Subscriber is the part of the message bus the collector needs.
type Subscriber interface {
	Subscribe(
		ctx context.Context,
		topic string,
		consumerGroup string,
		handler func(context.Context, contractsv1.Envelope) error,
	) error
}

type Collector struct {
	registry      *prometheus.Registry
	events        *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	namespace = sanitize(namespace)

	return &Collector{
		registry: registry,
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_total",
				Help:      "Domain events published, by source service and event type",
			},
			[]string{"source_service", "event_type"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "User-facing notifications, by kind",
			},
			[]string{"kind"},
		),
	}
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Start subscribes under its own consumer group so the dispatcher still sees
// every event.
func (c *Collector) Start(ctx context.Context, bus Subscriber) error {
	return bus.Subscribe(ctx, contractsv1.TopicNotifications, "metrics-collector", c.Handle)
}

func (c *Collector) Handle(_ context.Context, event contractsv1.Envelope) error {
	c.events.WithLabelValues(event.SourceService, event.EventType).Inc()
	if strings.TrimSpace(event.Notification.Message) != "" {
		c.notifications.WithLabelValues(string(event.Notification.Kind)).Inc()
	}
	return nil
}

// Sample is one counter value with its labels rendered as k=v pairs.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Snapshot gathers every counter, sorted by name then labels.
func (c *Collector) Snapshot() ([]Sample, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var samples []Sample
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			pairs := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				pairs = append(pairs, label.GetName()+"="+label.GetValue())
			}
			samples = append(samples, Sample{
				Name:   family.GetName(),
				Labels: strings.Join(pairs, ","),
				Value:  metric.GetCounter().GetValue(),
			})
		}
	}
	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Labels < samples[j].Labels
	})
	return samples, nil
}

// Value returns the counter for name and labels, or zero when it never fired.
func (c *Collector) Value(name string, labels string) float64 {
	samples, err := c.Snapshot()
	if err != nil {
		return 0
	}
	for _, sample := range samples {
		if sample.Name == name && sample.Labels == labels {
			return sample.Value
		}
	}
	return 0
}

func sanitize(namespace string) string {
	namespace = strings.TrimSpace(strings.ToLower(namespace))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, namespace)
}
