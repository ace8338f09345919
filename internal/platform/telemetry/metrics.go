package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrCommand     = attribute.Key("retro.command")
)

// Command result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	CommandDuration       metric.Float64Histogram
	CommandTotal          metric.Int64Counter
}

// NewMetrics creates all metric instruments on a meter named after the
// service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}

	var err error
	if m.ServerRequestDuration, err = meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}

	if m.ServerRequestTotal, err = meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}

	if m.ClientRequestDuration, err = meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of outgoing HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.client.request.duration: %w", err)
	}

	if m.ClientRequestTotal, err = meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of outgoing HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.client.request.total: %w", err)
	}

	if m.CommandDuration, err = meter.Float64Histogram(
		"retro.command.duration",
		metric.WithDescription("Time from dispatch to resolution of board commands"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating retro.command.duration: %w", err)
	}

	if m.CommandTotal, err = meter.Int64Counter(
		"retro.command.total",
		metric.WithDescription("Total number of resolved board commands"),
		metric.WithUnit("{command}"),
	); err != nil {
		return nil, fmt.Errorf("creating retro.command.total: %w", err)
	}

	return m, nil
}

// RecordCommand records one resolved board command. Safe to call on a nil
// receiver.
func (m *Metrics) RecordCommand(ctx context.Context, command string, start time.Time, err error) {
	if m == nil {
		return
	}

	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}

	attrs := metric.WithAttributes(
		AttrCommand.String(command),
		AttrResult.String(result),
	)
	m.CommandDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	m.CommandTotal.Add(ctx, 1, attrs)
}
