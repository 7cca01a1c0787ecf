package main

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/hyp3rd/neurketa"
	"github.com/hyp3rd/neurketa/pkg/middleware"
)

// This example shows how to wrap a Collector with OpenTelemetry middleware.
func main() {
	collector, err := neurketa.NewCollector[float64]()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	// Use noop providers for a minimal example. Replace with real SDK providers in production.
	meter := noop.NewMeterProvider().Meter("neurketa/examples")
	tracer := tracenoop.NewTracerProvider().Tracer("neurketa/examples")

	// Apply OTel tracing and metrics middleware.
	svc := neurketa.ApplyMiddleware[float64](collector,
		func(next neurketa.Service[float64]) neurketa.Service[float64] {
			return middleware.NewOTelTracingMiddleware(next, tracer, middleware.WithCommonAttributes[float64](
				attribute.String("component", "neurketa"),
			))
		},
		func(next neurketa.Service[float64]) neurketa.Service[float64] {
			mw, _ := middleware.NewOTelMetricsMiddleware(next, meter)

			return mw
		},
	)

	for _, v := range []float64{0.12, 0.31, 0.08, 0.27} {
		_ = svc.Record(context.Background(), "request.seconds", v)
	}

	summary, err := svc.Summary(context.Background(), "request.seconds")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)

		return
	}

	fmt.Fprintf(os.Stdout, "mean=%.3f p50=%.3f\n", summary.Mean, summary.Percentiles[0].Value)
}
