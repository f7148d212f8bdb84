// Package observability provides OpenTelemetry tracing and metrics for the
// ope matching primitive.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("ope"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("ope"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("ope"))
//	m, _ := matcher.New(512, matcher.WithObserver(metrics))
package observability
