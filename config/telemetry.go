package config

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const ServiceName = "frushh-checkout"

// SetupTracing installs a global tracer provider. When tracing is disabled
// the default no-op provider stays in place and the returned shutdown is a
// no-op.
func SetupTracing() func(context.Context) error {
	if !AppConfig.TracingEnabled {
		return func(context.Context) error { return nil }
	}

	exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		log.Printf("Tracing disabled, exporter init failed: %v", err)
		return func(context.Context) error { return nil }
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", ServiceName),
			attribute.String("deployment.environment", AppConfig.AppEnv),
		)),
	)
	otel.SetTracerProvider(tp)

	log.Println("Tracing enabled (stdout exporter)")
	return tp.Shutdown
}
