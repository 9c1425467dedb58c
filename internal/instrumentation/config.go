package instrumentation

import "os"

// Environment variables for instrumentation configuration.
const (
	EnvMetricsEnabled = "METRICS_ENABLED"
	EnvMetricsAddr    = "METRICS_ADDR"
)

// Config holds instrumentation configuration.
type Config struct {
	// Enabled controls whether metrics are collected and exported at all.
	// When false the provider hands out no-op recorders.
	Enabled bool

	// ServiceName identifies this service in exported metrics.
	ServiceName string

	// ServiceVersion is the running build version.
	ServiceVersion string

	// ServiceInstanceID distinguishes replicas; defaults to the hostname.
	ServiceInstanceID string
}

// DefaultConfig returns the instrumentation configuration with defaults
// applied, honoring the METRICS_ENABLED environment variable.
func DefaultConfig(serviceName, serviceVersion string) Config {
	return Config{
		Enabled:        os.Getenv(EnvMetricsEnabled) == "true",
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
	}
}
