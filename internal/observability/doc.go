// Package observability provides structured logging and Prometheus metrics
// for the metapath engine and command line.
//
// Logging uses zerolog. NewLogger builds a logger from LoggingConfig with
// json or console output; engine packages receive the logger through their
// WithLogger options and default to a no-op logger.
//
// Metrics are grouped in SearchMetrics and registered on a caller-supplied
// registerer so tests and the command line can use private registries.
package observability
