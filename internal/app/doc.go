// Package app wires configuration, logging, telemetry, services and the
// HTTP router into a runnable application container.
package app
