// Package infra contains technical adapters such as the console and file
// transports, the ANSI colorizer, diagnostics logging and metrics
// exporters. These packages should depend only on the interfaces defined
// in the core packages.
package infra
