// Package sink builds the runtime transports for normalized configurations:
// a console transport writing to the standard streams and file transports
// appending to a log file.
package sink
