package constants

import "time"

const (
	// AsyncLookupDelay is the artificial wait before an asynchronous lookup
	// yields its result.
	AsyncLookupDelay = 100 * time.Millisecond

	DefaultServiceName = "userhub"
	DefaultLogLevel    = "INFO"

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
