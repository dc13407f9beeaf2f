// Package timeouts defines shared timeout constants for the HTTP surface.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// FormSession is how long an untouched form session survives before it is
// treated as abandoned.
const FormSession = 30 * time.Minute

// SessionSweep is the interval between abandoned-session sweeps.
const SessionSweep = time.Minute
