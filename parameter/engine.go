package parameter

import "time"

// Engine plumbing
const (
	// EventQueueSize must be a power of two for the ring buffer mask
	EventQueueSize  = 1024
	EventBufferMask = EventQueueSize - 1

	// TickInterval is the nominal host frame cadence
	TickInterval = time.Second / 60
)
