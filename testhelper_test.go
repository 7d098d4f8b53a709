package localize_test

import "time"

// Polling bounds for require.Eventually in concurrency tests.
const (
	testWait = 2 * time.Second
	testTick = 5 * time.Millisecond
)
