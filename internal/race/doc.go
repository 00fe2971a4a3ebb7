// Package race runs competing operations and keeps the first outcome.
//
// Every operation receives a context that is cancelled as soon as the race is
// decided, so losers can stop early. Operations that ignore their context keep
// running in the background until they return; their results are discarded.
package race
