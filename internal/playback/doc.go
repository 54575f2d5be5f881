// Package playback implements the watch-progress synchronization flow between
// the embedded player and the interaction service's history store.
//
// The flow mirrors the hosted web client: an external player process (the
// iframe analog) emits JSON messages; the [Bridge] validates them into a
// tagged union; the [Throttle] decides when accumulated forward progress
// warrants a network write; the [Reporter] performs the best-effort history
// write; and [Session] ties the pieces to a playback lifetime: one immediate
// save at start, one per threshold crossing, and one unconditional flush at
// teardown. ResolveResume applies a prior unfinished position on startup.
package playback
