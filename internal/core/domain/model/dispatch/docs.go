// Package dispatch contains the Dispatch aggregate and the append-only
// TrackingEvent entity. A dispatch ties a load to a driver/carrier pairing
// and moves through its own acceptance and progress state machine; every
// recorded status change produces exactly one tracking event.
package dispatch
