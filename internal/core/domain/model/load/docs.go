// Package load contains the Load aggregate and its owned entities: the stop
// plan, freight items, accessorial charges, rate snapshots and document
// references. The stop-plan validator and the load status state machine live
// here; everything monetary is shopspring decimal, never float.
package load
