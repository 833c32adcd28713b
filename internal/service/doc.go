// Package service orchestrates domain entities and stores into the
// application's use cases. Each service validates input with domain
// value objects, runs the check-then-act protocol against its stores,
// and translates store sentinels into classified service errors.
//
// Multi-step writes that must stay consistent (detaching body parts
// from a workout, renumbering sets after a deletion) run inside a
// database transaction via store.TxRunner.
package service
