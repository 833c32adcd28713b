// Package domain defines the core business entities and value objects
// of the workout tracker: users, body parts, exercises, workouts,
// exercise blocks and sets. Entities reconstructed from storage re-run
// all invariants, and value objects are immutable validated wrappers
// compared by value.
package domain
