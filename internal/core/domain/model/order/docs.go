// Package order provides the domain model for finalized orders. It
// implements the Order aggregate root with its lines, derived total and
// lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root created at cart finalization
//   - Line: an immutable item/quantity/unit-price entry
//   - Status: a state machine over in_progress, placed, in_transit,
//     cancelled and delivered
//
// Key business rules:
//   - an order is written with status placed and at least one line
//   - the total is derived from line subtotals, never supplied by callers
//   - status changes after placement arrive only through external triggers
//     and must follow the defined transitions
//   - orders are never deleted, only transitioned
package order
