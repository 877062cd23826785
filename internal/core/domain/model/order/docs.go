// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order advances through exactly one path:
//
//	Placed ──> Accepted ──> OutForDelivery ──> Delivered
//
// Each forward step is a claim: Accepted fixes the vendor identity,
// OutForDelivery fixes the delivery worker identity, and neither can ever be
// rewritten. The aggregate validates every transition locally; committing a
// transition safely under contention is the job of the repository's
// conditional update, which re-checks the expected status atomically at write
// time.
package order
