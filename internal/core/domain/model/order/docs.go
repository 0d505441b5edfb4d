// Package order provides the domain model of the order lifecycle engine: the
// Order aggregate, its line-item Details, and the transition validator that
// encodes which actor may move an order between which statuses.
//
// The package includes:
//   - Order: aggregate root with write-once lifecycle timestamps
//   - Status / PaymentStatus: the two state axes, jointly constrained
//   - Decide: the pure transition validator mapping (status, payment, action,
//     role) to a Transition or a rejection
//   - Event: merchant-facing notification payloads
//   - NumberGenerator: time-derived external order numbers
//
// Key business rules:
//   - Orders advance PendingPayment -> ToBeConfirmed -> Confirmed ->
//     DeliveryInProgress -> Completed, with Cancelled reachable from the
//     first four
//   - Customers cannot cancel past ToBeConfirmed; merchants cannot cancel
//     ToBeConfirmed (they reject instead) or Cancelled orders
//   - Paid orders that get cancelled or rejected are refunded (simulated)
//   - The background reaper's two forced transitions (payment timeout,
//     delivery timeout) are ordinary actions with RoleSystem
//
// All mutation flows through Apply with a Transition from Decide, so
// interactive calls and the reaper share one rule set.
package order
