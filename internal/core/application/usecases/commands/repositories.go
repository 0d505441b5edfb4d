// Package commands contains the lifecycle engine's write operations: one
// command and handler per row of the transition table, plus submission,
// repeat-order and the two reaper scans. Every handler follows the same
// shape: validate the command, open a unit of work, load the order, ask the
// domain validator, persist under a per-order check-and-set, commit.
package commands

import (
	"context"

	"github.com/likecate/sky-take-out/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CartFactory provides access to the shopping cart within a transaction.
	CartFactory interface {
		Cart() ports.Cart
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by every plain lifecycle transition.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions spanning the order store and the cart.
	// Used by submission (order + details + cart clear, all-or-nothing)
	// and by repeat-order (details copied back into the cart).
	UoW interface {
		TxManager
		OrderRepoFactory
		CartFactory
	}

	// UoWFactory creates new unit of work instances for order+cart operations.
	UoWFactory interface {
		Create() UoW
	}
)
