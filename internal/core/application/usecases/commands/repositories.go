// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence, with domain failures reported through the results package.
package commands

import (
	"context"

	"rental/internal/core/ports"
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

	// MotorcycleRepoFactory provides access to the motorcycle repository
	// within a transaction.
	MotorcycleRepoFactory interface {
		MotorcycleRepository() ports.MotorcycleRepository
	}

	// DriverRepoFactory provides access to the driver repository within a
	// transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// RentRepoFactory provides access to the rental repository within a
	// transaction.
	RentRepoFactory interface {
		RentRepository() ports.RentRepository
	}

	// MotorcycleUoW manages transactions for motorcycle-only operations.
	MotorcycleUoW interface {
		TxManager
		MotorcycleRepoFactory
	}

	// MotorcycleUoWFactory creates new motorcycle unit of work instances.
	MotorcycleUoWFactory interface {
		Create() MotorcycleUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// RentalUoW manages transactions that span motorcycles, drivers and
	// rentals. Used by the rental workflow, which reads all three aggregates
	// and must see a consistent picture.
	RentalUoW interface {
		TxManager
		MotorcycleRepoFactory
		DriverRepoFactory
		RentRepoFactory
	}

	// RentalUoWFactory creates new cross-aggregate unit of work instances.
	RentalUoWFactory interface {
		Create() RentalUoW
	}
)
