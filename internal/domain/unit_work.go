package domain

import "context"

// UnitOfWork groups task writes and their outbox events in one transaction.
type UnitOfWork interface {
	Task() TaskRepository
	Outbox() OutboxRepository
	// Execute runs fn in a transaction. fn returning an error rolls back every
	// write made through the UnitOfWork it received.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}
