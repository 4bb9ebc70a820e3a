package uow

import (
	"context"
	user "user-collection-service/internal/domain/ports/output/user"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename UnitOfWork.go
//go:generate mockery --name Transaction --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename Transaction.go

type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Transaction holds exclusive access to the collection until Commit or
// Rollback is called. Rollback after the transaction has finished is a no-op;
// a second Commit returns an error.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	UserRepository() user.UserRepository
}
