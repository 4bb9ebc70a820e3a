package uow

import (
	"context"
	"errors"
	ports "user-collection-service/internal/domain/ports/output"
	"user-collection-service/internal/domain/ports/output/uow"
	user_port "user-collection-service/internal/domain/ports/output/user"
	"user-collection-service/internal/infrastructure/persistence/memory"
	user_repo "user-collection-service/internal/infrastructure/persistence/memory/user"
)

var errTxDone = errors.New("transaction already finished")

type MemoryUnitOfWork struct {
	store *memory.Store
	log   ports.Logger
}

func NewMemoryUOW(store *memory.Store, log ports.Logger) uow.UnitOfWork {
	return &MemoryUnitOfWork{store: store, log: log}
}

func (u *MemoryUnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &MemoryTransaction{store: u.store, state: u.store.Begin(), log: u.log}, nil
}

type MemoryTransaction struct {
	store *memory.Store
	state *memory.State
	log   ports.Logger
	done  bool
}

func (t *MemoryTransaction) Commit(ctx context.Context) error {
	if t.done {
		return errTxDone
	}
	t.done = true
	t.store.Commit(t.state)
	return nil
}

// Rollback discards uncommitted writes. It is a no-op after Commit so callers
// can defer it unconditionally.
func (t *MemoryTransaction) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.Release()
	return nil
}

func (t *MemoryTransaction) UserRepository() user_port.UserRepository {
	return user_repo.NewUserRepository(t.state, t.log)
}
