package sql

import (
	"context"
	"database/sql"
)

type (
	Client interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
		NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
		GetContext(ctx context.Context, dest any, query string, args ...any) error
		SelectContext(ctx context.Context, dest any, query string, args ...any) error
	}

	ClientTx interface {
		Client
		Commit() error
		Rollback() error
	}

	TxClient interface {
		Client
		Begin(ctx context.Context) (ClientTx, error)
	}

	Database interface {
		TxClient
		Close(ctx context.Context)
	}
)

// NewTransactionalClient routes queries to the transaction stored in the
// context by Transaction.WithinContext, falling back to the bare client.
func NewTransactionalClient(client Client) Client {
	return transactionalClient{client}
}

type transactionalClient struct {
	client Client
}

func (c transactionalClient) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.clientFor(ctx).ExecContext(ctx, query, args...)
}

func (c transactionalClient) NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error) {
	return c.clientFor(ctx).NamedExecContext(ctx, query, arg)
}

func (c transactionalClient) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.clientFor(ctx).GetContext(ctx, dest, query, args...)
}

func (c transactionalClient) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.clientFor(ctx).SelectContext(ctx, dest, query, args...)
}

func (c transactionalClient) clientFor(ctx context.Context) Client {
	if tx, ok := ctx.Value(dbTransactionContextKey).(txData); ok {
		return tx.ClientTx
	}

	return c.client
}
