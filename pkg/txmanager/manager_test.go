package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (f *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (f *fakeTx) Commit() error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs    []*fakeTx
	begins int
	opts   []*sql.TxOptions
}

func (f *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	f.begins++
	f.opts = append(f.opts, opts)
	tx := &fakeTx{}
	f.txs = append(f.txs, tx)
	return tx, nil
}

func TestDoSerializable_CommitsOnSuccess(t *testing.T) {
	db := &fakeBeginner{}
	mgr := NewTransactionManager(db)

	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	require.Equal(t, 1, db.begins)
	assert.Equal(t, sql.LevelSerializable, db.opts[0].Isolation)
	assert.True(t, db.txs[0].committed)
	assert.False(t, db.txs[0].rolledBack)
}

func TestDoSerializable_RetriesOnSerializationFailure(t *testing.T) {
	db := &fakeBeginner{}
	mgr := NewTransactionManager(db)

	serErr := &pq.Error{Code: "40001"}
	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return serErr
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, db.begins)
	assert.True(t, db.txs[0].rolledBack)
	assert.True(t, db.txs[1].rolledBack)
	assert.True(t, db.txs[2].committed)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	db := &fakeBeginner{}
	mgr := NewTransactionManager(db)

	serErr := &pq.Error{Code: "40001"}
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		return serErr
	})
	require.Error(t, err)
	assert.True(t, IsSerializationFailure(err))
	assert.Equal(t, maxSerializableRetries, db.begins)
}

func TestDo_RollsBackOnError(t *testing.T) {
	db := &fakeBeginner{}
	mgr := NewTransactionManager(db)

	boom := errors.New("boom")
	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.Equal(t, 1, db.begins)
	assert.True(t, db.txs[0].rolledBack)
	assert.False(t, db.txs[0].committed)
}

func TestDo_ReusesActiveTransaction(t *testing.T) {
	db := &fakeBeginner{}
	mgr := NewTransactionManager(db)

	err := mgr.Do(context.Background(), func(outer context.Context) error {
		// Вложенный вызов не должен открывать вторую транзакцию
		return mgr.Do(outer, func(inner context.Context) error {
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, db.begins)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40001"}))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, IsSerializationFailure(errors.New("plain error")))
	assert.False(t, IsSerializationFailure(nil))
}
