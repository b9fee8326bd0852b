package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const (
	tableRecords    = "records"
	columnName      = "name"
	columnValue     = "value"
	columnUpdatedAt = "updated_at"
)

// sqliteRecordRepo implements RecordRepo on the records table.
type sqliteRecordRepo struct {
	drv *entsql.Driver
}

func (r *sqliteRecordRepo) Get(ctx context.Context, key string) ([]byte, error) {
	return getRecord(ctx, r.drv, key)
}

func (r *sqliteRecordRepo) Put(ctx context.Context, key string, value []byte) error {
	return putRecord(ctx, r.drv, key, value)
}

func (r *sqliteRecordRepo) Delete(ctx context.Context, key string) error {
	return deleteRecord(ctx, r.drv, key)
}

func (r *sqliteRecordRepo) Update(ctx context.Context, fn func(tx RecordTx) error) error {
	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(&sqliteRecordTx{eq: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// sqliteRecordTx scopes record access to one open transaction.
type sqliteRecordTx struct {
	eq dialect.ExecQuerier
}

func (t *sqliteRecordTx) Get(ctx context.Context, key string) ([]byte, error) {
	return getRecord(ctx, t.eq, key)
}

func (t *sqliteRecordTx) Put(ctx context.Context, key string, value []byte) error {
	return putRecord(ctx, t.eq, key, value)
}

func (t *sqliteRecordTx) Delete(ctx context.Context, key string) error {
	return deleteRecord(ctx, t.eq, key)
}

func getRecord(ctx context.Context, eq dialect.ExecQuerier, key string) ([]byte, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(columnValue).
		From(entsql.Table(tableRecords)).
		Where(entsql.EQ(columnName, key)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := eq.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query record %q: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("read record %q: %w", key, err)
		}
		return nil, ErrNotFound
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return nil, fmt.Errorf("scan record %q: %w", key, err)
	}
	return []byte(value), nil
}

func putRecord(ctx context.Context, eq dialect.ExecQuerier, key string, value []byte) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(tableRecords).
		Columns(columnName, columnValue, columnUpdatedAt).
		Values(key, string(value), time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns(columnName),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := eq.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save record %q: %w", key, err)
	}
	return nil
}

func deleteRecord(ctx context.Context, eq dialect.ExecQuerier, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(tableRecords).
		Where(entsql.EQ(columnName, key)).
		Query()

	if err := eq.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}
