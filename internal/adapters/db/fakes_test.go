package db_test

import (
	"context"
	"errors"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ammerola/buyback-be/internal/adapters/db"
)

// fakeQuerier records statements and answers them from canned results
type fakeQuerier struct {
	row      func(sql string, args []any) pgx.Row
	rows     func(sql string, args []any) (pgx.Rows, error)
	exec     func(sql string, args []any) (pgconn.CommandTag, error)
	batchErr error

	rowCalls  int
	execArgs  [][]any
	execSQL   []string
	batches   []*pgx.Batch
}

var _ db.Querier = (*fakeQuerier)(nil)

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	f.execArgs = append(f.execArgs, args)
	if f.exec == nil {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	return f.exec(sql, args)
}

func (f *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.rows == nil {
		return &fakeRows{}, nil
	}
	return f.rows(sql, args)
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.rowCalls++
	if f.row == nil {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return f.row(sql, args)
}

func (f *fakeQuerier) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	f.batches = append(f.batches, b)
	return &fakeBatchResults{err: f.batchErr}
}

// fakeRow assigns its values positionally; nil values leave the target zero
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

type fakeRows struct {
	data [][]any
	pos  int
	err  error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	return assign(dest, r.data[r.pos-1])
}

func (r *fakeRows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

type fakeBatchResults struct {
	err error
}

func (b *fakeBatchResults) Exec() (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("INSERT 0 1"), b.err
}

func (b *fakeBatchResults) Query() (pgx.Rows, error) { return nil, b.err }
func (b *fakeBatchResults) QueryRow() pgx.Row        { return fakeRow{err: b.err} }
func (b *fakeBatchResults) Close() error             { return nil }

func assign(dest []any, values []any) error {
	if len(values) > len(dest) {
		return errors.New("more values than scan targets")
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		target := reflect.ValueOf(dest[i]).Elem()
		value := reflect.ValueOf(v)
		if !value.Type().AssignableTo(target.Type()) {
			return errors.New("value of type " + value.Type().String() + " cannot scan into " + target.Type().String())
		}
		target.Set(value)
	}
	return nil
}

func queuedSQL(b *pgx.Batch) []string {
	out := make([]string, 0, len(b.QueuedQueries))
	for _, q := range b.QueuedQueries {
		out = append(out, q.SQL)
	}
	return out
}
