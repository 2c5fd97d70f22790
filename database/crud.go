package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
)

// OrderDirection represents sort direction
type OrderDirection string

const (
	ASC  OrderDirection = "ASC"
	DESC OrderDirection = "DESC"
)

type whereClause struct {
	column string
	value  any
}

type orderClause struct {
	column    string
	direction OrderDirection
}

// QueryBuilder is a small typed helper over bun for the keyed-collection
// access this system needs: equality filters, ordering, whole-record writes.
type QueryBuilder[T any] struct {
	db       *DB
	wheres   []whereClause
	orders   []orderClause
	limitVal int
}

// Query creates a new QueryBuilder instance
func Query[T any](db *DB) *QueryBuilder[T] {
	return &QueryBuilder[T]{db: db}
}

// Where adds an equality condition
func (q *QueryBuilder[T]) Where(column string, value any) *QueryBuilder[T] {
	q.wheres = append(q.wheres, whereClause{column: column, value: value})
	return q
}

// OrderBy adds an ORDER BY clause
func (q *QueryBuilder[T]) OrderBy(column string, direction OrderDirection) *QueryBuilder[T] {
	q.orders = append(q.orders, orderClause{column: column, direction: direction})
	return q
}

// Limit sets the LIMIT clause
func (q *QueryBuilder[T]) Limit(limit int) *QueryBuilder[T] {
	q.limitVal = limit
	return q
}

func (q *QueryBuilder[T]) applyToSelect(query *bun.SelectQuery) *bun.SelectQuery {
	for _, w := range q.wheres {
		query = query.Where("? = ?", bun.Ident(w.column), w.value)
	}
	for _, o := range q.orders {
		if o.direction == DESC {
			query = query.OrderExpr("? DESC", bun.Ident(o.column))
		} else {
			query = query.OrderExpr("? ASC", bun.Ident(o.column))
		}
	}
	if q.limitVal > 0 {
		query = query.Limit(q.limitVal)
	}
	return query
}

// All executes the query and returns all matching records with automatic retry
func (q *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	var data []T
	err := WithRetry(ctx, func() error {
		data = nil // reset on retry
		query := q.applyToSelect(q.db.NewSelect().Model(&data))
		return query.Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute select query: %w", err)
	}
	return data, nil
}

// First returns the first matching record, or nil when nothing matches.
func (q *QueryBuilder[T]) First(ctx context.Context) (*T, error) {
	var data T
	err := WithRetry(ctx, func() error {
		query := q.applyToSelect(q.db.NewSelect().Model(&data)).Limit(1)
		return query.Scan(ctx)
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute first query: %w", err)
	}
	return &data, nil
}

// Count executes the query and returns the count of matching records
func (q *QueryBuilder[T]) Count(ctx context.Context) (int, error) {
	var count int
	err := WithRetry(ctx, func() error {
		var model T
		query := q.db.NewSelect().Model(&model)
		for _, w := range q.wheres {
			query = query.Where("? = ?", bun.Ident(w.column), w.value)
		}
		var err error
		count, err = query.Count(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}
	return count, nil
}

// Insert inserts a new record and returns it with automatic retry
func (q *QueryBuilder[T]) Insert(ctx context.Context, data *T) (*T, error) {
	err := WithRetry(ctx, func() error {
		_, err := q.db.NewInsert().Model(data).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute insert query: %w", err)
	}
	return data, nil
}

// Update writes the full record for every row matching the filters and
// reports the number of rows affected.
func (q *QueryBuilder[T]) Update(ctx context.Context, data *T) (int, error) {
	var rowsAffected int64
	err := WithRetry(ctx, func() error {
		query := q.db.NewUpdate().Model(data)
		for _, w := range q.wheres {
			query = query.Where("? = ?", bun.Ident(w.column), w.value)
		}
		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute update query: %w", err)
	}
	return int(rowsAffected), nil
}

// Delete deletes records matching the query with automatic retry
func (q *QueryBuilder[T]) Delete(ctx context.Context) (int, error) {
	var rowsAffected int64
	err := WithRetry(ctx, func() error {
		var model T
		query := q.db.NewDelete().Model(&model)
		for _, w := range q.wheres {
			query = query.Where("? = ?", bun.Ident(w.column), w.value)
		}
		res, err := query.Exec(ctx)
		if err != nil {
			return err
		}
		rowsAffected, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to execute delete query: %w", err)
	}
	return int(rowsAffected), nil
}

// Truncate removes every row of the model's table (shift close).
func (q *QueryBuilder[T]) Truncate(ctx context.Context) error {
	err := WithRetry(ctx, func() error {
		var model T
		_, err := q.db.NewTruncateTable().Model(&model).Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to execute truncate query: %w", err)
	}
	return nil
}
