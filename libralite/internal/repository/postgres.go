package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/skhanzad/libralite/pkg/postgres"
	"go.uber.org/zap"
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type repository struct {
	pool *pgxpool.Pool
	db   querier
	inTx bool
	log  *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil pool")
	}
	return &repository{
		pool: db,
		db:   db,
		log:  log.Named("repo"),
	}, nil
}

const (
	itemsTableName        = `items`
	membersTableName      = `members`
	applicationsTableName = `applications`
	loansTableName        = `loans`
	finesTableName        = `fines`
	holdsTableName        = `holds`
	holdShelfTableName    = `hold_shelf`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) InTx(ctx context.Context, fn func(tx Store) error) error {
	if r.inTx {
		return fn(r)
	}
	return postgres.RunInTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&repository{pool: r.pool, db: tx, inTx: true, log: r.log})
	})
}

// forUpdate locks selected rows when running inside InTx.
func (r *repository) forUpdate(q sq.SelectBuilder) sq.SelectBuilder {
	if r.inTx {
		return q.Suffix("for update")
	}
	return q
}

func getOne[T any](ctx context.Context, r *repository, q sq.Sqlizer, notFound error) (T, error) {
	var zero T
	query, args, err := q.ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	defer rows.Close()

	v, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, notFound
		}
		r.log.Error("getOne", zap.String("q", query), zap.Error(err))
		return zero, err
	}
	return v, nil
}

func getMany[T any](ctx context.Context, r *repository, q sq.Sqlizer) ([]T, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return items, nil
}

func exists(ctx context.Context, r *repository, q sq.SelectBuilder) (bool, error) {
	query, args, err := q.Prefix("select exists (").Suffix(")").ToSql()
	if err != nil {
		return false, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return pgx.CollectOneRow(rows, pgx.RowTo[bool])
}

func count(ctx context.Context, r *repository, q sq.SelectBuilder) (int, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return pgx.CollectOneRow(rows, pgx.RowTo[int])
}

func exec(ctx context.Context, r *repository, q sq.Sqlizer, notFound error) error {
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if notFound != nil && tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
