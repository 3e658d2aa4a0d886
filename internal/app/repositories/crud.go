package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/apperrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/dberrors"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/helpers"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/logger"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so repository methods run inside
// or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// psql builds PostgreSQL statements with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// table implements the create/get/list/update/delete set shared by every entity.
// T must carry db tags for every name in columns.
type table[T any] struct {
	name     string
	entity   string
	columns  []string
	notFound error
}

func (t table[T]) returning() string {
	return "RETURNING " + strings.Join(t.columns, ", ")
}

func (t table[T]) get(ctx context.Context, q Querier, id int64) (*T, error) {
	sql, args, err := psql.Select(t.columns...).
		From(t.name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building get SQL")
		return nil, fmt.Errorf("failed to build get %s query: %w", t.entity, err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Int64("id", id).Msg("Error executing get query")
		return nil, fmt.Errorf("error getting %s: %w", t.entity, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, t.notFound
		}
		logger.Error().Err(err).Str("table", t.name).Int64("id", id).Msg("Error scanning row")
		return nil, fmt.Errorf("error scanning %s: %w", t.entity, err)
	}

	return item, nil
}

// list returns rows matching where, ordered by orderBy, inside the pagination window.
// A nil where selects every row and a zero limit removes the upper bound.
func (t table[T]) list(ctx context.Context, q Querier, where squirrel.Sqlizer, window helpers.Window, orderBy string) ([]*T, error) {
	builder := psql.Select(t.columns...).
		From(t.name).
		OrderBy(orderBy).
		Offset(window.Skip)
	if window.Limit > 0 {
		builder = builder.Limit(window.Limit)
	}
	if where != nil {
		builder = builder.Where(where)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building list SQL")
		return nil, fmt.Errorf("failed to build list %s query: %w", t.entity, err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error executing list query")
		return nil, fmt.Errorf("error listing %s: %w", t.entity, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error scanning rows")
		return nil, fmt.Errorf("error scanning %s rows: %w", t.entity, err)
	}

	return items, nil
}

func (t table[T]) insert(ctx context.Context, q Querier, values map[string]interface{}) (*T, error) {
	sql, args, err := psql.Insert(t.name).
		SetMap(values).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building insert SQL")
		return nil, fmt.Errorf("failed to build create %s query: %w", t.entity, err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, t.translateWrite(err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, t.translateWrite(err)
	}

	return item, nil
}

func (t table[T]) update(ctx context.Context, q Querier, id int64, values map[string]interface{}) (*T, error) {
	sql, args, err := psql.Update(t.name).
		SetMap(values).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(t.returning()).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building update SQL")
		return nil, fmt.Errorf("failed to build update %s query: %w", t.entity, err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, t.translateWrite(err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, t.notFound
		}
		return nil, t.translateWrite(err)
	}

	return item, nil
}

func (t table[T]) delete(ctx context.Context, q Querier, id int64) error {
	sql, args, err := psql.Delete(t.name).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error building delete SQL")
		return fmt.Errorf("failed to build delete %s query: %w", t.entity, err)
	}

	cmdTag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyError(err) {
			return apperrors.NewConflictError(fmt.Sprintf("%s is still referenced by other records", t.entity))
		}
		logger.Error().Err(err).Str("table", t.name).Int64("id", id).Msg("Error executing delete query")
		return fmt.Errorf("error deleting %s: %w", t.entity, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return t.notFound
	}

	return nil
}

func (t table[T]) count(ctx context.Context, q Querier, where squirrel.Sqlizer) (int64, error) {
	builder := psql.Select("COUNT(*)").From(t.name)
	if where != nil {
		builder = builder.Where(where)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count %s query: %w", t.entity, err)
	}

	var n int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error executing count query")
		return 0, fmt.Errorf("error counting %s: %w", t.entity, err)
	}
	return n, nil
}

func (t table[T]) exists(ctx context.Context, q Querier, where squirrel.Sqlizer) (bool, error) {
	sql, args, err := psql.Select("1").
		From(t.name).
		Where(where).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build %s existence query: %w", t.entity, err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("table", t.name).Msg("Error checking existence")
		return false, fmt.Errorf("error checking %s existence: %w", t.entity, err)
	}
	return exists, nil
}

// translateWrite maps constraint violations to application errors naming the offending column
func (t table[T]) translateWrite(err error) error {
	constraint := dberrors.ConstraintName(err)

	switch {
	case dberrors.IsDuplicateKeyError(err):
		field := constraintField(t.name, constraint, "_key")
		return apperrors.NewAlreadyExistsError(fmt.Sprintf("%s with this %s already exists", t.entity, field))
	case dberrors.IsForeignKeyError(err):
		return apperrors.NewInvalidReferenceError(constraintField(t.name, constraint, "_fkey"))
	case dberrors.IsCheckViolation(err):
		field := constraintField(t.name, constraint, "_check")
		if field == "" {
			return apperrors.NewValidationError("", "violates a storage constraint")
		}
		return apperrors.NewValidationError(field, "violates constraint "+constraint)
	}

	logger.Error().Err(err).Str("table", t.name).Msg("Error executing write query")
	return fmt.Errorf("error writing %s: %w", t.entity, err)
}

// constraintField recovers the column from PostgreSQL's default constraint names,
// e.g. observations_species_id_fkey -> species_id
func constraintField(tableName, constraint, suffix string) string {
	field := strings.TrimPrefix(constraint, tableName+"_")
	return strings.TrimSuffix(field, suffix)
}

// eqFilter collects the equality conditions whose value is present
type eqFilter squirrel.Eq

func (f eqFilter) add(column string, value interface{}, present bool) eqFilter {
	if present {
		f[column] = value
	}
	return f
}

func (f eqFilter) sqlizer() squirrel.Sqlizer {
	if len(f) == 0 {
		return nil
	}
	return squirrel.Eq(f)
}
