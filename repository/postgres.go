package repository

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Konsultn-Engineering/beankit/beaninfo"
)

// column binds one property descriptor to its database column.
type column struct {
	name  string
	prop  beaninfo.PropertyDescriptor
	field string
}

// Postgres is a CrudRepository backed by PostgreSQL via pgx. Columns are
// derived from introspected property names. Rows are materialized through
// property mutators; read-only properties are populated through their
// schema-recorded backing fields.
type Postgres[T any, ID comparable] struct {
	pool    *pgxpool.Pool
	table   string
	elem    reflect.Type
	columns []column
	idCol   column
}

// NewPostgres creates a PostgreSQL repository for T over the given pool. The
// table name defaults to the pluralized snake_case entity name.
func NewPostgres[T any, ID comparable](pool *pgxpool.Pool, opts ...Option) (*Postgres[T, ID], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var zero T
	t := reflect.TypeOf(zero)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("repository: entity type must be a pointer to struct, got %v", t)
	}

	info, ok := cfg.introspector.BeanInfo(t)
	if !ok {
		return nil, fmt.Errorf("repository: no properties resolved for %s", t)
	}

	columns := make([]column, 0, len(info.Properties))
	var idCol column
	var hasID bool
	for _, d := range info.Properties {
		c := column{
			name:  columnName(d.Name),
			prop:  d,
			field: backingField(t.Elem(), d.Name),
		}
		columns = append(columns, c)
		if d.Name == cfg.idProperty {
			idCol = c
			hasID = true
		}
	}
	if !hasID {
		return nil, fmt.Errorf("repository: %s has no %q property", t, cfg.idProperty)
	}

	table := cfg.table
	if table == "" {
		table = collectionName(t.Elem().Name())
	}

	return &Postgres[T, ID]{
		pool:    pool,
		table:   table,
		elem:    t.Elem(),
		columns: columns,
		idCol:   idCol,
	}, nil
}

// Table returns the table name the repository operates on.
func (r *Postgres[T, ID]) Table() string { return r.table }

// insertSQL builds the upsert statement covering all mapped columns.
func (r *Postgres[T, ID]) insertSQL() string {
	cols := make([]string, len(r.columns))
	args := make([]string, len(r.columns))
	var sets []string
	for i, c := range r.columns {
		cols[i] = c.name
		args[i] = fmt.Sprintf("$%d", i+1)
		if c.name != r.idCol.name {
			sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", c.name, c.name))
		}
	}

	conflict := "DO NOTHING"
	if len(sets) > 0 {
		conflict = "DO UPDATE SET " + strings.Join(sets, ", ")
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) %s",
		r.table, strings.Join(cols, ", "), strings.Join(args, ", "), r.idCol.name, conflict,
	)
}

func (r *Postgres[T, ID]) selectSQL() string {
	cols := make([]string, len(r.columns))
	for i, c := range r.columns {
		cols[i] = c.name
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), r.table)
}

func (r *Postgres[T, ID]) Save(ctx context.Context, entity T) (T, error) {
	ev := reflect.ValueOf(entity)
	vals := make([]any, len(r.columns))
	for i, c := range r.columns {
		vals[i] = unwrap(readProperty(ev, c.prop)).Interface()
	}
	if _, err := r.pool.Exec(ctx, r.insertSQL(), vals...); err != nil {
		return entity, fmt.Errorf("save into %s: %w", r.table, err)
	}
	return entity, nil
}

func (r *Postgres[T, ID]) SaveAll(ctx context.Context, entities []T) ([]T, error) {
	saved := make([]T, 0, len(entities))
	for _, e := range entities {
		s, err := r.Save(ctx, e)
		if err != nil {
			return saved, err
		}
		saved = append(saved, s)
	}
	return saved, nil
}

func (r *Postgres[T, ID]) FindByID(ctx context.Context, id ID) (T, error) {
	var zero T
	query := fmt.Sprintf("%s WHERE %s = $1", r.selectSQL(), r.idCol.name)
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return zero, fmt.Errorf("find in %s: %w", r.table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, err
		}
		return zero, ErrNotFound
	}
	return r.materialize(rows)
}

func (r *Postgres[T, ID]) ExistsByID(ctx context.Context, id ID) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", r.table, r.idCol.name)
	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists in %s: %w", r.table, err)
	}
	return exists, nil
}

func (r *Postgres[T, ID]) FindAll(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("%s ORDER BY %s", r.selectSQL(), r.idCol.name)
	return r.queryMany(ctx, query)
}

func (r *Postgres[T, ID]) FindAllByID(ctx context.Context, ids []ID) ([]T, error) {
	query := fmt.Sprintf("%s WHERE %s = ANY($1) ORDER BY %s", r.selectSQL(), r.idCol.name, r.idCol.name)
	return r.queryMany(ctx, query, ids)
}

func (r *Postgres[T, ID]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+r.table).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.table, err)
	}
	return count, nil
}

func (r *Postgres[T, ID]) DeleteByID(ctx context.Context, id ID) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", r.table, r.idCol.name)
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete from %s: %w", r.table, err)
	}
	return nil
}

func (r *Postgres[T, ID]) Delete(ctx context.Context, entity T) error {
	id, err := r.idOf(entity)
	if err != nil {
		return err
	}
	return r.DeleteByID(ctx, id)
}

func (r *Postgres[T, ID]) DeleteAllOf(ctx context.Context, entities []T) error {
	ids := make([]ID, 0, len(entities))
	for _, e := range entities {
		id, err := r.idOf(e)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ANY($1)", r.table, r.idCol.name)
	if _, err := r.pool.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("delete from %s: %w", r.table, err)
	}
	return nil
}

func (r *Postgres[T, ID]) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, "DELETE FROM "+r.table); err != nil {
		return fmt.Errorf("delete from %s: %w", r.table, err)
	}
	return nil
}

func (r *Postgres[T, ID]) idOf(entity T) (ID, error) {
	v := unwrap(readProperty(reflect.ValueOf(entity), r.idCol.prop))
	id, ok := v.Interface().(ID)
	if !ok {
		var zero ID
		return zero, fmt.Errorf("repository: id property has type %s, want %T", v.Type(), zero)
	}
	return id, nil
}

func (r *Postgres[T, ID]) queryMany(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.table, err)
	}
	defer rows.Close()

	var all []T
	for rows.Next() {
		entity, err := r.materialize(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, entity)
	}
	return all, rows.Err()
}

// materialize builds a fresh entity from the current row. Column values flow
// through mutators where available, otherwise into the backing field.
func (r *Postgres[T, ID]) materialize(rows pgx.Rows) (T, error) {
	var zero T
	values, err := rows.Values()
	if err != nil {
		return zero, err
	}

	ptr := reflect.New(r.elem)
	for i, c := range r.columns {
		if values[i] == nil {
			continue
		}
		if err := writeProperty(ptr, c.prop, c.field, reflect.ValueOf(values[i])); err != nil {
			return zero, fmt.Errorf("materialize %s: %w", r.table, err)
		}
	}
	return ptr.Interface().(T), nil
}

var _ CrudRepository[*struct{}, string] = (*Postgres[*struct{}, string])(nil)
