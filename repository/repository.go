// Package repository provides a generic CRUD contract plus in-memory and
// PostgreSQL implementations driven by introspected property descriptors.
package repository

import (
	"context"
	"errors"
	"reflect"

	"github.com/Konsultn-Engineering/beankit/beaninfo"
)

// ErrNotFound is returned when no entity exists for a requested id.
var ErrNotFound = errors.New("repository: entity not found")

// Introspector resolves a type's property descriptors. Satisfied by
// *beaninfo.Chain and *cache.InfoCache.
type Introspector interface {
	BeanInfo(t reflect.Type) (*beaninfo.BeanInfo, bool)
}

// CrudRepository defines generic CRUD operations for entities of type T
// identified by ID.
type CrudRepository[T any, ID comparable] interface {
	// Save persists the entity and returns the persisted instance. Use the
	// returned instance for further operations: saving may have assigned a
	// generated identifier.
	Save(ctx context.Context, entity T) (T, error)

	// SaveAll persists all given entities.
	SaveAll(ctx context.Context, entities []T) ([]T, error)

	// FindByID retrieves an entity by its id, or ErrNotFound.
	FindByID(ctx context.Context, id ID) (T, error)

	// ExistsByID reports whether an entity with the given id exists.
	ExistsByID(ctx context.Context, id ID) (bool, error)

	// FindAll returns all entities.
	FindAll(ctx context.Context) ([]T, error)

	// FindAllByID returns the entities matching the given ids. Ids without a
	// matching entity are skipped.
	FindAllByID(ctx context.Context, ids []ID) ([]T, error)

	// Count returns the number of entities available.
	Count(ctx context.Context) (int64, error)

	// DeleteByID deletes the entity with the given id, if present.
	DeleteByID(ctx context.Context, id ID) error

	// Delete deletes the given entity.
	Delete(ctx context.Context, entity T) error

	// DeleteAllOf deletes the given entities.
	DeleteAllOf(ctx context.Context, entities []T) error

	// DeleteAll deletes every entity managed by the repository.
	DeleteAll(ctx context.Context) error
}

// config carries the shared repository configuration.
type config struct {
	introspector Introspector
	idProperty   string
	table        string
	generator    IDGenerator
}

// Option configures a repository constructor.
type Option func(*config)

func defaultConfig() config {
	return config{
		introspector: beaninfo.Default(),
		idProperty:   "id",
	}
}

// WithIntrospector overrides the introspector used to resolve descriptors.
func WithIntrospector(i Introspector) Option {
	return func(c *config) { c.introspector = i }
}

// WithIDProperty sets the identifier property name. Defaults to "id".
func WithIDProperty(name string) Option {
	return func(c *config) { c.idProperty = name }
}

// WithIDGenerator enables identifier generation for entities saved with a
// zero string id.
func WithIDGenerator(g IDGenerator) Option {
	return func(c *config) { c.generator = g }
}

// WithTable overrides the derived table or collection name.
func WithTable(name string) Option {
	return func(c *config) { c.table = name }
}
