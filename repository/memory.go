package repository

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/Konsultn-Engineering/beankit/beaninfo"
)

// Memory is an in-memory CrudRepository driven by introspected property
// descriptors. T must be a pointer to a concrete type exposing an identifier
// property. FindAll preserves insertion order.
type Memory[T any, ID comparable] struct {
	mu       sync.RWMutex
	entities map[ID]T
	order    []ID

	collection string
	idProp     beaninfo.PropertyDescriptor
	idField    string
	generator  IDGenerator
}

// NewMemory creates an in-memory repository for T. The identifier property
// defaults to "id" and must resolve through the configured introspector.
func NewMemory[T any, ID comparable](opts ...Option) (*Memory[T, ID], error) {
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
	idProp, ok := info.Property(cfg.idProperty)
	if !ok {
		return nil, fmt.Errorf("repository: %s has no %q property", t, cfg.idProperty)
	}

	collection := cfg.table
	if collection == "" {
		collection = collectionName(t.Elem().Name())
	}

	return &Memory[T, ID]{
		entities:   make(map[ID]T),
		collection: collection,
		idProp:     idProp,
		idField:    backingField(t.Elem(), cfg.idProperty),
		generator:  cfg.generator,
	}, nil
}

// Collection returns the pluralized collection name for the entity type.
func (r *Memory[T, ID]) Collection() string { return r.collection }

func (r *Memory[T, ID]) idOf(entity T) (ID, error) {
	v := readProperty(reflect.ValueOf(entity), r.idProp)
	id, ok := v.Interface().(ID)
	if !ok {
		var zero ID
		return zero, fmt.Errorf("repository: id property has type %s, want %T", v.Type(), zero)
	}
	return id, nil
}

// Save stores the entity, generating an identifier first when a generator is
// configured and the current id is the zero value.
func (r *Memory[T, ID]) Save(ctx context.Context, entity T) (T, error) {
	id, err := r.idOf(entity)
	if err != nil {
		return entity, err
	}

	var zeroID ID
	if id == zeroID && r.generator != nil {
		generated, err := r.generator.Generate()
		if err != nil {
			return entity, err
		}
		if err := writeProperty(reflect.ValueOf(entity), r.idProp, r.idField, reflect.ValueOf(generated)); err != nil {
			return entity, err
		}
		if id, err = r.idOf(entity); err != nil {
			return entity, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entities[id]; !exists {
		r.order = append(r.order, id)
	}
	r.entities[id] = entity
	return entity, nil
}

func (r *Memory[T, ID]) SaveAll(ctx context.Context, entities []T) ([]T, error) {
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

func (r *Memory[T, ID]) FindByID(ctx context.Context, id ID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entity, ok := r.entities[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return entity, nil
}

func (r *Memory[T, ID]) ExistsByID(ctx context.Context, id ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entities[id]
	return ok, nil
}

func (r *Memory[T, ID]) FindAll(ctx context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]T, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.entities[id])
	}
	return all, nil
}

func (r *Memory[T, ID]) FindAllByID(ctx context.Context, ids []ID) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	found := make([]T, 0, len(ids))
	for _, id := range ids {
		if entity, ok := r.entities[id]; ok {
			found = append(found, entity)
		}
	}
	return found, nil
}

func (r *Memory[T, ID]) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.entities)), nil
}

func (r *Memory[T, ID]) DeleteByID(ctx context.Context, id ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteLocked(id)
	return nil
}

func (r *Memory[T, ID]) Delete(ctx context.Context, entity T) error {
	id, err := r.idOf(entity)
	if err != nil {
		return err
	}
	return r.DeleteByID(ctx, id)
}

func (r *Memory[T, ID]) DeleteAllOf(ctx context.Context, entities []T) error {
	for _, e := range entities {
		if err := r.Delete(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *Memory[T, ID]) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entities = make(map[ID]T)
	r.order = r.order[:0]
	return nil
}

func (r *Memory[T, ID]) deleteLocked(id ID) {
	if _, ok := r.entities[id]; !ok {
		return
	}
	delete(r.entities, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

var _ CrudRepository[*struct{}, string] = (*Memory[*struct{}, string])(nil)
