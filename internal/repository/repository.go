// Package repository implements the entity store as a single generic
// GORM-backed repository parameterized by an entity schema, instead of
// hand-duplicating near-identical query code per table.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/frotaops/route-manager/internal/domain"
)

// Schema describes how an entity is looked up.
type Schema struct {
	// Entity is the display name used in error messages.
	Entity string
	// Lookups are the alternate-key columns, in priority order. The primary
	// id always takes precedence over them.
	Lookups []string
}

// Filter selects at most one row. ID wins when set; otherwise Keys are
// matched positionally against the schema's Lookups and the first non-empty
// one is used. An empty filter matches nothing.
type Filter struct {
	ID   *uuid.UUID
	Keys []string
}

// ByID builds a filter for a primary-key lookup.
func ByID(id uuid.UUID) Filter {
	return Filter{ID: &id}
}

// ByKey builds a filter matching the lookup column at the given position.
func ByKey(position int, value string) Filter {
	keys := make([]string, position+1)
	keys[position] = value
	return Filter{Keys: keys}
}

// Repository is a generic entity store over a single table.
type Repository[T any] struct {
	db     *gorm.DB
	schema Schema
}

// New creates a repository for the entity described by schema.
func New[T any](db *gorm.DB, schema Schema) *Repository[T] {
	return &Repository[T]{db: db, schema: schema}
}

// Get returns the row matching the first non-empty identifying parameter,
// or nil when nothing matches or the filter is empty.
func (r *Repository[T]) Get(ctx context.Context, f Filter) (*T, error) {
	column, value, ok := r.resolve(f)
	if !ok {
		return nil, nil
	}

	var row T
	err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, r.translate(err)
	}
	return &row, nil
}

func (r *Repository[T]) resolve(f Filter) (column string, value any, ok bool) {
	if f.ID != nil {
		return "id", *f.ID, true
	}
	for i, key := range f.Keys {
		if key == "" {
			continue
		}
		if i >= len(r.schema.Lookups) {
			break
		}
		return r.schema.Lookups[i], key, true
	}
	return "", nil, false
}

// List returns one page of rows in insertion order. Pages are 1-indexed;
// callers validate page and limit at the boundary.
func (r *Repository[T]) List(ctx context.Context, page, limit int) ([]T, error) {
	offset := (page - 1) * limit

	// Non-nil so empty pages serialize as [] rather than null.
	rows := make([]T, 0, limit)
	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return rows, nil
}

// ListWhere returns all rows whose column equals value, used for the nested
// child lookups (states of a country, documents of a vehicle, ...).
func (r *Repository[T]) ListWhere(ctx context.Context, column string, value any) ([]T, error) {
	rows := make([]T, 0)
	err := r.db.WithContext(ctx).Where(column+" = ?", value).Find(&rows).Error
	if err != nil {
		return nil, r.translate(err)
	}
	return rows, nil
}

// Save inserts the row and returns it as stored.
func (r *Repository[T]) Save(ctx context.Context, row *T) (*T, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, r.translate(err)
	}
	return row, nil
}

// Update replaces the full row identified by id. Zero rows affected is
// reported as NotFoundError.
func (r *Repository[T]) Update(ctx context.Context, id uuid.UUID, row *T) (*T, error) {
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(row)
	if res.Error != nil {
		return nil, r.translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.NewNotFoundError(r.schema.Entity, id.String())
	}
	return r.Get(ctx, ByID(id))
}

// Delete removes the row and returns it, or nil when id did not exist.
func (r *Repository[T]) Delete(ctx context.Context, id uuid.UUID) (*T, error) {
	row, err := r.Get(ctx, ByID(id))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error; err != nil {
		return nil, r.translate(err)
	}
	return row, nil
}

func (r *Repository[T]) translate(err error) error {
	return translateError(err, r.schema.Entity)
}
