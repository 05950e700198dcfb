package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/frotaops/route-manager/internal/repository"
)

// fakeStore is a function-field test double for Store. Unset methods return
// zero values; call counters let tests assert that storage was (not)
// reached.
type fakeStore[T any] struct {
	getFn       func(f repository.Filter) (*T, error)
	listFn      func(page, limit int) ([]T, error)
	listWhereFn func(column string, value any) ([]T, error)
	saveFn      func(row *T) (*T, error)
	updateFn    func(id uuid.UUID, row *T) (*T, error)
	deleteFn    func(id uuid.UUID) (*T, error)

	saveCalls   int
	updateCalls int
	deleteCalls int
}

func (s *fakeStore[T]) Get(_ context.Context, f repository.Filter) (*T, error) {
	if s.getFn == nil {
		return nil, nil
	}
	return s.getFn(f)
}

func (s *fakeStore[T]) List(_ context.Context, page, limit int) ([]T, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(page, limit)
}

func (s *fakeStore[T]) ListWhere(_ context.Context, column string, value any) ([]T, error) {
	if s.listWhereFn == nil {
		return nil, nil
	}
	return s.listWhereFn(column, value)
}

func (s *fakeStore[T]) Save(_ context.Context, row *T) (*T, error) {
	s.saveCalls++
	if s.saveFn == nil {
		return row, nil
	}
	return s.saveFn(row)
}

func (s *fakeStore[T]) Update(_ context.Context, id uuid.UUID, row *T) (*T, error) {
	s.updateCalls++
	if s.updateFn == nil {
		return row, nil
	}
	return s.updateFn(id, row)
}

func (s *fakeStore[T]) Delete(_ context.Context, id uuid.UUID) (*T, error) {
	s.deleteCalls++
	if s.deleteFn == nil {
		return nil, nil
	}
	return s.deleteFn(id)
}
