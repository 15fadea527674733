package commands

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/felixgeelhaar/todolist/internal/todo/domain"
)

type mockTodoRepo struct {
	mock.Mock
}

func (m *mockTodoRepo) Insert(ctx context.Context, todo *domain.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *mockTodoRepo) List(ctx context.Context, offset, limit int) ([]*domain.Todo, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Todo), args.Error(1)
}

func (m *mockTodoRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTodoRepo) SetCompleted(ctx context.Context, id string, completed bool) (*domain.Todo, error) {
	args := m.Called(ctx, id, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Todo), args.Error(1)
}

func (m *mockTodoRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTodoRepo) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
