package repositories

import (
	"context"

	"github.com/SscSPs/todo_backend/internal/core/domain"
)

// TodoReader defines read operations for todo data
type TodoReader interface {
	// FindTodoByID retrieves a todo by ID regardless of owner. Callers enforce ownership.
	FindTodoByID(ctx context.Context, todoID string) (*domain.Todo, error)

	// ListTodosByUser retrieves every todo owned by userID in creation order.
	ListTodosByUser(ctx context.Context, userID string) ([]domain.Todo, error)
}

// TodoWriter defines write operations for todo data.
// Update and delete only touch rows owned by todo.UserID / userID.
type TodoWriter interface {
	SaveTodo(ctx context.Context, todo domain.Todo) error
	UpdateTodo(ctx context.Context, todo domain.Todo) error
	DeleteTodo(ctx context.Context, todoID string, userID string) error
}

// TodoRepositoryFacade combines all todo-related repository interfaces
type TodoRepositoryFacade interface {
	TodoReader
	TodoWriter
}
