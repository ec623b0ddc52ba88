package services

import (
	"context"

	"github.com/SscSPs/todo_backend/internal/core/domain"
	"github.com/SscSPs/todo_backend/internal/dto"
)

// TodoReaderSvc defines read operations for todos of the calling user
type TodoReaderSvc interface {
	GetTodoByID(ctx context.Context, userID string, todoID string) (*domain.Todo, error)
	ListTodos(ctx context.Context, userID string) ([]domain.Todo, error)
}

// TodoWriterSvc defines write operations for todos of the calling user
type TodoWriterSvc interface {
	CreateTodo(ctx context.Context, userID string, req dto.CreateTodoRequest) (*domain.Todo, error)
	UpdateTodo(ctx context.Context, userID string, todoID string, req dto.UpdateTodoRequest) (*domain.Todo, error)
	DeleteTodo(ctx context.Context, userID string, todoID string) error
}

// TodoSvcFacade combines all todo-related service interfaces
type TodoSvcFacade interface {
	TodoReaderSvc
	TodoWriterSvc
}
