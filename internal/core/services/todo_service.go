package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/todo_backend/internal/apperrors"
	"github.com/SscSPs/todo_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/todo_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/todo_backend/internal/core/ports/services"
	"github.com/SscSPs/todo_backend/internal/dto"
	"github.com/google/uuid"
)

const (
	todoNotFoundMsg      = "Todo not found"
	todoTitleRequiredMsg = "Title is required!"
)

type todoService struct {
	BaseService
	todoRepo portsrepo.TodoRepositoryFacade
}

// NewTodoService creates a new todo service.
func NewTodoService(todoRepo portsrepo.TodoRepositoryFacade) portssvc.TodoSvcFacade {
	return &todoService{todoRepo: todoRepo}
}

var _ portssvc.TodoSvcFacade = (*todoService)(nil)

func (s *todoService) CreateTodo(ctx context.Context, userID string, req dto.CreateTodoRequest) (*domain.Todo, error) {
	now := time.Now().UTC()
	todo := domain.Todo{
		TodoID:      uuid.NewString(),
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := todo.Validate(); err != nil {
		return nil, apperrors.NewBadRequestError(todoTitleRequiredMsg)
	}

	if err := s.todoRepo.SaveTodo(ctx, todo); err != nil {
		s.LogError(ctx, err, "Failed to save todo", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create todo in service: %w", err)
	}

	s.LogInfo(ctx, "Todo created", slog.String("todo_id", todo.TodoID))
	return &todo, nil
}

func (s *todoService) GetTodoByID(ctx context.Context, userID string, todoID string) (*domain.Todo, error) {
	return s.findOwnedTodo(ctx, userID, todoID)
}

func (s *todoService) ListTodos(ctx context.Context, userID string) ([]domain.Todo, error) {
	todos, err := s.todoRepo.ListTodosByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list todos", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list todos in service: %w", err)
	}
	if todos == nil {
		todos = []domain.Todo{}
	}
	return todos, nil
}

func (s *todoService) UpdateTodo(ctx context.Context, userID string, todoID string, req dto.UpdateTodoRequest) (*domain.Todo, error) {
	todo, err := s.findOwnedTodo(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewBadRequestError(todoTitleRequiredMsg)
		}
		todo.Title = title
	}
	if req.Description != nil {
		todo.Description = *req.Description
	}
	todo.LastUpdatedAt = time.Now().UTC()

	if err := s.todoRepo.UpdateTodo(ctx, *todo); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(todoNotFoundMsg)
		}
		s.LogError(ctx, err, "Failed to update todo", slog.String("todo_id", todoID))
		return nil, fmt.Errorf("failed to update todo in service: %w", err)
	}
	return todo, nil
}

func (s *todoService) DeleteTodo(ctx context.Context, userID string, todoID string) error {
	if _, err := s.findOwnedTodo(ctx, userID, todoID); err != nil {
		return err
	}

	if err := s.todoRepo.DeleteTodo(ctx, todoID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(todoNotFoundMsg)
		}
		s.LogError(ctx, err, "Failed to delete todo", slog.String("todo_id", todoID))
		return fmt.Errorf("failed to delete todo in service: %w", err)
	}

	s.LogInfo(ctx, "Todo deleted", slog.String("todo_id", todoID))
	return nil
}

func (s *todoService) findOwnedTodo(ctx context.Context, userID string, todoID string) (*domain.Todo, error) {
	if _, err := uuid.Parse(todoID); err != nil {
		return nil, apperrors.NewNotFoundError(todoNotFoundMsg)
	}

	todo, err := s.todoRepo.FindTodoByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(todoNotFoundMsg)
		}
		s.LogError(ctx, err, "Failed to get todo", slog.String("todo_id", todoID))
		return nil, fmt.Errorf("failed to get todo in service: %w", err)
	}

	if err := s.AuthorizeOwner(ctx, todo.UserID, userID, todoNotFoundMsg); err != nil {
		return nil, err
	}
	return todo, nil
}
